package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ativos.GO/config"
	assetRepo "ativos.GO/model/repository/asset"
	categoryRepo "ativos.GO/model/repository/category"
	"ativos.GO/service/export"
)

var assetsExportCmd = &cobra.Command{
	Use:   "assets:export",
	Short: "Write the full asset list to an .xlsx workbook",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}
		assets, err := assetRepo.NewAssetRepository(db).All()
		if err != nil {
			fmt.Printf("Listing assets failed: %v\n", err)
			return
		}
		names, err := categoryRepo.NewCategoryRepository(db).NamesByID()
		if err != nil {
			fmt.Printf("Listing categories failed: %v\n", err)
			return
		}

		path, err := export.NewWriter(config.AppConfig.ExportDir).WriteAssets(assets, names)
		if err != nil {
			fmt.Printf("Export failed: %v\n", err)
			return
		}
		fmt.Printf("Exported %d assets to %s\n", len(assets), path)
	},
}

func init() {
	rootCmd.AddCommand(assetsExportCmd)
}
