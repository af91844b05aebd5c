package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ativos.GO/config"
	assetRepo "ativos.GO/model/repository/asset"
	"ativos.GO/service/qr"
)

var qrcodesRegenerateCmd = &cobra.Command{
	Use:   "qrcodes:regenerate",
	Short: "Rewrite the QR label files for every asset",
	Run: func(cmd *cobra.Command, args []string) {
		db, err := config.NewDB()
		if err != nil {
			fmt.Printf("Database connection failed: %v\n", err)
			return
		}
		ids, err := assetRepo.NewAssetRepository(db).AllIDs()
		if err != nil {
			fmt.Printf("Listing assets failed: %v\n", err)
			return
		}

		labels := qr.NewGenerator(config.AppConfig.BaseURL, config.AppConfig.QRDir)
		n, err := labels.RegenerateAll(ids)
		if err != nil {
			fmt.Printf("Regeneration stopped after %d labels: %v\n", n, err)
			return
		}
		fmt.Printf("Regenerated %d QR labels in %s\n", n, config.AppConfig.QRDir)
	},
}

func init() {
	rootCmd.AddCommand(qrcodesRegenerateCmd)
}
