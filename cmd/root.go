package cmd

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"ativos.GO/config"
)

var rootCmd = &cobra.Command{
	Use:   "ativos",
	Short: "Asset tracking backend CLI",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadAppConfig()
	},
	Run: func(cmd *cobra.Command, args []string) {
		figure.NewFigure("ativos", "", true).Print()
		fmt.Println()
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
