package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/smoothie-menu/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a menu configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the catalog API, host page and output, and writes the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
