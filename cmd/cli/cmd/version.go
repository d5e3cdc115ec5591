package cmd

import (
	"github.com/landscapectl/landscapectl/internal/client/output"
	"github.com/landscapectl/landscapectl/internal/constants"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version of the CLI",
	Run: func(cmd *cobra.Command, _ []string) {
		output.KeyValue("CLI version", *constants.GetVersion())
		output.KeyValue("API version", constants.APIVersion)

		if cfg, err := getConfigFromContext(cmd); err == nil && cfg.APIURI != "" {
			output.KeyValue("API endpoint", cfg.APIURI)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
