package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pentagon-api/pentagon-api/internal/config"
)

func init() { //nolint: gochecknoinits
	configCmd.Flags().StringVar(&configPath, "config", "", "Path to the etc/ config directory")
	configCmd.Flags().BoolVar(&dumpJSON, "json", false, "Dump the configuration as JSON instead of TOML")

	rootCmd.AddCommand(configCmd)
}

var (
	dumpJSON bool

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			c, errRead := config.ReadConfig(configPath)
			if errRead != nil {
				return errRead
			}

			var out string

			if dumpJSON {
				out, errRead = config.DumpConfigJSON(c)
			} else {
				out, errRead = config.DumpConfig(c)
			}

			if errRead != nil {
				return errRead
			}

			fmt.Print(out)

			return nil
		},
	}
)
