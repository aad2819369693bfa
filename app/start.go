package app

import (
	"github.com/spf13/cobra"

	"github.com/pentagon-api/pentagon-api/internal/config"
	"github.com/pentagon-api/pentagon-api/internal/daemon"
	"github.com/pentagon-api/pentagon-api/internal/logger"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().StringVar(&configPath, "config", "", "Path to the etc/ config directory")
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode")
	startCmd.Flags().BoolVar(&skipSeed, "skip-seed", false, "Skip seeding of initial data")

	rootCmd.AddCommand(startCmd)
}

var (
	configPath string // Path to the configuration file

	cfg      config.Config
	err      error
	devMode  bool
	skipSeed bool

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the pentagon-api web service",
		PreRun: func(_ *cobra.Command, _ []string) {
			if cfg, err = config.ReadConfig(configPath); err != nil {
				panic(err)
			}

			if devMode {
				cfg.DevMode = true
			}

			if skipSeed {
				cfg.DB.SkipSeed = true
			}

			if err = logger.Init(cfg.Log); err != nil {
				panic(err)
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			d, errNew := daemon.New(&cfg)
			if errNew != nil {
				return errNew
			}

			return d.Start()
		},
	}
)
