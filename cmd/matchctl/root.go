package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/oggyb/interview-match/internal/app"
	"github.com/oggyb/interview-match/internal/config"
	"github.com/oggyb/interview-match/internal/logger"
)

const name = "matchctl"

var (
	// Used for flags.
	cfgFile string
	debug   bool

	rootCmd = &cobra.Command{
		Use:           name,
		Short:         "matchctl operates the interview-match backend: reminders, quota inspection, pair state",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (overrides CONFIG_FILE)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "verbose/debug output")
}

// openApp loads configuration and builds the application context the same
// way the server does.
func openApp(ctx context.Context) (*app.AppContext, io.Closer, error) {
	if cfgFile != "" {
		if err := os.Setenv("CONFIG_FILE", cfgFile); err != nil {
			return nil, nil, err
		}
	}
	cfg := config.New()
	if debug {
		cfg.Log.Level = "debug"
	}
	cfg.Log.Component = name
	logger.Init(&logger.Config{
		Level:     cfg.Log.Level,
		Format:    logger.Format(cfg.Log.Format),
		Component: cfg.Log.Component,
		Output:    os.Stderr,
	})
	return app.Open(ctx, cfg, logger.L())
}
