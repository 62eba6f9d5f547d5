package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/maxviazov/country-list-service/internal/app"
	"github.com/maxviazov/country-list-service/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

const defaultConfigPath = "config.yaml"

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "country-list-service",
		Short:         "Serve a paginated, read-only list of country names over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(resolveConfigPath(cmd, configPath))
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to a YAML config file (defaults and APP_* env vars apply without one)")

	root.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Load and validate the dataset, then exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return check(cmd, resolveConfigPath(cmd, configPath))
		},
	})
	return root
}

// resolveConfigPath drops the default config file when it does not exist.
// An explicitly passed --config must exist.
func resolveConfigPath(cmd *cobra.Command, path string) string {
	if cmd.Flags().Changed("config") {
		return path
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return ""
	}
	return path
}

func serve(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	appLogger, err := app.NewLogger(cfg)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg, appLogger); err != nil {
		// a service without its dataset is meaningless: refuse to run
		appLogger.Fatal().Err(err).Msg("❌ Service failed")
	}
	return nil
}

func check(cmd *cobra.Command, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	appLogger, err := app.NewLogger(cfg)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	list, err := app.LoadDataset(cmd.Context(), cfg, appLogger)
	if err != nil {
		appLogger.Error().Err(err).Msg("dataset check failed")
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "dataset ok: %d countries\n", list.Len())
	return nil
}
