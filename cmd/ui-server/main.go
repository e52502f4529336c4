package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Its-donkey/sweet-treats/internal/config"
	"github.com/Its-donkey/sweet-treats/internal/ui/server"
	"github.com/Its-donkey/sweet-treats/logging"
)

const defaultConfigPath = "bakery.toml"

var (
	configPath string
	listen     string
	assetsDir  string
	overwrite  bool
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "ui-server",
		Short:        "Serve the Sweet Treats bakery page",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "path to the TOML config file")
	root.AddCommand(serveCmd(), configCmd())
	return root
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the page, stylesheet and wasm bundle",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("listen") {
				cfg.Server.Listen = listen
			}
			if cmd.Flags().Changed("assets") {
				cfg.Server.Assets = assetsDir
			}

			logger, closeLog, err := newLogger(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer closeLog()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			err = server.Run(ctx, server.Options{
				Listen:          cfg.Server.Listen,
				AssetsDir:       cfg.Server.Assets,
				SiteName:        cfg.Site.Name,
				SiteDescription: cfg.Site.Description,
				Logger:          logger,
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "address to listen on (overrides server.listen)")
	cmd.Flags().StringVar(&assetsDir, "assets", "", "directory holding main.wasm and wasm_exec.js (overrides server.assets)")
	return cmd
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file with the default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Write(configPath, config.Default(), overwrite); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&overwrite, "force", false, "replace an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}

// newLogger writes JSON entries to stdout and, when log.dir is set, to a
// rotating file as well.
func newLogger(cfg config.Config, stdout io.Writer) (*logging.Logger, func(), error) {
	writers := []io.Writer{stdout}
	closeFn := func() {}
	if cfg.Log.Dir != "" {
		file, err := logging.OpenRotatingFile(cfg.Log.Dir, "ui-server.json", cfg.Log.MaxSizeMB, cfg.Log.MaxFiles)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, file)
		closeFn = func() { _ = file.Close() }
	}
	return logging.New("ui-server", cfg.LogLevel(), writers...), closeFn, nil
}
