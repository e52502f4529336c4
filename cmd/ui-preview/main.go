package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Its-donkey/sweet-treats/internal/config"
	"github.com/Its-donkey/sweet-treats/internal/preview"
	"github.com/Its-donkey/sweet-treats/internal/ui/page"
	"github.com/Its-donkey/sweet-treats/logging"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)
	cmd := &cobra.Command{
		Use:          "ui-preview",
		Short:        "Try the bakery page controls in the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			level := cfg.LogLevel()
			if logLevel != "" {
				if level, err = logging.ParseLevel(logLevel); err != nil {
					return err
				}
			}

			data := page.DefaultData()
			data.SiteName = cfg.Site.Name
			data.Description = cfg.Site.Description

			opts := preview.Options{Data: data, Level: level}
			if cfg.Log.Dir != "" {
				file, err := logging.OpenRotatingFile(cfg.Log.Dir, "ui-preview.json", cfg.Log.MaxSizeMB, cfg.Log.MaxFiles)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer file.Close()
				opts.LogWriter = file
			}

			model, err := preview.New(opts)
			if err != nil {
				return err
			}
			if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run(); err != nil {
				return fmt.Errorf("run preview: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "bakery.toml", "path to the TOML config file")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "override log.level (debug, info, warn, error)")
	return cmd
}
