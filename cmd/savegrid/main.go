// Package main provides the CLI entry point for savegrid.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ukaji3/savegrid-go/internal/config"
	"github.com/ukaji3/savegrid-go/pkg/savegrid"
	"github.com/ukaji3/savegrid-go/pkg/savegrid/locale"
)

var (
	configPath string
	localeTag  string
	logLevel   string
)

// session is the per-invocation state: settings, logger and active locale.
type session struct {
	cfg    config.Config
	logger *logrus.Logger
	bundle *locale.Bundle
}

func (s *session) options() savegrid.Options {
	return savegrid.Options{
		Labels: s.bundle.Label,
		Number: s.bundle.FormatNumber,
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "savegrid",
		Short: "Project cumulative savings into a grid",
		Long: `savegrid projects cumulative savings over a number of days, weeks or months,
prints the projection as a grid and exports it to .xlsx or .pdf.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&localeTag, "locale", "", "Label language (en, es); overrides config")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides config")

	rootCmd.AddCommand(newGridCmd(), newExportCmd(), newReadCmd(), newLocalesCmd(), newConfigCmd())
	return rootCmd
}

// newSession loads configuration and resolves the logger and locale.
// Flags override the environment, which overrides the config file.
func newSession() (*session, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if localeTag != "" {
		cfg.Locale = localeTag
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	bundle, err := locale.Load(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("loading locale: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"config": configPath,
		"locale": bundle.Language,
	}).Debug("session ready")

	return &session{cfg: cfg, logger: logger, bundle: bundle}, nil
}

func newLogger(cfg config.Config) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger.SetLevel(level)

	switch cfg.LogFormat {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid log format %q (must be text or json)", cfg.LogFormat)
	}
	return logger, nil
}

func newLocalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List available label languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, tag := range locale.Available() {
				b, err := locale.Load(tag)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", tag, b.Name)
			}
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(configPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
			}
			if err := config.Save(config.DefaultConfig(), configPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(initCmd)
	return configCmd
}
