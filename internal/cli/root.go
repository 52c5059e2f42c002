// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hoangtrungvu/musicstream/internal/app"
	"github.com/hoangtrungvu/musicstream/internal/config"
	"github.com/hoangtrungvu/musicstream/internal/logger"
)

var (
	configPath string
	logLevel   string

	cfg    config.Config
	appLog *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "musicstream",
	Short: "musicstream is a music streaming client core.",
	Long: `musicstream is a music streaming client: a playback queue engine with
shuffle and repeat, a track catalog, liked tracks and play history,
local accounts and persisted user settings.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, _, _, err = config.Load(configPath)
		if err != nil {
			return err
		}

		logCfg := logger.DefaultConfig()
		if cfg.Logging.Format != "" {
			logCfg.Format = cfg.Logging.Format
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if cfg.Logging.Level != "" {
			logCfg.Level = parseLevel(cfg.Logging.Level)
		}
		appLog = logger.NewLogger(logCfg)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (DEBUG, INFO, WARN, ERROR)")
}

// newApp builds the fully wired application from the loaded config.
func newApp() (*app.Application, error) {
	return app.New(cfg, appLog)
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
