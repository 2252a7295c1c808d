// Package cli implements the blogicum command line.
package cli

import (
	"fmt"

	"github.com/blogicum/blogicum/internal/config"
	"github.com/blogicum/blogicum/internal/pkg/nativelog"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "blogicum",
	Short:         "Blogicum blog server",
	Long:          "Blogicum serves a public blog and its administrative API.",
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath, "Path to YAML config file")
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

// bootstrap loads the config and builds the logger shared by every command.
func bootstrap() (*config.AppConfig, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := nativelog.NewZapLogger(cfg.LogDir(), cfg.LogLevel)
	if err != nil {
		logger, _ = zap.NewProduction()
		logger.Warn("native log pipeline unavailable, fallback to zap production logger", zap.Error(err))
	}
	return cfg, logger, nil
}
