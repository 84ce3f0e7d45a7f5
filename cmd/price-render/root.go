package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "price-render",
	Short: "Render catalog prices with their tax display variants",
	Long: `price-render reads a store file (locale, currency, tax display setting and
products) and shows how each price is rendered: including tax, excluding tax,
or both, with the element ids the storefront uses for them.`,
	SilenceUsage: true,
}

func SetVersion(v string) {
	rootCmd.Version = v
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); defaults to $LOG_LEVEL or warn")
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(initCmd)
}

// newLogger builds a console zap logger writing to stderr so report output stays clean.
func newLogger() (*zap.SugaredLogger, error) {
	level := zap.NewAtomicLevel()
	raw := logLevel
	if raw == "" {
		raw = os.Getenv("LOG_LEVEL")
	}
	if raw == "" {
		raw = "warn"
	}
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", raw, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
