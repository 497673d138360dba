package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen/internal/clipboard"
	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/page"
	"github.com/vaultpass/passgen/internal/random"
	"github.com/vaultpass/passgen/internal/service"
)

const title = "Password Generator"

var (
	// LogLevelFlag describes the verbosity of logs
	LogLevelFlag string

	cfg config.Config

	rootCmd = &cobra.Command{
		Use:           "passgen",
		Short:         "passgen is a password generator widget with a terminal host and a markup preview.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(LogLevelFlag)); err != nil {
				return fmt.Errorf("invalid log level %q: %w", LogLevelFlag, err)
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

			cfg = config.Load()
			return nil
		},
		RunE: runTUI,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&LogLevelFlag, "log-level", "l", "info", "possible values are debug, info, warn, error")
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(previewCmd)
}

func newPicker(cfg config.Config) service.IndexPicker {
	if cfg.Seeded {
		return random.Seeded(cfg.Seed)
	}
	return random.Default()
}

func newView(cfg config.Config, clip clipboard.Writer, n page.Notifier) *page.PasswordGenerator {
	return page.New(page.Deps{
		Picker:        newPicker(cfg),
		Clipboard:     clip,
		Notifier:      n,
		DefaultLength: cfg.DefaultLength,
		MaxLength:     cfg.MaxLength,
		Logger:        slog.Default(),
	})
}
