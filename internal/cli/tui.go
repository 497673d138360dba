package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen/internal/clipboard"
	"github.com/vaultpass/passgen/internal/terminal"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "run the generator in the terminal",
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	var clip clipboard.Writer = clipboard.System{}
	if !clipboard.Supported() {
		slog.Warn("no system clipboard found, copies stay in memory")
		clip = clipboard.NewMemory(nil)
	}

	restore, err := terminal.RawMode(os.Stdin)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer restore()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	host := terminal.New(os.Stdin, os.Stdout, slog.Default())
	host.Clear = true
	if banner := terminal.Banner("passgen"); terminal.Width(os.Stdout) >= bannerWidth(banner) {
		host.Banner = banner
	}

	return host.Run(ctx, newView(cfg, clip, host))
}

func bannerWidth(banner string) int {
	w := 0
	for _, line := range strings.Split(banner, "\n") {
		w = max(w, len(line))
	}
	return w
}
