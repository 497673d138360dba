package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultpass/passgen/internal/handler"
	"github.com/vaultpass/passgen/internal/page"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "print the composed view markup",
	RunE: func(cmd *cobra.Command, args []string) error {
		markup, err := handler.RenderDocument(func() page.View {
			return newView(cfg, nil, nil)
		}, title)
		if err != nil {
			return fmt.Errorf("render view: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), markup)
		return err
	},
}
