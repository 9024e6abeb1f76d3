package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
)

func (c *CLI) newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <path>",
		Short: "Resolve a server path to a local navigation target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := c.app.OpenLink(cmd.Context(), args[0])
			printTarget(cmd.OutOrStdout(), target)
			return nil
		},
	}
}

func printTarget(out io.Writer, target domain.RedirectTarget) {
	_, _ = fmt.Fprintf(out, "view: %s\n", target.View)
	if target.ResourceID != "" {
		_, _ = fmt.Fprintf(out, "resource: %s\n", target.ResourceID)
	}
	if target.Panel != "" {
		_, _ = fmt.Fprintf(out, "panel: %s\n", target.Panel)
	}
}
