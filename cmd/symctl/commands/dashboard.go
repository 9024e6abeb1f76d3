package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the workspace dashboard summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := c.app.Dashboard(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Projects:     %d\n", summary.ProjectCount)
			_, _ = fmt.Fprintf(out, "Personas:     %d\n", summary.PersonaCount)
			_, _ = fmt.Fprintf(out, "Focus groups: %d\n", summary.FocusGroupCount)
			_, _ = fmt.Fprintf(out, "Active jobs:  %d\n", summary.ActiveJobs)
			return nil
		},
	}
}
