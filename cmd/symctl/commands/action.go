package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
)

func (c *CLI) newActionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "action",
		Short: "Invoke named server actions",
	}
	cmd.AddCommand(c.newActionRunCmd())
	return cmd
}

func (c *CLI) newActionRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <name>",
		Short: "Run a named server action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, _ := cmd.Flags().GetStringToString("param")

			outcome, target, err := c.app.RunAction(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch o := outcome.(type) {
			case domain.ActionSuccess:
				_, _ = fmt.Fprintf(out, "✓ %s\n", o.Message)
			case domain.ActionError:
				_, _ = fmt.Fprintf(out, "✗ %s\n", o.Message)
			case domain.ActionRedirect:
				if o.Message != "" {
					_, _ = fmt.Fprintln(out, o.Message)
				}
				if target != nil {
					printTarget(out, *target)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringToStringP("param", "P", nil, "Action parameter as key=value (repeatable)")
	return cmd
}
