package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
)

func (c *CLI) newProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage research projects",
	}

	cmd.AddCommand(c.newProjectsListCmd())
	cmd.AddCommand(c.newProjectsShowCmd())
	cmd.AddCommand(c.newProjectsCreateCmd())
	cmd.AddCommand(c.newProjectsEditCmd())
	cmd.AddCommand(c.newProjectsDeleteCmd())
	cmd.AddCommand(c.newProjectsUndoCmd())

	return cmd
}

func (c *CLI) newProjectsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			projects, err := c.app.ListProjects(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(projects) == 0 {
				_, _ = fmt.Fprintln(out, "No projects yet.")
				return nil
			}
			for _, p := range projects {
				_, _ = fmt.Fprintf(out, "%s  %s  (%d personas, %d focus groups)\n",
					p.ID, p.Name, p.PersonaCount, p.FocusGroupCount)
			}
			return nil
		},
	}
}

func (c *CLI) newProjectsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show a project with its personas and focus groups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := c.app.ShowProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s  %s\n", detail.Project.ID, detail.Project.Name)
			if detail.Project.Description != "" {
				_, _ = fmt.Fprintf(out, "  %s\n", detail.Project.Description)
			}

			_, _ = fmt.Fprintf(out, "\nPersonas (%d):\n", len(detail.Personas))
			for _, p := range detail.Personas {
				_, _ = fmt.Fprintf(out, "  %s  %s, %d, %s\n", p.ID, p.Name, p.Age, p.Occupation)
			}

			_, _ = fmt.Fprintf(out, "\nFocus groups (%d):\n", len(detail.FocusGroups))
			for _, g := range detail.FocusGroups {
				_, _ = fmt.Fprintf(out, "  %s  %s [%s]\n", g.ID, g.Topic, g.Status)
			}
			return nil
		},
	}
}

func (c *CLI) newProjectsCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("name")
			description, _ := cmd.Flags().GetString("description")

			project, err := c.app.CreateProject(cmd.Context(), domain.ProjectDraft{
				Name:        name,
				Description: description,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created project %s (%s)\n", project.Name, project.ID)
			return nil
		},
	}

	cmd.Flags().StringP("name", "n", "", "Project name")
	cmd.Flags().StringP("description", "d", "", "Project description")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func (c *CLI) newProjectsEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <project-id>",
		Short: "Edit a project's name or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			description, _ := cmd.Flags().GetString("description")

			project, err := c.app.UpdateProject(cmd.Context(), args[0], domain.ProjectDraft{
				Name:        name,
				Description: description,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated project %s (%s)\n", project.Name, project.ID)
			return nil
		},
	}

	cmd.Flags().StringP("name", "n", "", "New project name")
	cmd.Flags().StringP("description", "d", "", "New project description")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func (c *CLI) newProjectsDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Soft-delete a project (undo is possible for a short while)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reason, _ := cmd.Flags().GetString("reason")
			detail, _ := cmd.Flags().GetString("detail")

			receipt, err := c.app.DeleteProject(cmd.Context(), args[0], domain.DeleteRequest{
				Reason: domain.DeleteReason(reason),
				Detail: detail,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Deleted project %s\n", receipt.ResourceID)

			// Without a server deadline the advisory local window still
			// gates the undo hint.
			deadline := receipt.RecoveryDeadline
			if deadline == nil {
				if pending, ok := c.app.PendingDeletion(receipt.ResourceID); ok {
					deadline = &pending.RecoveryDeadline
				}
			}
			if deadline != nil {
				_, _ = fmt.Fprintf(out, "Undo with 'symctl projects undo %s' before %s\n",
					receipt.ResourceID, deadline.Format(time.RFC3339))
			}
			return nil
		},
	}

	cmd.Flags().StringP("reason", "r", string(domain.ReasonOther),
		"Reason code: obsolete, duplicate, mistake or other")
	cmd.Flags().String("detail", "", "Free-text detail for the delete reason")
	return cmd
}

func (c *CLI) newProjectsUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo <project-id>",
		Short: "Undo a recent soft delete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			receipt, err := c.app.UndoDelete(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			name := receipt.DisplayName
			if name == "" {
				name = receipt.ResourceID
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Restored project %s\n", name)
			return nil
		},
	}
}
