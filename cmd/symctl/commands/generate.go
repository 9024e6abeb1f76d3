package commands

import (
	"github.com/spf13/cobra"

	"github.com/JakWdo/Symulacja-sub006/internal/app"
	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Run batch generation jobs",
	}

	cmd.AddCommand(c.newGeneratePersonasCmd())
	cmd.AddCommand(c.newGenerateFocusGroupCmd())

	return cmd
}

func (c *CLI) newGeneratePersonasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "personas",
		Short: "Generate a batch of personas for a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, opts := generationInputs(cmd, domain.KindPersona)
			return c.app.Generate(cmd.Context(), req, opts)
		},
	}

	addGenerateFlags(cmd)
	return cmd
}

func (c *CLI) newGenerateFocusGroupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focus-group",
		Short: "Generate a focus group discussion for a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, opts := generationInputs(cmd, domain.KindFocusGroup)
			req.Topic, _ = cmd.Flags().GetString("topic")
			return c.app.Generate(cmd.Context(), req, opts)
		},
	}

	addGenerateFlags(cmd)
	cmd.Flags().StringP("topic", "t", "", "Discussion topic for the focus group")
	_ = cmd.MarkFlagRequired("topic")
	return cmd
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("project", "p", "", "Project ID to generate into")
	cmd.Flags().IntP("count", "c", 5, "Number of units to generate")
	cmd.Flags().Bool("knowledge-source", false, "Ground generation in the project's knowledge source")
	cmd.Flags().StringP("output-mode", "o", "auto", "Progress output: auto, tui, linear or ci")
	cmd.Flags().Bool("ci", false, "Shorthand for --output-mode linear")
	_ = cmd.MarkFlagRequired("project")
}

func generationInputs(cmd *cobra.Command, kind domain.JobKind) (domain.GenerationRequest, app.GenerateOptions) {
	projectID, _ := cmd.Flags().GetString("project")
	count, _ := cmd.Flags().GetInt("count")
	knowledge, _ := cmd.Flags().GetBool("knowledge-source")
	outputMode, _ := cmd.Flags().GetString("output-mode")
	if ci, _ := cmd.Flags().GetBool("ci"); ci {
		outputMode = "linear"
	}

	req := domain.GenerationRequest{
		Kind:               kind,
		ProjectID:          projectID,
		Count:              count,
		UseKnowledgeSource: knowledge,
	}
	return req, app.GenerateOptions{OutputMode: outputMode}
}
