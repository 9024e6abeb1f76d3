// Package commands implements the CLI commands for the symctl client.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/JakWdo/Symulacja-sub006/internal/app"
	"github.com/JakWdo/Symulacja-sub006/internal/build"
	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
	"github.com/JakWdo/Symulacja-sub006/internal/core/ports"
)

// CLI represents the command line interface for symctl.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	ShowProject(ctx context.Context, id string) (*app.ProjectDetail, error)
	CreateProject(ctx context.Context, draft domain.ProjectDraft) (*domain.Project, error)
	UpdateProject(ctx context.Context, id string, draft domain.ProjectDraft) (*domain.Project, error)
	DeleteProject(ctx context.Context, id string, req domain.DeleteRequest) (*domain.DeleteReceipt, error)
	UndoDelete(ctx context.Context, id string) (*domain.UndoReceipt, error)
	PendingDeletion(id string) (domain.PendingDeletion, bool)
	Dashboard(ctx context.Context) (*domain.DashboardSummary, error)
	RunAction(ctx context.Context, name string, params map[string]string) (domain.ActionOutcome, *domain.RedirectTarget, error)
	OpenLink(ctx context.Context, path string) domain.RedirectTarget
	Generate(ctx context.Context, req domain.GenerationRequest, opts app.GenerateOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "symctl",
		Short:         "Client for the Symulacja research platform",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Log in JSON format")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if jsonMode, _ := cmd.Flags().GetBool("json"); jsonMode && c.logger != nil {
			c.logger.SetJSON(true)
		}
	}

	rootCmd.AddCommand(c.newProjectsCmd())
	rootCmd.AddCommand(c.newGenerateCmd())
	rootCmd.AddCommand(c.newActionCmd())
	rootCmd.AddCommand(c.newOpenCmd())
	rootCmd.AddCommand(c.newDashboardCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
