// Package main is the entry point for the symctl client.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"

	"github.com/JakWdo/Symulacja-sub006/cmd/symctl/commands"
	"github.com/JakWdo/Symulacja-sub006/internal/app"
	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
	_ "github.com/JakWdo/Symulacja-sub006/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	if components.Config != nil && components.Config.Log.JSON {
		components.Logger.SetJSON(true)
	}

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App, components.Logger)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		components.Logger.Error(err)
		if errors.Is(err, domain.ErrGenerationFailed) {
			return 2
		}
		return 1
	}
	return 0
}
