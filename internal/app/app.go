// Package app implements the application layer for symctl.
package app

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/JakWdo/Symulacja-sub006/internal/adapters/detector"
	"github.com/JakWdo/Symulacja-sub006/internal/adapters/linear"
	"github.com/JakWdo/Symulacja-sub006/internal/adapters/redirect"
	"github.com/JakWdo/Symulacja-sub006/internal/adapters/tui"
	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
	"github.com/JakWdo/Symulacja-sub006/internal/core/ports"
	"github.com/JakWdo/Symulacja-sub006/internal/engine/cache"
	"github.com/JakWdo/Symulacja-sub006/internal/engine/coordinator"
	"github.com/JakWdo/Symulacja-sub006/internal/engine/tracker"
)

// App represents the main application logic behind the CLI commands.
type App struct {
	api         ports.APIClient
	store       *cache.Store
	coordinator *coordinator.Coordinator
	resolver    *redirect.Resolver
	logger      ports.Logger
	teaOptions  []tea.ProgramOption
}

// New creates a new App instance.
func New(
	api ports.APIClient,
	store *cache.Store,
	coord *coordinator.Coordinator,
	resolver *redirect.Resolver,
	log ports.Logger,
) *App {
	return &App{
		api:         api,
		store:       store,
		coordinator: coord,
		resolver:    resolver,
		logger:      log,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// fetchAs reads a key through the coalescing store and narrows the cached
// value to the expected type.
func fetchAs[T any](ctx context.Context, store *cache.Store, key domain.CacheKey, loader cache.Loader) (T, error) {
	var zero T
	v, err := store.Fetch(ctx, key, loader)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, zerr.With(domain.ErrCacheTypeMismatch, "key", key.String())
	}
	return typed, nil
}

// ListProjects returns all projects, served from cache when fresh.
func (a *App) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return fetchAs[[]domain.Project](ctx, a.store, domain.KeyProjects(), func(ctx context.Context) (any, error) {
		return a.api.ListProjects(ctx)
	})
}

// ProjectDetail bundles a project with its generated artifacts.
type ProjectDetail struct {
	Project     *domain.Project
	Personas    []domain.Persona
	FocusGroups []domain.FocusGroup
}

// ShowProject returns a project together with its personas and focus groups.
func (a *App) ShowProject(ctx context.Context, id string) (*ProjectDetail, error) {
	if id == "" {
		return nil, domain.ErrNoProjectSpecified
	}

	project, err := fetchAs[*domain.Project](ctx, a.store, domain.KeyProject(id), func(ctx context.Context) (any, error) {
		return a.api.GetProject(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	personas, err := fetchAs[[]domain.Persona](ctx, a.store, domain.KeyPersonas(id), func(ctx context.Context) (any, error) {
		return a.api.ListPersonas(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	groups, err := fetchAs[[]domain.FocusGroup](ctx, a.store, domain.KeyFocusGroups(id), func(ctx context.Context) (any, error) {
		return a.api.ListFocusGroups(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	return &ProjectDetail{Project: project, Personas: personas, FocusGroups: groups}, nil
}

// CreateProject creates a project through the mutation coordinator.
func (a *App) CreateProject(ctx context.Context, draft domain.ProjectDraft) (*domain.Project, error) {
	return a.coordinator.CreateProject(ctx, draft)
}

// UpdateProject edits a project's user-editable fields through the
// mutation coordinator.
func (a *App) UpdateProject(ctx context.Context, id string, draft domain.ProjectDraft) (*domain.Project, error) {
	if id == "" {
		return nil, domain.ErrNoProjectSpecified
	}
	return a.coordinator.UpdateProject(ctx, id, draft)
}

// DeleteProject soft-deletes a project. The display name for the undo
// affordance is taken from the cached project when available.
func (a *App) DeleteProject(ctx context.Context, id string, req domain.DeleteRequest) (*domain.DeleteReceipt, error) {
	if id == "" {
		return nil, domain.ErrNoProjectSpecified
	}

	displayName := id
	if entry, ok := a.store.Read(domain.KeyProject(id)); ok {
		if p, ok := entry.Value.(*domain.Project); ok {
			displayName = p.Name
		}
	}

	return a.coordinator.SoftDeleteProject(ctx, id, req, displayName)
}

// UndoDelete reverses a soft delete. The server decides whether the
// recovery window is still open.
func (a *App) UndoDelete(ctx context.Context, id string) (*domain.UndoReceipt, error) {
	if id == "" {
		return nil, domain.ErrNoProjectSpecified
	}
	return a.coordinator.UndoDelete(ctx, id)
}

// PendingDeletion reports the local undo affordance for a resource.
func (a *App) PendingDeletion(id string) (domain.PendingDeletion, bool) {
	return a.coordinator.PendingDeletion(id)
}

// Dashboard returns the dashboard summary, served from cache when fresh.
func (a *App) Dashboard(ctx context.Context) (*domain.DashboardSummary, error) {
	return fetchAs[*domain.DashboardSummary](ctx, a.store, domain.KeyDashboard(), func(ctx context.Context) (any, error) {
		return a.api.FetchDashboard(ctx)
	})
}

// RunAction invokes a named server action. A redirect outcome is resolved
// to a local navigation target; the other outcomes return a nil target.
func (a *App) RunAction(ctx context.Context, name string, params map[string]string) (domain.ActionOutcome, *domain.RedirectTarget, error) {
	outcome, err := a.coordinator.ExecuteAction(ctx, name, params)
	if err != nil {
		return nil, nil, err
	}

	if r, ok := outcome.(domain.ActionRedirect); ok {
		target := a.resolver.Resolve(ctx, r.URL)
		return outcome, &target, nil
	}
	return outcome, nil, nil
}

// OpenLink resolves a server path to a local navigation target.
func (a *App) OpenLink(ctx context.Context, path string) domain.RedirectTarget {
	return a.resolver.Resolve(ctx, path)
}

// GenerateOptions configures a generation run.
type GenerateOptions struct {
	// OutputMode is the user override: "auto", "tui", "linear" or "ci".
	OutputMode string
}

// Generate starts a batch generation job and renders its progress until the
// job reaches a terminal state or ctx is cancelled. Cancellation marks the
// job with the local cancelled stage and suppresses terminal notifications.
func (a *App) Generate(ctx context.Context, req domain.GenerationRequest, opts GenerateOptions) error {
	if req.ProjectID == "" {
		return domain.ErrNoProjectSpecified
	}

	mode := detector.ResolveMode(detector.DetectEnvironment(), opts.OutputMode)

	var renderer ports.JobRenderer
	if mode == detector.ModeTUI {
		optsTea := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
		renderer = tui.NewRenderer(tui.NewModel(os.Stderr), optsTea...)
	} else {
		renderer = linear.NewRenderer(os.Stderr)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := renderer.Start(gctx); err != nil {
			return err
		}
		return renderer.Wait()
	})

	g.Go(func() error {
		defer func() { _ = renderer.Stop() }()

		cb := tracker.Callbacks{
			OnSnapshot: renderer.OnSnapshot,
			OnCompleted: func(job domain.GenerationJob) {
				renderer.OnJobDone(job, nil)
			},
			OnFailed: func(job domain.GenerationJob, err error) {
				renderer.OnJobDone(job, err)
			},
		}

		handle, err := a.coordinator.StartGeneration(gctx, req, cb)
		if err != nil {
			return err
		}

		renderer.OnJobStart(handle.Job().JobID, req.Kind, req.Count)

		if err := handle.Wait(gctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				handle.Cancel()
				renderer.OnJobDone(handle.Job(), nil)
				return err
			}
			return err
		}
		return nil
	})

	return g.Wait()
}
