// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
)

// APIClient is the transport boundary to the Symulacja server.
//
//go:generate mockgen -source=api.go -destination=mocks/mock_api.go -package=mocks
type APIClient interface {
	// ListProjects returns all projects visible to the caller.
	ListProjects(ctx context.Context) ([]domain.Project, error)

	// GetProject returns a single project by id.
	GetProject(ctx context.Context, id string) (*domain.Project, error)

	// CreateProject creates a project and returns the authoritative new
	// state from the server response.
	CreateProject(ctx context.Context, draft domain.ProjectDraft) (*domain.Project, error)

	// UpdateProject updates the editable fields of a project.
	UpdateProject(ctx context.Context, id string, draft domain.ProjectDraft) (*domain.Project, error)

	// DeleteProject soft-deletes a project with a reason code and optional
	// free-text detail.
	DeleteProject(ctx context.Context, id string, req domain.DeleteRequest) (*domain.DeleteReceipt, error)

	// UndoDeleteProject reverses a soft delete while the server-side
	// recovery window is open.
	UndoDeleteProject(ctx context.Context, id string) (*domain.UndoReceipt, error)

	// ListPersonas returns the personas of a project.
	ListPersonas(ctx context.Context, projectID string) ([]domain.Persona, error)

	// ListFocusGroups returns the focus groups of a project.
	ListFocusGroups(ctx context.Context, projectID string) ([]domain.FocusGroup, error)

	// FetchDashboard returns the dashboard aggregate counters.
	FetchDashboard(ctx context.Context) (*domain.DashboardSummary, error)

	// StartGeneration starts a batch generation job and returns its id.
	StartGeneration(ctx context.Context, req domain.GenerationRequest) (string, error)

	// JobStatus returns the latest progress snapshot for a job. Used by
	// the poll-based progress source.
	JobStatus(ctx context.Context, jobID string) (*domain.Snapshot, error)

	// ExecuteAction invokes a named server action and returns its tagged
	// outcome.
	ExecuteAction(ctx context.Context, name string, params map[string]string) (domain.ActionOutcome, error)
}
