package ports

import (
	"context"

	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
)

// JobRenderer is the abstraction for rendering generation job progress.
// It decouples the tracker's snapshot stream from presentation, allowing
// the same events to drive either a rich TUI or linear CI logs.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type JobRenderer interface {
	// Start initializes the renderer. Asynchronous renderers may launch
	// background goroutines here.
	Start(ctx context.Context) error

	// Stop signals the renderer to stop accepting new events and flush
	// buffered output.
	Stop() error

	// Wait blocks until the renderer has fully terminated. Synchronous
	// renderers may return immediately.
	Wait() error

	// OnJobStart is called once when tracking of a job begins.
	OnJobStart(jobID string, kind domain.JobKind, unitsTotal int)

	// OnSnapshot is called for every accepted progress snapshot.
	OnSnapshot(s domain.Snapshot)

	// OnJobDone is called exactly once with the final job state. err is
	// nil on completion, the failure reason otherwise. Cancellation
	// reports a nil error with the cancelled marker stage.
	OnJobDone(job domain.GenerationJob, err error)
}
