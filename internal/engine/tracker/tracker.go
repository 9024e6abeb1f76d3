// Package tracker drives the lifecycle of long-running generation jobs:
// it consumes a job's progress stream, folds events into a monotonic job
// state and delivers exactly one terminal notification per job.
package tracker

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/zerr"

	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
	"github.com/JakWdo/Symulacja-sub006/internal/core/ports"
)

// Callbacks receive job progress. All callbacks are optional; they are
// invoked from the tracking goroutine, never concurrently with each other.
type Callbacks struct {
	// OnSnapshot fires for every accepted (non-regressing) snapshot.
	OnSnapshot func(domain.Snapshot)
	// OnCompleted fires once when the job reaches the completed stage.
	OnCompleted func(domain.GenerationJob)
	// OnFailed fires once when the job fails or the stream is lost.
	OnFailed func(domain.GenerationJob, error)
}

// Tracker opens progress streams and tracks jobs to completion.
type Tracker struct {
	source ports.ProgressSource
	logger ports.Logger
	tracer ports.Tracer
}

// New creates a Tracker reading from the given progress source.
func New(source ports.ProgressSource, logger ports.Logger, tracer ports.Tracer) *Tracker {
	return &Tracker{source: source, logger: logger, tracer: tracer}
}

// Track opens the progress stream for req and consumes it in a background
// goroutine until the job terminates, the stream ends, or the handle is
// cancelled. An empty job id fails fast without opening a connection.
func (t *Tracker) Track(ctx context.Context, req domain.StreamRequest, cb Callbacks) (*Handle, error) {
	if req.JobID == "" {
		return nil, domain.ErrEmptyJobID
	}

	ctx, span := t.tracer.Start(ctx, "tracker.Track")
	span.SetAttribute("job.id", req.JobID)
	span.SetAttribute("job.kind", string(req.Kind))

	stream, err := t.source.Open(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.End()
		return nil, zerr.Wrap(err, "open progress stream")
	}

	h := &Handle{
		job:    domain.NewGenerationJob(req.JobID, req.Kind),
		stream: stream,
		logger: t.logger,
		done:   make(chan struct{}),
	}
	go h.run(cb, span)
	return h, nil
}

// Handle is the caller's grip on one tracked job.
type Handle struct {
	mu     sync.Mutex
	job    domain.GenerationJob
	stream ports.ProgressStream
	logger ports.Logger

	finishOnce sync.Once
	done       chan struct{}
	err        error
}

// run consumes the stream until the job terminates or the stream ends.
func (h *Handle) run(cb Callbacks, span ports.Span) {
	defer span.End()
	defer h.stream.Close()

	for snapshot := range h.stream.Events() {
		h.mu.Lock()
		accepted := h.job.Apply(snapshot)
		job := h.job
		h.mu.Unlock()

		if !accepted {
			h.logger.Warn(fmt.Sprintf("discarded out-of-order progress event for job %s (stage %s)",
				job.JobID, snapshot.Stage))
			continue
		}

		if cb.OnSnapshot != nil && !snapshot.Stage.Terminal() {
			cb.OnSnapshot(snapshot)
		}
		if snapshot.Stage.Terminal() {
			h.finish(cb, span, job)
			return
		}
	}

	// The stream ended without delivering a terminal stage. A local
	// cancellation explains that silently; anything else is a lost
	// connection and the job is reported failed.
	h.mu.Lock()
	cancelled := h.job.Stage == domain.StageCancelled
	job := h.job
	h.mu.Unlock()
	if cancelled {
		return
	}

	err := h.stream.Err()
	if err == nil {
		err = domain.ErrConnectionLost
	} else {
		err = zerr.Wrap(domain.ErrConnectionLost, err.Error())
	}
	span.RecordError(err)
	h.fail(cb, job, err)
}

// finish delivers the terminal notification for a job that reached a
// terminal stage over the stream.
func (h *Handle) finish(cb Callbacks, span ports.Span, job domain.GenerationJob) {
	if job.Stage == domain.StageCompleted {
		h.finishOnce.Do(func() {
			defer close(h.done)
			if cb.OnCompleted != nil {
				cb.OnCompleted(job)
			}
		})
		return
	}

	err := domain.ErrGenerationFailed
	if job.ErrorMessage != "" {
		err = zerr.Wrap(domain.ErrGenerationFailed, job.ErrorMessage)
	}
	span.RecordError(err)
	h.fail(cb, job, err)
}

// fail delivers the failure notification at most once.
func (h *Handle) fail(cb Callbacks, job domain.GenerationJob, err error) {
	h.finishOnce.Do(func() {
		defer close(h.done)
		h.mu.Lock()
		h.err = err
		h.mu.Unlock()
		if cb.OnFailed != nil {
			cb.OnFailed(job, err)
		}
	})
}

// Cancel abandons tracking. The job is marked with the local cancelled
// marker, the stream is closed, and no terminal callback fires. Cancelling
// an already-terminal or already-cancelled job is a no-op.
func (h *Handle) Cancel() {
	h.mu.Lock()
	already := h.job.Stage.Terminal() || h.job.Stage == domain.StageCancelled
	h.job.Cancel()
	h.mu.Unlock()
	if already {
		return
	}

	h.finishOnce.Do(func() { close(h.done) })
	if err := h.stream.Close(); err != nil {
		h.logger.Warn(fmt.Sprintf("closing progress stream: %v", err))
	}
}

// Done is closed when tracking ends for any reason.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until tracking ends or ctx is done, then returns the job's
// terminal error, if any.
func (h *Handle) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-h.done:
	}
	return h.Err()
}

// Job returns a copy of the current job state.
func (h *Handle) Job() domain.GenerationJob {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.job
}

// Err returns the terminal error, or nil while tracking or after success.
func (h *Handle) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}
