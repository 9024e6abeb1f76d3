// Package coordinator is the single write path of the client. Every
// mutation flows through it so that server effects and cache effects stay
// in lockstep: a successful mutation applies its full cache delta
// atomically, a failed one leaves the cache untouched.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"

	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
	"github.com/JakWdo/Symulacja-sub006/internal/core/ports"
	"github.com/JakWdo/Symulacja-sub006/internal/engine/cache"
	"github.com/JakWdo/Symulacja-sub006/internal/engine/tracker"
)

// Config carries the coordinator's tunables.
type Config struct {
	// UndoWindow is the advisory local undo window used when the server
	// response does not carry an explicit recovery deadline.
	UndoWindow time.Duration
}

// Option configures the coordinator.
type Option func(*Coordinator)

// WithClock injects a time source. Used for testing.
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) { c.now = now }
}

// Coordinator serializes mutations per affected key set and applies their
// cache deltas through the store.
type Coordinator struct {
	api     ports.APIClient
	store   *cache.Store
	tracker *tracker.Tracker
	logger  ports.Logger
	tracer  ports.Tracer
	cfg     Config
	now     func() time.Time

	mu      sync.Mutex
	locks   map[uint64]*sync.Mutex
	pending map[string]*pendingEntry
}

type pendingEntry struct {
	deletion domain.PendingDeletion
	timer    *time.Timer
}

// New creates a Coordinator.
func New(api ports.APIClient, store *cache.Store, trk *tracker.Tracker, logger ports.Logger, tracer ports.Tracer, cfg Config, opts ...Option) *Coordinator {
	if cfg.UndoWindow <= 0 {
		cfg.UndoWindow = 30 * time.Second
	}
	c := &Coordinator{
		api:     api,
		store:   store,
		tracker: trk,
		logger:  logger,
		tracer:  tracer,
		cfg:     cfg,
		now:     time.Now,
		locks:   make(map[uint64]*sync.Mutex),
		pending: make(map[string]*pendingEntry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close stops the advisory undo timers.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, entry := range c.pending {
		entry.timer.Stop()
	}
	c.pending = make(map[string]*pendingEntry)
}

// lockFor serializes mutations whose affected key sets hash to the same
// slot. Disjoint mutations proceed concurrently.
func (c *Coordinator) lockFor(keys []domain.CacheKey) func() {
	canon := make([]string, len(keys))
	for i, k := range keys {
		canon[i] = k.String()
	}
	slices.Sort(canon)
	slot := xxhash.Sum64String(strings.Join(canon, "\n"))

	c.mu.Lock()
	mu, ok := c.locks[slot]
	if !ok {
		mu = &sync.Mutex{}
		c.locks[slot] = mu
	}
	c.mu.Unlock()

	mu.Lock()
	return mu.Unlock
}

// CreateProject creates a project, writes the authoritative response state
// into the cache and invalidates the dependent collections.
func (c *Coordinator) CreateProject(ctx context.Context, draft domain.ProjectDraft) (*domain.Project, error) {
	ctx, span := c.tracer.Start(ctx, "coordinator.CreateProject")
	defer span.End()

	invalidates := domain.DependentsFor(domain.MutationCreate, domain.ResourceProject)

	project, err := c.api.CreateProject(ctx, draft)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "create project")
	}
	span.SetAttribute("project.id", project.ID)

	unlock := c.lockFor(invalidates)
	defer unlock()
	c.store.ApplyDelta(cache.Delta{
		Writes:      []cache.Write{{Key: domain.KeyProject(project.ID), Value: project}},
		Invalidates: invalidates,
	})
	return project, nil
}

// UpdateProject updates a project's editable fields. The cached detail
// entry is replaced with the server response; collections are invalidated.
func (c *Coordinator) UpdateProject(ctx context.Context, id string, draft domain.ProjectDraft) (*domain.Project, error) {
	ctx, span := c.tracer.Start(ctx, "coordinator.UpdateProject")
	defer span.End()
	span.SetAttribute("project.id", id)

	invalidates := domain.DependentsFor(domain.MutationUpdate, domain.ResourceProject)

	project, err := c.api.UpdateProject(ctx, id, draft)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "update project")
	}

	unlock := c.lockFor(invalidates)
	defer unlock()
	c.store.ApplyDelta(cache.Delta{
		Writes:      []cache.Write{{Key: domain.KeyProject(id), Value: project}},
		Invalidates: invalidates,
	})
	return project, nil
}

// SoftDeleteProject soft-deletes a project. On success the cached detail
// entry is removed and every dependent collection is invalidated in the
// same atomic delta, and a pending deletion record opens the local undo
// affordance. The recovery deadline comes from the server when present,
// otherwise the configured advisory window applies.
func (c *Coordinator) SoftDeleteProject(ctx context.Context, id string, req domain.DeleteRequest, displayName string) (*domain.DeleteReceipt, error) {
	ctx, span := c.tracer.Start(ctx, "coordinator.SoftDeleteProject")
	defer span.End()
	span.SetAttribute("project.id", id)
	span.SetAttribute("delete.reason", string(req.Reason))

	invalidates := domain.DependentsFor(domain.MutationSoftDelete, domain.ResourceProject)

	receipt, err := c.api.DeleteProject(ctx, id, req)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, "delete project")
	}

	deadline := c.now().Add(c.cfg.UndoWindow)
	if receipt.RecoveryDeadline != nil {
		deadline = *receipt.RecoveryDeadline
	}
	c.recordPending(domain.PendingDeletion{
		ResourceID:       id,
		Resource:         domain.ResourceProject,
		DeletedAt:        c.now(),
		RecoveryDeadline: deadline,
		SnapshotHint:     displayName,
	})

	unlock := c.lockFor(invalidates)
	defer unlock()
	c.store.ApplyDelta(cache.Delta{
		Removals:    []domain.CacheKey{domain.KeyProject(id)},
		Invalidates: invalidates,
	})
	return receipt, nil
}

// recordPending registers the undo affordance and arms the advisory expiry
// timer. The timer only retires the local affordance; the server remains
// authoritative when an undo is actually attempted.
func (c *Coordinator) recordPending(d domain.PendingDeletion) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if prev, ok := c.pending[d.ResourceID]; ok {
		prev.timer.Stop()
	}
	entry := &pendingEntry{deletion: d}
	entry.timer = time.AfterFunc(d.RecoveryDeadline.Sub(c.now()), func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if cur, ok := c.pending[d.ResourceID]; ok && cur == entry {
			delete(c.pending, d.ResourceID)
		}
	})
	c.pending[d.ResourceID] = entry
}

// PendingDeletion returns the local undo affordance for a resource, if the
// advisory window is still open.
func (c *Coordinator) PendingDeletion(id string) (domain.PendingDeletion, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.pending[id]
	if !ok {
		return domain.PendingDeletion{}, false
	}
	return entry.deletion, ok
}

// UndoDelete reverses a soft delete. The server is always consulted, even
// after the local window has lapsed: a stale affordance must not block a
// still-valid undo, and an optimistic one must not fake success. On
// ErrUndoExpired the local affordance is retired.
func (c *Coordinator) UndoDelete(ctx context.Context, id string) (*domain.UndoReceipt, error) {
	ctx, span := c.tracer.Start(ctx, "coordinator.UndoDelete")
	defer span.End()
	span.SetAttribute("project.id", id)

	invalidates := domain.DependentsFor(domain.MutationUndoDelete, domain.ResourceProject)

	receipt, err := c.api.UndoDeleteProject(ctx, id)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, domain.ErrUndoExpired) {
			c.retirePending(id)
		}
		return nil, zerr.Wrap(err, "undo delete")
	}
	c.retirePending(id)

	unlock := c.lockFor(invalidates)
	defer unlock()
	c.store.Invalidate(invalidates...)
	return receipt, nil
}

func (c *Coordinator) retirePending(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, ok := c.pending[id]; ok {
		entry.timer.Stop()
		delete(c.pending, id)
	}
}

// ExecuteAction invokes a named server action. Success and error outcomes
// invalidate the dashboard counters the action may have moved; a redirect
// outcome carries no cache effect and is handed back for navigation.
func (c *Coordinator) ExecuteAction(ctx context.Context, name string, params map[string]string) (domain.ActionOutcome, error) {
	ctx, span := c.tracer.Start(ctx, "coordinator.ExecuteAction")
	defer span.End()
	span.SetAttribute("action.name", name)

	outcome, err := c.api.ExecuteAction(ctx, name, params)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, fmt.Sprintf("execute action %s", name))
	}

	switch outcome.(type) {
	case domain.ActionSuccess, domain.ActionError:
		invalidates := domain.DependentsFor(domain.MutationExecuteAction, domain.ResourceDashboard)
		unlock := c.lockFor(invalidates)
		defer unlock()
		c.store.Invalidate(invalidates...)
	case domain.ActionRedirect:
		// Navigation only. The target view fetches through the cache on
		// arrival, so no invalidation is needed here.
	}
	return outcome, nil
}

// StartGeneration starts a batch generation job and tracks it. When the
// job completes, the collections the new artifacts land in are invalidated
// before the caller's completion callback observes the result.
func (c *Coordinator) StartGeneration(ctx context.Context, req domain.GenerationRequest, cb tracker.Callbacks) (*tracker.Handle, error) {
	ctx, span := c.tracer.Start(ctx, "coordinator.StartGeneration")
	defer span.End()
	span.SetAttribute("generation.kind", string(req.Kind))
	span.SetAttribute("project.id", req.ProjectID)

	jobID, err := c.api.StartGeneration(ctx, req)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(domain.ErrJobStartFailed, err.Error())
	}
	span.SetAttribute("job.id", jobID)

	resource := domain.ResourcePersona
	if req.Kind == domain.KindFocusGroup {
		resource = domain.ResourceFocusGroup
	}
	invalidates := domain.DependentsFor(domain.MutationGeneration, resource)

	wrapped := cb
	wrapped.OnCompleted = func(job domain.GenerationJob) {
		unlock := c.lockFor(invalidates)
		c.store.Invalidate(invalidates...)
		unlock()
		if cb.OnCompleted != nil {
			cb.OnCompleted(job)
		}
	}

	return c.tracker.Track(ctx, domain.StreamRequest{
		JobID:              jobID,
		Kind:               req.Kind,
		UnitCount:          req.Count,
		UseKnowledgeSource: req.UseKnowledgeSource,
	}, wrapped)
}
