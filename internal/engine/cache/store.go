// Package cache implements the client-side entity cache: a read-through
// store with request coalescing, per-key staleness, periodic refresh and
// dependency-graph invalidation.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
	"golang.org/x/sync/singleflight"
)

// Loader fetches the authoritative value for a cache key.
type Loader func(ctx context.Context) (any, error)

// Config carries the injected store configuration. The store is an
// explicit, constructible object created at application start; there is no
// hidden singleton.
type Config struct {
	// DefaultStaleAfter is the nominal freshness window for entries
	// without a per-key override.
	DefaultStaleAfter time.Duration

	// RefreshInterval forces a periodic refetch of RefreshKeys entries
	// even while they are nominally fresh. Zero disables the policy.
	RefreshInterval time.Duration

	// RefreshKeys are the patterns subject to the periodic refresh
	// policy, typically the near-real-time dashboard counters.
	RefreshKeys []domain.CacheKey

	// Edges is the cache-level dependency graph: invalidating a key
	// covered by an edge's source also invalidates the edge's dependents.
	Edges []domain.CacheEdge
}

// Entry is the externally visible state of one cached value.
type Entry struct {
	Key       domain.CacheKey
	Value     any
	FetchedAt time.Time
	Stale     bool
}

// entry is the internal representation.
type entry struct {
	key        domain.CacheKey
	value      any
	fetchedAt  time.Time
	staleAfter time.Duration
	stale      bool
	generation uint64
}

// Write pairs a key with a fresh authoritative value inside a Delta.
type Write struct {
	Key   domain.CacheKey
	Value any
}

// Delta is an atomic batch of cache effects for one successful mutation:
// direct writes and removals first, dependent invalidations second, all
// under a single generation stamp so no reader observes a half-applied
// state.
type Delta struct {
	Writes      []Write
	Removals    []domain.CacheKey
	Invalidates []domain.CacheKey
}

// Store is the single shared mutable entity store. It is the only
// component permitted to mutate entries; everything else reads through its
// contract or requests mutation through the coordinator.
type Store struct {
	cfg Config
	now func() time.Time

	group singleflight.Group

	mu         sync.RWMutex
	entries    map[string]*entry
	inFlight   map[string]domain.CacheKey
	keyGens    map[string]uint64
	generation uint64
	closed     bool

	debouncer *Debouncer
}

// Option configures the store.
type Option func(*Store)

// WithClock injects a time source. Used for testing.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithInvalidationNotify installs a debounced callback receiving the
// canonical forms of invalidated keys. Bursts within the window are
// coalesced into one notification so the UI re-reads once.
func WithInvalidationNotify(window time.Duration, cb func(keys []string)) Option {
	return func(s *Store) { s.debouncer = NewDebouncer(window, cb) }
}

// NewStore creates a Store with the given configuration.
func NewStore(cfg Config, opts ...Option) *Store {
	if cfg.DefaultStaleAfter <= 0 {
		cfg.DefaultStaleAfter = 30 * time.Second
	}
	s := &Store{
		cfg:      cfg,
		now:      time.Now,
		entries:  make(map[string]*entry),
		inFlight: make(map[string]domain.CacheKey),
		keyGens:  make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close tears the store down. Subsequent fetches fail with ErrStoreClosed;
// reads keep working so teardown paths can still render.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	if s.debouncer != nil {
		s.debouncer.Flush()
	}
}

// Read returns the current entry for the exact key, if any. It never
// blocks on a load; staleness is reported, not resolved.
func (s *Store) Read(key domain.CacheKey) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key.String()]
	if !ok {
		return Entry{}, false
	}
	return Entry{
		Key:       e.key,
		Value:     e.value,
		FetchedAt: e.fetchedAt,
		Stale:     s.isStaleLocked(e),
	}, true
}

// Fetch returns the value for key, loading it through loader when the
// entry is missing, stale, or due for a periodic refresh. Concurrent
// fetches for the same key are coalesced into one underlying load; every
// caller receives the same resolved value.
//
// An invalidation that lands while the load is in flight marks the result
// stale-on-arrival and triggers exactly one immediate refetch instead of
// serving it as fresh. The race is absorbed here, never surfaced.
func (s *Store) Fetch(ctx context.Context, key domain.CacheKey, loader Loader) (any, error) {
	canon := key.String()

	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return nil, domain.ErrStoreClosed
	}
	if e, ok := s.entries[canon]; ok && !s.isStaleLocked(e) {
		v := e.value
		s.mu.RUnlock()
		return v, nil
	}
	s.mu.RUnlock()

	v, raced, err := s.load(ctx, key, loader)
	if err != nil {
		return nil, err
	}
	if !raced {
		return v, nil
	}

	// Stale-on-arrival: the key was invalidated mid-flight. One forced
	// refetch; its result is accepted regardless of further races so a
	// steady stream of invalidations cannot starve the caller.
	v, _, err = s.load(ctx, key, loader)
	return v, err
}

// loadResult carries a flight's value together with its raced verdict so
// every coalesced caller sees the same one.
type loadResult struct {
	value any
	raced bool
}

// load performs one coalesced load and commits the result. It reports
// whether the key was invalidated while the load was in flight.
//
// The generation capture and the raced check both live inside the flight:
// a caller that joins an in-flight load shares the leader's verdict. Tying
// the check to the caller instead would let a joiner that arrives after an
// invalidation compare against the post-invalidation generation and accept
// the pre-invalidation value as fresh.
func (s *Store) load(ctx context.Context, key domain.CacheKey, loader Loader) (any, bool, error) {
	canon := key.String()

	res, err, _ := s.group.Do(canon, func() (any, error) {
		s.mu.Lock()
		startGen := s.keyGens[canon]
		s.inFlight[canon] = key
		s.mu.Unlock()

		v, err := loader(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.inFlight, canon)

		if err != nil {
			// A failed load caches nothing; prior state is untouched.
			return nil, err
		}

		raced := s.keyGens[canon] != startGen
		s.generation++
		s.entries[canon] = &entry{
			key:        key,
			value:      v,
			fetchedAt:  s.now(),
			staleAfter: s.cfg.DefaultStaleAfter,
			stale:      raced,
			generation: s.generation,
		}
		return loadResult{value: v, raced: raced}, nil
	})
	if err != nil {
		return nil, false, err
	}

	lr := res.(loadResult)
	return lr.value, lr.raced, nil
}

// Write sets a fresh entry directly. Used when a mutation response already
// contains the authoritative new state, avoiding a redundant round-trip.
func (s *Store) Write(key domain.CacheKey, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeLocked(key, value)
}

func (s *Store) writeLocked(key domain.CacheKey, value any) {
	s.generation++
	s.entries[key.String()] = &entry{
		key:        key,
		value:      value,
		fetchedAt:  s.now(),
		staleAfter: s.cfg.DefaultStaleAfter,
		generation: s.generation,
	}
}

// Invalidate marks every entry covered by the given patterns stale,
// together with the dependents declared by the cache-level dependency
// graph. Invalidating an already-stale key is a no-op; invalidating a key
// with an in-flight fetch marks the eventual result stale-on-arrival.
func (s *Store) Invalidate(patterns ...domain.CacheKey) {
	s.mu.Lock()
	touched := s.invalidateLocked(patterns)
	s.mu.Unlock()

	s.notify(touched)
}

// invalidateLocked applies patterns plus their declared dependents and
// returns the canonical keys that actually changed state.
func (s *Store) invalidateLocked(patterns []domain.CacheKey) []string {
	expanded := s.expandEdges(patterns)

	var touched []string
	for canon, e := range s.entries {
		if !matchesAny(e.key, expanded) {
			continue
		}
		s.keyGens[canon]++
		if !e.stale {
			e.stale = true
			touched = append(touched, canon)
		}
	}
	for canon, key := range s.inFlight {
		if matchesAny(key, expanded) {
			s.keyGens[canon]++
		}
	}
	return touched
}

// expandEdges widens the pattern set with dependents from the cache-level
// dependency graph. One level is sufficient: declared dependents are leaf
// patterns.
func (s *Store) expandEdges(patterns []domain.CacheKey) []domain.CacheKey {
	expanded := patterns
	for _, edge := range s.cfg.Edges {
		for _, p := range patterns {
			if overlaps(p, edge.Source) {
				expanded = append(expanded, edge.Dependent...)
				break
			}
		}
	}
	return expanded
}

// ApplyDelta applies a mutation's cache effects atomically: removals and
// writes first, dependent invalidations second, all under one generation
// stamp. A dependent read never observes removed-but-not-yet-invalidated
// state or the reverse.
func (s *Store) ApplyDelta(d Delta) {
	s.mu.Lock()
	s.generation++
	for _, key := range d.Removals {
		delete(s.entries, key.String())
	}
	for _, w := range d.Writes {
		s.writeLocked(w.Key, w.Value)
	}
	touched := s.invalidateLocked(d.Invalidates)
	s.mu.Unlock()

	s.notify(touched)
}

// Generation returns the current cache generation stamp. It advances on
// every mutation of the store and is used by tests to assert atomicity.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Keys returns the canonical forms of all cached keys, for diagnostics.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entries))
	for canon := range s.entries {
		keys = append(keys, canon)
	}
	return keys
}

// isStaleLocked reports whether an entry must be refetched: explicitly
// invalidated, past its nominal staleness window, or due for a periodic
// refresh. Both policies coexist; either alone forces the refetch.
func (s *Store) isStaleLocked(e *entry) bool {
	if e.stale {
		return true
	}
	age := s.now().Sub(e.fetchedAt)
	if age >= e.staleAfter {
		return true
	}
	if s.cfg.RefreshInterval > 0 && age >= s.cfg.RefreshInterval && matchesAny(e.key, s.cfg.RefreshKeys) {
		return true
	}
	return false
}

func (s *Store) notify(touched []string) {
	if s.debouncer == nil || len(touched) == 0 {
		return
	}
	for _, canon := range touched {
		s.debouncer.Add(canon)
	}
}

func matchesAny(key domain.CacheKey, patterns []domain.CacheKey) bool {
	for _, p := range patterns {
		if key.Matches(p) {
			return true
		}
	}
	return false
}

// overlaps reports whether two patterns can cover a common key: one is a
// wildcard-aware prefix of the other.
func overlaps(a, b domain.CacheKey) bool {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != domain.Wildcard && b[i] != domain.Wildcard && a[i] != b[i] {
			return false
		}
	}
	return true
}
