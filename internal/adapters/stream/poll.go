package stream

import (
	"context"
	"errors"
	"iter"
	"sync"
	"time"

	"go.trai.ch/zerr"

	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
	"github.com/JakWdo/Symulacja-sub006/internal/core/ports"
)

const defaultPollInterval = 2 * time.Second

// maxConsecutivePollFailures is how many status requests may fail in a row
// before the stream is considered lost. Transient failures in between
// successful polls reset the count.
const maxConsecutivePollFailures = 3

// PollSource adapts the job status endpoint into a progress stream for
// environments where the event-stream endpoint is unavailable. The tracker
// cannot tell the two sources apart.
type PollSource struct {
	api      ports.APIClient
	interval time.Duration
	logger   ports.Logger
}

// NewPollSource creates a poll-backed progress source.
func NewPollSource(api ports.APIClient, interval time.Duration, logger ports.Logger) *PollSource {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &PollSource{api: api, interval: interval, logger: logger}
}

// Open implements ports.ProgressSource.
func (p *PollSource) Open(ctx context.Context, req domain.StreamRequest) (ports.ProgressStream, error) {
	if req.JobID == "" {
		return nil, domain.ErrEmptyJobID
	}

	ctx, cancel := context.WithCancel(ctx)
	stream := &pollStream{
		api:      p.api,
		jobID:    req.JobID,
		interval: p.interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan domain.Snapshot),
	}
	go stream.poll()
	return stream, nil
}

type pollStream struct {
	api      ports.APIClient
	jobID    string
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	events chan domain.Snapshot

	mu  sync.Mutex
	err error

	closeOnce sync.Once
}

// poll requests the job status on a fixed cadence until a terminal stage
// arrives. Skipped intermediate stages are fine; the tracker's monotonic
// fold absorbs coarse sampling.
func (s *pollStream) poll() {
	defer close(s.events)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	failures := 0
	for {
		snapshot, err := s.api.JobStatus(s.ctx, s.jobID)
		if err != nil {
			if errors.Is(s.ctx.Err(), context.Canceled) {
				return
			}
			failures++
			if failures >= maxConsecutivePollFailures {
				s.mu.Lock()
				s.err = zerr.Wrap(domain.ErrConnectionLost, err.Error())
				s.mu.Unlock()
				return
			}
		} else {
			failures = 0
			select {
			case s.events <- *snapshot:
			case <-s.ctx.Done():
				return
			}
			if snapshot.Stage.Terminal() {
				return
			}
		}

		select {
		case <-ticker.C:
		case <-s.ctx.Done():
			return
		}
	}
}

// Events implements ports.ProgressStream.
func (s *pollStream) Events() iter.Seq[domain.Snapshot] {
	return func(yield func(domain.Snapshot) bool) {
		for snapshot := range s.events {
			if !yield(snapshot) {
				return
			}
		}
	}
}

// Err implements ports.ProgressStream.
func (s *pollStream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close implements ports.ProgressStream. It is idempotent.
func (s *pollStream) Close() error {
	s.closeOnce.Do(func() {
		s.cancel()
		go func() {
			for range s.events {
			}
		}()
	})
	return nil
}

var _ ports.ProgressSource = (*PollSource)(nil)
