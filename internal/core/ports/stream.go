package ports

import (
	"context"
	"iter"

	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
)

// ProgressSource opens progress streams for generation jobs. Two
// implementations exist behind this port: a server-sent-events channel and
// a poll-based equivalent. Poll results may skip intermediate stages;
// consumers must tolerate that.
//
//go:generate mockgen -source=stream.go -destination=mocks/mock_stream.go -package=mocks
type ProgressSource interface {
	// Open connects to the progress stream for one job. It fails fast
	// with domain.ErrEmptyJobID when the request carries no job id, before
	// any connection attempt.
	Open(ctx context.Context, req domain.StreamRequest) (ProgressStream, error)
}

// ProgressStream is one live, finite-until-terminal sequence of progress
// snapshots for a single job. It is not restartable: consumers resubscribe
// through ProgressSource rather than relying on implicit reconnect.
//
// The stream holds one open network resource for its lifetime; callers must
// guarantee Close runs on every exit path.
type ProgressStream interface {
	// Events yields well-formed snapshots in arrival order. The sequence
	// ends when the stream closes, the transport fails, or a terminal
	// event arrives. Malformed payloads are dropped, not yielded.
	Events() iter.Seq[domain.Snapshot]

	// Err returns the terminal transport error, if any, once Events has
	// ended. A nil result means the stream ended cleanly or was closed by
	// the consumer.
	Err() error

	// Close releases the stream's network resource. It is idempotent and
	// safe to call before the connection is fully established or
	// concurrently with event delivery.
	Close() error
}
