package ports

import "context"

// Tracer creates spans around mutations and cache fetches.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start creates a new span. The returned context carries the span for
	// nested instrumentation.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span is one traced unit of work.
type Span interface {
	// End completes the span.
	End()

	// RecordError records an error against the span.
	RecordError(err error)

	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}
