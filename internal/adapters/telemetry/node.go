package telemetry

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/JakWdo/Symulacja-sub006/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry adapter Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			return NewOTelTracer("symctl"), nil
		},
	})
}
