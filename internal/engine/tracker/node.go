package tracker

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/JakWdo/Symulacja-sub006/internal/adapters/logger"
	"github.com/JakWdo/Symulacja-sub006/internal/adapters/stream"
	"github.com/JakWdo/Symulacja-sub006/internal/adapters/telemetry"
	"github.com/JakWdo/Symulacja-sub006/internal/core/ports"
)

// NodeID is the unique identifier for the tracker Graft node.
const NodeID graft.ID = "engine.tracker"

func init() {
	graft.Register(graft.Node[*Tracker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{stream.NodeID, logger.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (*Tracker, error) {
			source, err := graft.Dep[ports.ProgressSource](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return New(source, log, tracer), nil
		},
	})
}
