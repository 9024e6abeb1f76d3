package coordinator

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/JakWdo/Symulacja-sub006/internal/adapters/api"
	"github.com/JakWdo/Symulacja-sub006/internal/adapters/config"
	"github.com/JakWdo/Symulacja-sub006/internal/adapters/logger"
	"github.com/JakWdo/Symulacja-sub006/internal/adapters/telemetry"
	"github.com/JakWdo/Symulacja-sub006/internal/core/ports"
	"github.com/JakWdo/Symulacja-sub006/internal/engine/cache"
	"github.com/JakWdo/Symulacja-sub006/internal/engine/tracker"
)

// NodeID is the unique identifier for the coordinator Graft node.
const NodeID graft.ID = "engine.coordinator"

func init() {
	graft.Register(graft.Node[*Coordinator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			api.NodeID,
			cache.NodeID,
			tracker.NodeID,
			config.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Coordinator, error) {
			client, err := graft.Dep[ports.APIClient](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[*cache.Store](ctx)
			if err != nil {
				return nil, err
			}
			trk, err := graft.Dep[*tracker.Tracker](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*config.Config](ctx)
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
			return New(client, store, trk, log, tracer, Config{UndoWindow: cfg.Undo.Window}), nil
		},
	})
}
