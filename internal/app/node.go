package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/JakWdo/Symulacja-sub006/internal/adapters/api"
	"github.com/JakWdo/Symulacja-sub006/internal/adapters/config"
	"github.com/JakWdo/Symulacja-sub006/internal/adapters/logger"
	"github.com/JakWdo/Symulacja-sub006/internal/adapters/redirect"
	"github.com/JakWdo/Symulacja-sub006/internal/core/ports"
	"github.com/JakWdo/Symulacja-sub006/internal/engine/cache"
	"github.com/JakWdo/Symulacja-sub006/internal/engine/coordinator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			api.NodeID,
			cache.NodeID,
			coordinator.NodeID,
			redirect.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			client, err := graft.Dep[ports.APIClient](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[*cache.Store](ctx)
			if err != nil {
				return nil, err
			}
			coord, err := graft.Dep[*coordinator.Coordinator](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[*redirect.Resolver](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(client, store, coord, resolver, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(application, log, cfg), nil
		},
	})
}
