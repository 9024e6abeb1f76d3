package api

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/JakWdo/Symulacja-sub006/internal/adapters/config"
	"github.com/JakWdo/Symulacja-sub006/internal/core/ports"
)

// NodeID is the unique identifier for the API client Graft node.
const NodeID graft.ID = "adapter.api_client"

func init() {
	graft.Register(graft.Node[ports.APIClient]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.APIClient, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(cfg.Server.BaseURL, cfg.Server.Timeout), nil
		},
	})
}
