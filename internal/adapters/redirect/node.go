package redirect

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/JakWdo/Symulacja-sub006/internal/adapters/api"
	"github.com/JakWdo/Symulacja-sub006/internal/adapters/logger"
	"github.com/JakWdo/Symulacja-sub006/internal/core/ports"
	"github.com/JakWdo/Symulacja-sub006/internal/engine/cache"
)

// NodeID is the unique identifier for the redirect resolver Graft node.
const NodeID graft.ID = "adapter.redirect_resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{api.NodeID, logger.NodeID, cache.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			client, err := graft.Dep[ports.APIClient](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[*cache.Store](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(client, store, log), nil
		},
	})
}
