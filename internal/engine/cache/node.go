package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/grindlemire/graft"

	"github.com/JakWdo/Symulacja-sub006/internal/adapters/config"
	"github.com/JakWdo/Symulacja-sub006/internal/adapters/logger"
	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
	"github.com/JakWdo/Symulacja-sub006/internal/core/ports"
)

// NodeID is the unique identifier for the entity store Graft node.
const NodeID graft.ID = "engine.entity_store"

// notifyWindow batches invalidation bursts from one mutation into a single
// log line.
const notifyWindow = 200 * time.Millisecond

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Store, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(Config{
				DefaultStaleAfter: cfg.Cache.StaleAfter,
				RefreshInterval:   cfg.Cache.DashboardRefresh,
				RefreshKeys:       []domain.CacheKey{domain.KeyAllDashboard()},
				Edges:             domain.DefaultCacheEdges(),
			}, WithInvalidationNotify(notifyWindow, func(keys []string) {
				log.Info(fmt.Sprintf("cache invalidated: %s", strings.Join(keys, ", ")))
			})), nil
		},
	})
}
