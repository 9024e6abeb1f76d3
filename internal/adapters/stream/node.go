package stream

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/zerr"

	"github.com/JakWdo/Symulacja-sub006/internal/adapters/api"
	"github.com/JakWdo/Symulacja-sub006/internal/adapters/config"
	"github.com/JakWdo/Symulacja-sub006/internal/adapters/logger"
	"github.com/JakWdo/Symulacja-sub006/internal/core/domain"
	"github.com/JakWdo/Symulacja-sub006/internal/core/ports"
)

// NodeID is the unique identifier for the progress source Graft node.
const NodeID graft.ID = "adapter.progress_source"

func init() {
	graft.Register(graft.Node[ports.ProgressSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID, api.NodeID},
		Run: func(ctx context.Context) (ports.ProgressSource, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			switch cfg.Stream.Mode {
			case config.StreamModeSSE:
				return NewSSESource(cfg.Server.BaseURL, log), nil
			case config.StreamModePoll:
				client, err := graft.Dep[ports.APIClient](ctx)
				if err != nil {
					return nil, err
				}
				return NewPollSource(client, cfg.Stream.PollInterval, log), nil
			default:
				return nil, zerr.With(domain.ErrUnknownStreamMode, "mode", string(cfg.Stream.Mode))
			}
		},
	})
}
