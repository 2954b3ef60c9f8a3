package versions

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mcvm/internal/adapters/fetch"
	"go.trai.ch/mcvm/internal/adapters/logger"
	"go.trai.ch/mcvm/internal/adapters/settings"
	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/mcvm/internal/core/ports"
)

// NodeID is the unique identifier for the version list Graft node.
const NodeID graft.ID = "adapter.versions"

func init() {
	graft.Register(graft.Node[ports.VersionList]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fetch.NodeID, logger.NodeID, settings.NodeID},
		Run: func(ctx context.Context) (ports.VersionList, error) {
			fetcher, err := graft.Dep[ports.Fetcher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			s, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(fetcher, log, s.CacheDir), nil
		},
	})
}
