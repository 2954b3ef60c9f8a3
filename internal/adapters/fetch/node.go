package fetch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mcvm/internal/adapters/settings"
	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/mcvm/internal/core/ports"
)

// NodeID is the unique identifier for the fetcher Graft node.
const NodeID graft.ID = "adapter.fetcher"

func init() {
	graft.Register(graft.Node[ports.Fetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID},
		Run: func(ctx context.Context) (ports.Fetcher, error) {
			s, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(s.HTTPTimeout), nil
		},
	})
}
