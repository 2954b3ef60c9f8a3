package installer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mcvm/internal/adapters/fetch"
	"go.trai.ch/mcvm/internal/core/ports"
)

// NodeID is the unique identifier for the addon installer Graft node.
const NodeID graft.ID = "adapter.installer"

func init() {
	graft.Register(graft.Node[ports.AddonInstaller]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fetch.NodeID},
		Run: func(ctx context.Context) (ports.AddonInstaller, error) {
			fetcher, err := graft.Dep[ports.Fetcher](ctx)
			if err != nil {
				return nil, err
			}
			return New(fetcher), nil
		},
	})
}
