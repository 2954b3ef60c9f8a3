package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mcvm/internal/adapters/settings"
	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/mcvm/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			lg := New().(*Logger)
			lg.SetJSON(settings.JSONLogs)
			lg.SetDebug(settings.Debug)
			return lg, nil
		},
	})
}
