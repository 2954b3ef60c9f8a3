package eval

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mcvm/internal/adapters/registry"
	"go.trai.ch/mcvm/internal/adapters/script"
	"go.trai.ch/mcvm/internal/core/ports"
)

// NodeID is the unique identifier for the package evaluator Graft node.
const NodeID graft.ID = "engine.evaluator"

func init() {
	graft.Register(graft.Node[ports.PackageEvaluator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{registry.NodeID, script.NodeID},
		Run: func(ctx context.Context) (ports.PackageEvaluator, error) {
			reg, err := graft.Dep[ports.PackageRegistry](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.ScriptRunner](ctx)
			if err != nil {
				return nil, err
			}
			return New(reg, runner), nil
		},
	})
}
