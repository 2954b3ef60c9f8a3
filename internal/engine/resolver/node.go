package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mcvm/internal/adapters/logger"
	"go.trai.ch/mcvm/internal/adapters/registry"
	"go.trai.ch/mcvm/internal/adapters/telemetry"
	"go.trai.ch/mcvm/internal/core/ports"
	"go.trai.ch/mcvm/internal/engine/eval"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[ports.InstanceResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{registry.NodeID, eval.NodeID, logger.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (ports.InstanceResolver, error) {
			reg, err := graft.Dep[ports.PackageRegistry](ctx)
			if err != nil {
				return nil, err
			}
			evaluator, err := graft.Dep[ports.PackageEvaluator](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return New(reg, evaluator, log, tracer), nil
		},
	})
}
