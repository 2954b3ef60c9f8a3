package updater

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mcvm/internal/adapters/installer"
	"go.trai.ch/mcvm/internal/adapters/lockfile"
	"go.trai.ch/mcvm/internal/adapters/logger"
	"go.trai.ch/mcvm/internal/adapters/prompt"
	"go.trai.ch/mcvm/internal/adapters/registry"
	"go.trai.ch/mcvm/internal/adapters/settings"
	"go.trai.ch/mcvm/internal/adapters/telemetry"
	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/mcvm/internal/core/ports"
	"go.trai.ch/mcvm/internal/engine/resolver"
)

// NodeID is the unique identifier for the updater Graft node.
const NodeID graft.ID = "engine.updater"

func init() {
	graft.Register(graft.Node[*Updater]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			resolver.NodeID,
			registry.NodeID,
			installer.NodeID,
			lockfile.NodeID,
			prompt.NodeID,
			logger.NodeID,
			telemetry.NodeID,
			settings.NodeID,
		},
		Run: runNode,
	})
}

func runNode(ctx context.Context) (*Updater, error) {
	res, err := graft.Dep[ports.InstanceResolver](ctx)
	if err != nil {
		return nil, err
	}
	reg, err := graft.Dep[ports.PackageRegistry](ctx)
	if err != nil {
		return nil, err
	}
	inst, err := graft.Dep[ports.AddonInstaller](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.LockfileStore](ctx)
	if err != nil {
		return nil, err
	}
	prompter, err := graft.Dep[ports.Prompter](ctx)
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
	s, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}
	return New(res, reg, inst, store, prompter, log, tracer, s.DataDir), nil
}
