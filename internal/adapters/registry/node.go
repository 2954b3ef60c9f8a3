package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mcvm/internal/adapters/config"
	"go.trai.ch/mcvm/internal/adapters/fetch"
	"go.trai.ch/mcvm/internal/adapters/logger"
	"go.trai.ch/mcvm/internal/adapters/repo"
	"go.trai.ch/mcvm/internal/adapters/script"
	"go.trai.ch/mcvm/internal/adapters/settings"
	"go.trai.ch/mcvm/internal/adapters/telemetry"
	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/mcvm/internal/core/ports"
)

// NodeID is the unique identifier for the package registry Graft node.
const NodeID graft.ID = "adapter.registry"

func init() {
	graft.Register(graft.Node[ports.PackageRegistry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			settings.NodeID,
			logger.NodeID,
			telemetry.NodeID,
			fetch.NodeID,
			script.NodeID,
		},
		Run: runNode,
	})
}

func runNode(ctx context.Context) (ports.PackageRegistry, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}
	s, err := graft.Dep[*domain.Settings](ctx)
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
	fetcher, err := graft.Dep[ports.Fetcher](ctx)
	if err != nil {
		return nil, err
	}
	runner, err := graft.Dep[ports.ScriptRunner](ctx)
	if err != nil {
		return nil, err
	}

	repos := make([]ports.RepositoryIndex, len(cfg.Repositories))
	for i, rc := range cfg.Repositories {
		repos[i] = repo.New(rc, s.CacheDir, fetcher)
	}

	reg := New(log, tracer, fetcher, runner, repos, s.CacheDir)
	for _, local := range cfg.LocalPackages() {
		reg.InsertLocal(local.ID, local.Path)
	}
	return reg, nil
}
