package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mcvm/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/mcvm/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/mcvm/internal/adapters/registry" //nolint:depguard // Wired in app layer
	"go.trai.ch/mcvm/internal/adapters/settings" //nolint:depguard // Wired in app layer
	"go.trai.ch/mcvm/internal/adapters/versions" //nolint:depguard // Wired in app layer
	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/mcvm/internal/core/ports"
	"go.trai.ch/mcvm/internal/engine/updater"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			settings.NodeID,
			registry.NodeID,
			versions.NodeID,
			updater.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}
	s, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}
	reg, err := graft.Dep[ports.PackageRegistry](ctx)
	if err != nil {
		return nil, err
	}
	vl, err := graft.Dep[ports.VersionList](ctx)
	if err != nil {
		return nil, err
	}
	upd, err := graft.Dep[*updater.Updater](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(cfg, s, reg, vl, upd, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return &Components{App: a, Logger: log}, nil
}
