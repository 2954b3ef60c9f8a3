package ports

import (
	"context"

	"go.trai.ch/mcvm/internal/core/domain"
)

// LockfileStore persists the lockfile.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type LockfileStore interface {
	// Load reads the lockfile. A missing lockfile yields an empty one.
	Load(ctx context.Context) (*domain.Lockfile, error)
	// Save replaces the lockfile atomically.
	Save(ctx context.Context, lock *domain.Lockfile) error
}

// ConfigLoader loads the user configuration.
type ConfigLoader interface {
	// Load reads and normalizes the configuration. A missing file yields an empty config.
	Load(ctx context.Context) (*domain.Config, error)
}
