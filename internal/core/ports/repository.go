package ports

import (
	"context"

	"go.trai.ch/mcvm/internal/core/domain"
)

// RepositoryIndex is one remote package repository.
//
//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
type RepositoryIndex interface {
	// ID returns the configured repository id.
	ID() string
	// URL returns the repository base url.
	URL() string
	// Sync downloads the index and replaces the cached copy.
	// On failure the previous index stays in use.
	Sync(ctx context.Context) error
	// Query looks up a package. The index is loaded lazily from the disk
	// cache, syncing only when no usable cache exists.
	Query(ctx context.Context, id string) (*domain.RepoPackageEntry, bool, error)
	// Packages returns every package id in the index, sorted.
	Packages(ctx context.Context) ([]string, error)
	// Metadata returns the repository's self description.
	Metadata(ctx context.Context) (domain.RepoMetadata, error)
}
