package ports

import (
	"context"

	"go.trai.ch/mcvm/internal/core/domain"
)

// PackageRegistry locates, caches and parses package definitions.
// A registry is scoped to one run; each package is loaded at most once.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type PackageRegistry interface {
	// Contains reports whether any local package or repository provides id.
	Contains(ctx context.Context, id domain.PackageID) bool
	// Load returns the package text. force bypasses the disk cache.
	Load(ctx context.Context, req *domain.PackageRequest, force bool) ([]byte, error)
	// ContentType returns the authoring format of the package.
	ContentType(ctx context.Context, req *domain.PackageRequest) (domain.ContentType, error)
	// Parse returns the parsed declarative package.
	Parse(ctx context.Context, req *domain.PackageRequest) (*domain.DeclarativePackage, error)
	// ParseAndValidate checks syntax and schema without evaluating.
	ParseAndValidate(ctx context.Context, req *domain.PackageRequest) error
	// Metadata returns the descriptive fields of the package.
	Metadata(ctx context.Context, req *domain.PackageRequest) (*domain.PackageMetadata, error)
	// Properties returns the machine readable fields of the package.
	Properties(ctx context.Context, req *domain.PackageRequest) (*domain.PackageProperties, error)
	// Version returns the repository version of the package, if any.
	Version(ctx context.Context, req *domain.PackageRequest) (string, error)
	// Flags returns the advisory flags of the package.
	Flags(ctx context.Context, req *domain.PackageRequest) ([]domain.PackageFlag, error)
	// Sync syncs every repository and drops cached package files.
	Sync(ctx context.Context) error
	// AllPackages returns every package id served by any repository, sorted.
	AllPackages(ctx context.Context) ([]string, error)
	// Repositories describes the configured repositories in priority order.
	Repositories(ctx context.Context) ([]domain.RepoInfo, error)
	// InsertLocal registers a package backed by a local file.
	InsertLocal(id domain.PackageID, path string)
}
