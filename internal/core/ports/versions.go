package ports

import "context"

// VersionList provides the published game versions, oldest first.
// Version patterns such as "1.18+" and "latest" are ordered against it.
//
//go:generate mockgen -source=versions.go -destination=mocks/mock_versions.go -package=mocks
type VersionList interface {
	Versions(ctx context.Context) ([]string, error)
}
