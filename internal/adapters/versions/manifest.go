// Package versions provides the ordered list of published game versions.
package versions

import (
	"context"
	"fmt"
	"os"
	"sync"

	mcvmfs "go.trai.ch/mcvm/internal/adapters/fs"
	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/mcvm/internal/core/ports"
	"go.trai.ch/zerr"
)

// Manifest downloads the version manifest once per run and keeps a copy on
// disk for when the download fails.
type Manifest struct {
	url       string
	cachePath string
	fetcher   ports.Fetcher
	logger    ports.Logger

	mu       sync.Mutex
	versions []string
}

// New creates a Manifest caching into cacheDir.
func New(fetcher ports.Fetcher, logger ports.Logger, cacheDir string) *Manifest {
	return &Manifest{
		url:       domain.VersionManifestURL,
		cachePath: domain.VersionManifestCachePath(cacheDir),
		fetcher:   fetcher,
		logger:    logger,
	}
}

// Versions returns the published versions, oldest first.
func (m *Manifest) Versions(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.versions != nil {
		return m.versions, nil
	}

	versions, err := m.download(ctx)
	if err == nil {
		m.versions = versions
		return versions, nil
	}

	cached, cacheErr := m.cached()
	if cacheErr != nil {
		return nil, err
	}
	m.logger.Warn(fmt.Sprintf("using cached game version list: %v", err))
	m.versions = cached
	return cached, nil
}

func (m *Manifest) download(ctx context.Context) ([]string, error) {
	data, err := m.fetcher.Fetch(ctx, m.url)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrVersionManifest.Error())
	}
	versions, err := domain.ParseVersionManifest(data)
	if err != nil {
		return nil, err
	}
	if err := mcvmfs.WriteFileAtomic(m.cachePath, data); err != nil {
		m.logger.Warn(fmt.Sprintf("failed to cache game version list: %v", err))
	}
	return versions, nil
}

func (m *Manifest) cached() ([]string, error) {
	data, err := os.ReadFile(m.cachePath)
	if err != nil {
		return nil, err
	}
	return domain.ParseVersionManifest(data)
}
