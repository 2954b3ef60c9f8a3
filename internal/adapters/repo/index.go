// Package repo implements remote package repositories backed by a JSON index.
package repo

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"
	"sync"

	mcvmfs "go.trai.ch/mcvm/internal/adapters/fs"
	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/mcvm/internal/core/ports"
	"go.trai.ch/zerr"
)

// IndexPath is appended to the repository url to locate the index.
const IndexPath = "/api/mcvm/index.json"

// Index is a repository whose package list is cached on disk.
type Index struct {
	id        string
	url       string
	cachePath string
	fetcher   ports.Fetcher

	mu    sync.Mutex
	index *domain.RepoIndex
}

// New creates an Index for the repository described by cfg.
func New(cfg domain.RepositoryConfig, cacheDir string, fetcher ports.Fetcher) *Index {
	return &Index{
		id:        cfg.ID,
		url:       strings.TrimSuffix(cfg.URL, "/"),
		cachePath: domain.RepoIndexCachePath(cacheDir, cfg.ID),
		fetcher:   fetcher,
	}
}

// ID returns the repository id.
func (r *Index) ID() string { return r.id }

// URL returns the repository base url.
func (r *Index) URL() string { return r.url }

// Sync downloads the index and replaces both the disk cache and the loaded copy.
func (r *Index) Sync(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.syncLocked(ctx)
}

func (r *Index) syncLocked(ctx context.Context) error {
	data, err := r.fetcher.Fetch(ctx, r.url+IndexPath)
	if err != nil {
		return r.syncErr(err)
	}
	idx, err := domain.ParseRepoIndex(data)
	if err != nil {
		return r.syncErr(err)
	}
	if err := mcvmfs.WriteFileAtomic(r.cachePath, data); err != nil {
		return r.syncErr(err)
	}
	r.index = idx
	return nil
}

func (r *Index) syncErr(err error) error {
	return zerr.With(zerr.Wrap(err, domain.ErrRepoSync.Error()), "repository", r.id)
}

// ensure loads the cached index, syncing only when no usable cache exists.
func (r *Index) ensure(ctx context.Context) (*domain.RepoIndex, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.index != nil {
		return r.index, nil
	}

	data, err := os.ReadFile(r.cachePath)
	switch {
	case err == nil:
		if idx, parseErr := domain.ParseRepoIndex(data); parseErr == nil {
			r.index = idx
			return idx, nil
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRepoCacheRead.Error()), "repository", r.id)
	}

	if err := r.syncLocked(ctx); err != nil {
		return nil, err
	}
	return r.index, nil
}

// Query looks up a package in the index.
func (r *Index) Query(ctx context.Context, id string) (*domain.RepoPackageEntry, bool, error) {
	idx, err := r.ensure(ctx)
	if err != nil {
		return nil, false, err
	}
	entry, ok := idx.Packages[id]
	if !ok {
		return nil, false, nil
	}
	return &entry, true, nil
}

// Packages returns every package id in the index, sorted.
func (r *Index) Packages(ctx context.Context) ([]string, error) {
	idx, err := r.ensure(ctx)
	if err != nil {
		return nil, err
	}
	return idx.PackageIDs(), nil
}

// Metadata returns the repository's self description.
func (r *Index) Metadata(ctx context.Context) (domain.RepoMetadata, error) {
	idx, err := r.ensure(ctx)
	if err != nil {
		return domain.RepoMetadata{}, err
	}
	return idx.Metadata, nil
}
