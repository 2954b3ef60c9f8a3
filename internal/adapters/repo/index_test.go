package repo_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mcvm/internal/adapters/repo"
	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/mcvm/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const (
	repoURL  = "https://repo.example.com"
	indexURL = repoURL + repo.IndexPath
)

const coreIndex = `{
	"metadata": {"name": "Core", "description": "Core packages"},
	"packages": {
		"sodium": {"url": "https://repo.example.com/sodium.json", "version": "3"},
		"fabric-api": {"url": "https://repo.example.com/fabric-api.json", "flags": ["out_of_date"]}
	}
}`

func newIndex(t *testing.T, fetcher *mocks.MockFetcher) (*repo.Index, string) {
	t.Helper()
	cacheDir := t.TempDir()
	return repo.New(domain.RepositoryConfig{ID: "core", URL: repoURL + "/"}, cacheDir, fetcher), cacheDir
}

func TestIndex_QuerySyncsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any(), indexURL).Return([]byte(coreIndex), nil).Times(1)

	idx, cacheDir := newIndex(t, fetcher)
	assert.Equal(t, repoURL, idx.URL())

	entry, ok, err := idx.Query(t.Context(), "sodium")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "3", entry.Version)

	_, ok, err = idx.Query(t.Context(), "lithium")
	require.NoError(t, err)
	assert.False(t, ok)

	ids, err := idx.Packages(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []string{"fabric-api", "sodium"}, ids)

	meta, err := idx.Metadata(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "Core", meta.Name)

	_, err = os.Stat(domain.RepoIndexCachePath(cacheDir, "core"))
	require.NoError(t, err, "the index is cached on disk")
}

func TestIndex_UsesDiskCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)

	cacheDir := t.TempDir()
	path := domain.RepoIndexCachePath(cacheDir, "core")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(coreIndex), 0o600))

	idx := repo.New(domain.RepositoryConfig{ID: "core", URL: repoURL}, cacheDir, fetcher)
	entry, ok, err := idx.Query(t.Context(), "fabric-api")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []domain.PackageFlag{domain.FlagOutOfDate}, entry.Flags)
}

func TestIndex_FailedSyncKeepsPreviousIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)
	gomock.InOrder(
		fetcher.EXPECT().Fetch(gomock.Any(), indexURL).Return([]byte(coreIndex), nil),
		fetcher.EXPECT().Fetch(gomock.Any(), indexURL).Return([]byte(`{"packages": [`), nil),
		fetcher.EXPECT().Fetch(gomock.Any(), indexURL).Return(nil, errors.New("offline")),
	)

	idx, cacheDir := newIndex(t, fetcher)
	require.NoError(t, idx.Sync(t.Context()))

	err := idx.Sync(t.Context())
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrRepoSync.Error())

	err = idx.Sync(t.Context())
	require.Error(t, err)
	assert.ErrorContains(t, err, "offline")

	_, ok, err := idx.Query(t.Context(), "sodium")
	require.NoError(t, err)
	assert.True(t, ok, "the previous index stays authoritative")

	cached, err := os.ReadFile(domain.RepoIndexCachePath(cacheDir, "core"))
	require.NoError(t, err)
	assert.JSONEq(t, coreIndex, string(cached))
}
