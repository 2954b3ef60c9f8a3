package installer_test

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mcvm/internal/adapters/installer"
	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/mcvm/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func sha256Hex(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

func TestInstaller_InstallFromURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any(), "https://example.com/sodium.jar").Return([]byte("jar"), nil).Times(1)

	dir := t.TempDir()
	targets := []string{
		filepath.Join(dir, "saves", "w1", "datapacks", "p.zip"),
		filepath.Join(dir, "saves", "w2", "datapacks", "p.zip"),
	}
	addon := &domain.SelectedAddon{
		ID:     "sodium",
		Kind:   domain.AddonKindDatapack,
		URL:    "https://example.com/sodium.jar",
		Hashes: domain.Hashes{SHA256: strings.ToUpper(sha256Hex("jar"))},
	}

	inst := installer.New(fetcher)
	require.NoError(t, inst.Install(t.Context(), addon, targets))

	for _, target := range targets {
		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "jar", string(data))
		assert.True(t, inst.Exists(target))
	}
}

func TestInstaller_InstallFromPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := filepath.Join(t.TempDir(), "local.jar")
	require.NoError(t, os.WriteFile(src, []byte("local"), 0o600))

	target := filepath.Join(t.TempDir(), "mods", "local.jar")
	addon := &domain.SelectedAddon{ID: "local", Kind: domain.AddonKindMod, Path: src}

	require.NoError(t, installer.New(mocks.NewMockFetcher(ctrl)).Install(t.Context(), addon, []string{target}))
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "local", string(data))
}

func TestInstaller_Errors(t *testing.T) {
	tests := []struct {
		name    string
		addon   *domain.SelectedAddon
		fetch   func(*mocks.MockFetcher)
		wantErr error
	}{
		{
			name:    "no source",
			addon:   &domain.SelectedAddon{ID: "a", Kind: domain.AddonKindMod},
			wantErr: domain.ErrAddonNoSource,
		},
		{
			name:  "download failure",
			addon: &domain.SelectedAddon{ID: "a", Kind: domain.AddonKindMod, URL: "https://x.example/a.jar"},
			fetch: func(f *mocks.MockFetcher) {
				f.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, errors.New("404"))
			},
			wantErr: domain.ErrAddonInstallFailed,
		},
		{
			name: "hash mismatch",
			addon: &domain.SelectedAddon{
				ID: "a", Kind: domain.AddonKindMod, URL: "https://x.example/a.jar",
				Hashes: domain.Hashes{SHA256: sha256Hex("expected")},
			},
			fetch: func(f *mocks.MockFetcher) {
				f.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return([]byte("tampered"), nil)
			},
			wantErr: domain.ErrHashMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fetcher := mocks.NewMockFetcher(ctrl)
			if tt.fetch != nil {
				tt.fetch(fetcher)
			}
			target := filepath.Join(t.TempDir(), "a.jar")

			err := installer.New(fetcher).Install(t.Context(), tt.addon, []string{target})
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
			assert.NoFileExists(t, target)
		})
	}
}

func TestInstaller_NoTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	addon := &domain.SelectedAddon{ID: "shader", Kind: domain.AddonKindShader, URL: "https://x.example/s.zip"}
	require.NoError(t, installer.New(mocks.NewMockFetcher(ctrl)).Install(t.Context(), addon, nil))
}

func TestInstaller_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	inst := installer.New(mocks.NewMockFetcher(ctrl))
	path := filepath.Join(t.TempDir(), "old.jar")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	require.NoError(t, inst.Remove(path))
	assert.False(t, inst.Exists(path))
	require.NoError(t, inst.Remove(path))
}
