// Package installer places addon files into instance directories.
package installer

import (
	"context"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"os"
	"strings"

	mcvmfs "go.trai.ch/mcvm/internal/adapters/fs"
	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/mcvm/internal/core/ports"
	"go.trai.ch/zerr"
)

// Installer downloads or copies addon contents and writes them to their targets.
type Installer struct {
	fetcher ports.Fetcher
}

// New creates an Installer.
func New(fetcher ports.Fetcher) *Installer {
	return &Installer{fetcher: fetcher}
}

// Install writes the addon to every target path. The contents are verified
// against the declared hashes before anything is written.
func (i *Installer) Install(ctx context.Context, addon *domain.SelectedAddon, targets []string) error {
	if len(targets) == 0 {
		return nil
	}

	data, err := i.contents(ctx, addon)
	if err != nil {
		return installErr(err, addon)
	}
	if err := verify(data, addon.Hashes); err != nil {
		return installErr(err, addon)
	}

	for _, target := range targets {
		if err := mcvmfs.WriteFileAtomic(target, data); err != nil {
			return zerr.With(installErr(err, addon), "path", target)
		}
	}
	return nil
}

func (i *Installer) contents(ctx context.Context, addon *domain.SelectedAddon) ([]byte, error) {
	switch {
	case addon.URL != "":
		return i.fetcher.Fetch(ctx, addon.URL)
	case addon.Path != "":
		data, err := os.ReadFile(addon.Path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read addon file"), "path", addon.Path)
		}
		return data, nil
	default:
		return nil, domain.ErrAddonNoSource
	}
}

func installErr(err error, addon *domain.SelectedAddon) error {
	return zerr.With(zerr.Wrap(err, domain.ErrAddonInstallFailed.Error()), "addon", addon.ID)
}

// verify checks data against every declared digest.
func verify(data []byte, hashes domain.Hashes) error {
	checks := []struct {
		algo string
		want string
		h    hash.Hash
	}{
		{"sha256", hashes.SHA256, sha256.New()},
		{"sha512", hashes.SHA512, sha512.New()},
	}
	for _, c := range checks {
		if c.want == "" {
			continue
		}
		_, _ = c.h.Write(data)
		got := hex.EncodeToString(c.h.Sum(nil))
		if !strings.EqualFold(got, c.want) {
			err := zerr.With(domain.ErrHashMismatch, "algorithm", c.algo)
			return zerr.With(zerr.With(err, "expected", c.want), "actual", got)
		}
	}
	return nil
}

// Remove deletes an installed file. A missing file is not an error.
func (i *Installer) Remove(path string) error {
	if err := mcvmfs.RemoveIfExists(path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrAddonRemoveFailed.Error()), "path", path)
	}
	return nil
}

// Exists reports whether a file is present at path.
func (i *Installer) Exists(path string) bool {
	return mcvmfs.Exists(path)
}
