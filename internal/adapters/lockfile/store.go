// Package lockfile persists the lockfile as JSON in the data directory.
package lockfile

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	mcvmfs "go.trai.ch/mcvm/internal/adapters/fs"
	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store reads and writes the lockfile.
type Store struct {
	path string
}

// NewStore creates a Store for the lockfile of dataDir.
func NewStore(dataDir string) *Store {
	return &Store{path: domain.LockfilePath(dataDir)}
}

// Path returns the lockfile location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the lockfile and migrates it to the current format.
// A missing lockfile yields an empty one.
func (s *Store) Load(_ context.Context) (*domain.Lockfile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewLockfile(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockfileRead.Error()), "path", s.path)
	}

	var lock domain.Lockfile
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockfileParse.Error()), "path", s.path)
	}
	lock.Fix()
	return &lock, nil
}

// Save replaces the lockfile atomically.
func (s *Store) Save(_ context.Context, lock *domain.Lockfile) error {
	data, err := json.MarshalIndent(lock, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrLockfileWrite.Error())
	}
	if err := mcvmfs.WriteFileAtomic(s.path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLockfileWrite.Error()), "path", s.path)
	}
	return nil
}
