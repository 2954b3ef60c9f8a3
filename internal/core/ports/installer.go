package ports

import (
	"context"

	"go.trai.ch/mcvm/internal/core/domain"
)

// AddonInstaller places addon files into instance directories.
//
//go:generate mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type AddonInstaller interface {
	// Install writes the addon contents to every target path.
	Install(ctx context.Context, addon *domain.SelectedAddon, targets []string) error
	// Remove deletes an installed file. A missing file is not an error.
	Remove(path string) error
	// Exists reports whether a file is present at path.
	Exists(path string) bool
}

// Prompter asks the user yes/no questions.
type Prompter interface {
	Confirm(ctx context.Context, question string) (bool, error)
}
