// Package app implements the application layer for mcvm.
package app

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/mcvm/internal/core/ports"
	"go.trai.ch/mcvm/internal/engine/updater"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	config   *domain.Config
	settings *domain.Settings
	registry ports.PackageRegistry
	versions ports.VersionList
	updater  *updater.Updater
	logger   ports.Logger
	goos     string
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	settings *domain.Settings,
	registry ports.PackageRegistry,
	versions ports.VersionList,
	upd *updater.Updater,
	log ports.Logger,
) *App {
	return &App{
		config:   cfg,
		settings: settings,
		registry: registry,
		versions: versions,
		updater:  upd,
		logger:   log,
		goos:     runtime.GOOS,
	}
}

// WithGOOS overrides the operating system packages are evaluated for.
// This is primarily used for testing.
func (a *App) WithGOOS(goos string) *App {
	a.goos = goos
	return a
}

// UpdateOptions configuration for the UpdateProfile method.
type UpdateOptions struct {
	Force bool
}

// UpdateProfile installs the packages of every instance of a profile.
// The report is returned even when some instances or packages failed, in
// which case the error wraps domain.ErrUpdateFailed.
func (a *App) UpdateProfile(ctx context.Context, profileID string, opts UpdateOptions) (*updater.Report, error) {
	profile, err := a.config.Profile(profileID)
	if err != nil {
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("updating profile '%s'", profileID))
	report, err := a.updater.Update(ctx, updater.Request{
		Config:    a.config,
		Profile:   profile,
		Constants: a.Constants(ctx, profile),
		Force:     opts.Force,
	})
	if err != nil {
		return nil, zerr.With(err, "profile", profileID)
	}

	if report.Failed() {
		err := zerr.Wrap(domain.ErrUpdateFailed, fmt.Sprintf("failed to update profile '%s'", profileID))
		return report, zerr.With(err, "failures", len(report.Failures))
	}
	return report, nil
}

// Constants builds the evaluation constants shared by every instance of profile.
// Without a version list, "latest" matches nothing and version ranges fall
// back to numeric comparison.
func (a *App) Constants(ctx context.Context, profile *domain.ProfileConfig) *domain.EvalConstants {
	versions, err := a.versions.Versions(ctx)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("game version list unavailable: %v", err))
	}
	return &domain.EvalConstants{
		Version:          profile.Version,
		Versions:         versions,
		Modloader:        profile.Modloader,
		PluginLoader:     profile.PluginLoader,
		OS:               domain.OSFromGOOS(a.goos),
		Language:         a.settings.Language,
		DefaultStability: profile.Stability,
	}
}

// PackageUsage is a configured package and the profiles using it.
type PackageUsage struct {
	ID       string
	Profiles []string
}

// ListPackages returns the configured packages sorted by id.
// When profileID is set only packages of that profile are listed.
func (a *App) ListPackages(profileID string) ([]PackageUsage, error) {
	if profileID != "" {
		profile, err := a.config.Profile(profileID)
		if err != nil {
			return nil, err
		}
		ids := a.config.ProfilePackageIDs(profile)
		out := make([]PackageUsage, len(ids))
		for i, id := range ids {
			out[i] = PackageUsage{ID: id.String(), Profiles: []string{profileID}}
		}
		return out, nil
	}

	usage := make(map[string][]string)
	for _, pid := range a.config.ProfileIDs() {
		profile, err := a.config.Profile(pid)
		if err != nil {
			return nil, err
		}
		for _, id := range a.config.ProfilePackageIDs(profile) {
			usage[id.String()] = append(usage[id.String()], pid)
		}
	}

	out := make([]PackageUsage, 0, len(usage))
	for id, profiles := range usage {
		out = append(out, PackageUsage{ID: id, Profiles: profiles})
	}
	slices.SortFunc(out, func(x, y PackageUsage) int {
		return strings.Compare(x.ID, y.ID)
	})
	return out, nil
}

// InvalidPackage is a package that failed validation after a sync.
type InvalidPackage struct {
	ID  string
	Err error
}

// SyncReport summarizes a package sync.
type SyncReport struct {
	Packages int
	Invalid  []InvalidPackage
}

// SyncPackages refreshes every repository index, drops cached packages and
// validates every package the repositories provide. Repository failures are
// logged and leave the previous index in place.
func (a *App) SyncPackages(ctx context.Context) (*SyncReport, error) {
	if err := a.registry.Sync(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		a.logger.Error(err)
	}

	ids, err := a.registry.AllPackages(ctx)
	if err != nil {
		return nil, err
	}

	report := &SyncReport{Packages: len(ids)}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		req := domain.UserRequest(domain.NewPackageID(id))
		if err := a.registry.ParseAndValidate(ctx, req); err != nil {
			a.logger.Warn(fmt.Sprintf("package '%s' is invalid: %v", id, err))
			report.Invalid = append(report.Invalid, InvalidPackage{ID: id, Err: err})
		}
	}
	return report, nil
}

// PackageContents is the raw definition of a package.
type PackageContents struct {
	ID          string
	ContentType domain.ContentType
	Data        []byte
}

// PackageContents loads the definition of a package from the registry.
func (a *App) PackageContents(ctx context.Context, id string) (*PackageContents, error) {
	req, err := request(id)
	if err != nil {
		return nil, err
	}
	data, err := a.registry.Load(ctx, req, false)
	if err != nil {
		return nil, err
	}
	ct, err := a.registry.ContentType(ctx, req)
	if err != nil {
		return nil, err
	}
	return &PackageContents{ID: id, ContentType: ct, Data: data}, nil
}

// PackageInfo describes a package for display.
type PackageInfo struct {
	ID         string
	Version    string
	Metadata   *domain.PackageMetadata
	Properties *domain.PackageProperties
	Flags      []domain.PackageFlag
}

// PackageInfo gathers the metadata of a package.
func (a *App) PackageInfo(ctx context.Context, id string) (*PackageInfo, error) {
	req, err := request(id)
	if err != nil {
		return nil, err
	}
	meta, err := a.registry.Metadata(ctx, req)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to get metadata from the registry")
	}
	props, err := a.registry.Properties(ctx, req)
	if err != nil {
		return nil, err
	}
	version, err := a.registry.Version(ctx, req)
	if err != nil {
		return nil, err
	}
	flags, err := a.registry.Flags(ctx, req)
	if err != nil {
		return nil, err
	}
	return &PackageInfo{ID: id, Version: version, Metadata: meta, Properties: props, Flags: flags}, nil
}

// Repositories lists the configured repositories in priority order.
func (a *App) Repositories(ctx context.Context) ([]domain.RepoInfo, error) {
	return a.registry.Repositories(ctx)
}

func request(id string) (*domain.PackageRequest, error) {
	pid, err := domain.ParsePackageID(id)
	if err != nil {
		return nil, err
	}
	return domain.UserRequest(pid), nil
}
