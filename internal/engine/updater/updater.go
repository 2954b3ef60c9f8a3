// Package updater reconciles instance directories with the resolved packages
// of a profile and records the result in the lockfile.
package updater

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/mcvm/internal/core/ports"
	"go.trai.ch/zerr"
)

// Updater runs profile updates.
type Updater struct {
	resolver  ports.InstanceResolver
	registry  ports.PackageRegistry
	installer ports.AddonInstaller
	store     ports.LockfileStore
	prompter  ports.Prompter
	logger    ports.Logger
	tracer    ports.Tracer
	dataDir   string
}

// New creates an Updater that installs instances under dataDir.
func New(
	resolver ports.InstanceResolver,
	registry ports.PackageRegistry,
	installer ports.AddonInstaller,
	store ports.LockfileStore,
	prompter ports.Prompter,
	logger ports.Logger,
	tracer ports.Tracer,
	dataDir string,
) *Updater {
	return &Updater{
		resolver:  resolver,
		registry:  registry,
		installer: installer,
		store:     store,
		prompter:  prompter,
		logger:    logger,
		tracer:    tracer,
		dataDir:   dataDir,
	}
}

// Request describes one profile update.
type Request struct {
	Config    *domain.Config
	Profile   *domain.ProfileConfig
	Constants *domain.EvalConstants
	// Force reinstalls addons whose recorded state is unchanged.
	Force bool
}

// target is one instance a package is installed into.
type target struct {
	instance *domain.InstanceConfig
	pkg      domain.ResolvedPackage
}

// Update resolves every instance of the profile, installs the packages
// and writes the lockfile. Failures of a single instance or package are
// recorded in the report and do not stop the update; the returned error
// is reserved for lockfile problems and cancellation. A canceled update
// still saves what it installed, but removes nothing.
func (u *Updater) Update(ctx context.Context, req Request) (*Report, error) {
	lock, err := u.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{Profile: req.Profile.ID}

	instances := slices.Clone(req.Profile.Instances)
	slices.SortFunc(instances, func(a, b domain.InstanceConfig) int {
		return strings.Compare(a.ID, b.ID)
	})

	resolved := make(map[string]*domain.ResolvedSet)
	batch := make(map[domain.PackageID][]target)
	for i := range instances {
		inst := &instances[i]
		set, err := u.resolver.Resolve(ctx, ports.ResolveRequest{
			Config:    req.Config,
			Profile:   req.Profile,
			Instance:  inst,
			Constants: req.Constants,
		})
		if err != nil {
			err = zerr.Wrap(err, domain.ErrInstanceResolveFailed.Error())
			u.logger.Error(err)
			report.Failures = append(report.Failures, Failure{Instance: inst.ID, Err: err})
			continue
		}
		resolved[inst.ID] = set
		report.Notices = append(report.Notices, set.Notices...)
		for _, rp := range set.Packages {
			batch[rp.Request.ID()] = append(batch[rp.Request.ID()], target{instance: inst, pkg: rp})
		}
	}

	ids := make([]domain.PackageID, 0, len(batch))
	for id := range batch {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, domain.PackageID.Compare)

	var interrupted error
	for _, id := range ids {
		if interrupted = ctx.Err(); interrupted != nil {
			break
		}
		targets := batch[id]
		u.warnFlags(ctx, targets[0].pkg.Request)

		for _, t := range targets {
			if err := u.installPackage(ctx, lock, t, req.Force, report); err != nil {
				err = zerr.With(err, "instance", t.instance.ID)
				u.logger.Error(err)
				report.Failures = append(report.Failures, Failure{Instance: t.instance.ID, Package: id.String(), Err: err})
			}
		}
	}

	if interrupted != nil {
		// Keep the record of addons installed before the interruption.
		if err := u.store.Save(context.WithoutCancel(ctx), lock); err != nil {
			u.logger.Error(err)
		}
		return nil, interrupted
	}

	for i := range instances {
		set, ok := resolved[instances[i].ID]
		if !ok {
			continue
		}
		for _, pkg := range lock.RemoveUnusedPackages(instances[i].ID, set.Strings()) {
			u.removeFiles(pkg.Files, report)
		}
	}

	report.VersionChanged = lock.UpdateProfileVersion(req.Profile.ID, req.Profile.Version)

	if err := u.store.Save(context.WithoutCancel(ctx), lock); err != nil {
		return nil, err
	}
	return report, nil
}

func (u *Updater) warnFlags(ctx context.Context, req *domain.PackageRequest) {
	flags, err := u.registry.Flags(ctx, req)
	if err != nil {
		u.logger.Warn(fmt.Sprintf("failed to read flags of package '%s': %v", req.ID(), err))
		return
	}
	for _, f := range flags {
		u.logger.Warn(f.Warning(req.ID()))
	}
}

// installPackage installs the addons of one package into one instance and
// records them in the lockfile.
func (u *Updater) installPackage(ctx context.Context, lock *domain.Lockfile, t target, force bool, report *Report) error {
	id := t.pkg.Request.ID()
	ctx, span := u.tracer.Start(ctx, "install package")
	defer span.End()
	span.SetAttribute("package", id.String())
	span.SetAttribute("instance", t.instance.ID)

	gameDir := domain.InstanceDir(u.dataDir, t.instance.ID, t.instance.Side)
	var addons []domain.LockfileAddon

	for i := range t.pkg.Result.Addons {
		addon := &t.pkg.Result.Addons[i]
		paths, err := domain.AddonTargets(gameDir, t.instance.Side, id, addon, t.instance.Worlds)
		if err != nil {
			span.RecordError(err)
			return zerr.With(zerr.Wrap(err, domain.ErrPackageInstallFailed.Error()), "package", id.String())
		}
		if len(paths) == 0 {
			continue
		}

		record := domain.LockfileAddon{
			ID:       addon.ID,
			FileName: domain.AddonFileName(id, addon),
			Files:    paths,
			Kind:     addon.Kind,
			Version:  addon.Version,
			Hashes:   addon.Hashes,
		}

		if !force && u.upToDate(lock, t.instance.ID, id, &record) {
			addons = append(addons, record)
			report.UpToDate++
			continue
		}

		ok, err := u.confirmOverwrite(ctx, lock, t.instance.ID, paths)
		if err != nil {
			span.RecordError(err)
			return err
		}
		if !ok {
			report.Notices = append(report.Notices, domain.Notice{
				Package: id,
				Message: fmt.Sprintf("addon '%s' was not installed to instance '%s' to keep existing files", addon.ID, t.instance.ID),
			})
			continue
		}

		if err := u.installer.Install(ctx, addon, paths); err != nil {
			span.RecordError(err)
			return zerr.With(zerr.Wrap(err, domain.ErrPackageInstallFailed.Error()), "package", id.String())
		}
		addons = append(addons, record)
		report.Installed = append(report.Installed, InstalledAddon{
			Instance: t.instance.ID,
			Package:  id.String(),
			Addon:    addon.ID,
			Version:  addon.Version,
		})
	}

	u.removeFiles(lock.UpdatePackage(t.instance.ID, id.String(), addons), report)

	for _, msg := range t.pkg.Result.Notices {
		report.Notices = append(report.Notices, domain.Notice{Package: id, Message: msg})
	}
	return nil
}

// upToDate reports whether the lockfile already records this exact addon
// and all of its files are still present.
func (u *Updater) upToDate(lock *domain.Lockfile, instance string, id domain.PackageID, record *domain.LockfileAddon) bool {
	prev, ok := lock.Addon(instance, id.String(), record.ID)
	if !ok || prev.Version != record.Version || prev.Hashes != record.Hashes || !slices.Equal(prev.Files, record.Files) {
		return false
	}
	for _, f := range record.Files {
		if !u.installer.Exists(f) {
			return false
		}
	}
	return true
}

// confirmOverwrite asks before replacing files the lockfile does not own.
func (u *Updater) confirmOverwrite(ctx context.Context, lock *domain.Lockfile, instance string, paths []string) (bool, error) {
	for _, p := range paths {
		if !u.installer.Exists(p) || lock.OwnsFile(instance, p) {
			continue
		}
		ok, err := u.prompter.Confirm(ctx, fmt.Sprintf("file '%s' already exists and is not managed by mcvm. Overwrite it?", p))
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

func (u *Updater) removeFiles(files []string, report *Report) {
	for _, f := range files {
		if err := u.installer.Remove(f); err != nil {
			u.logger.Warn(fmt.Sprintf("failed to remove '%s': %v", f, err))
			continue
		}
		report.Removed = append(report.Removed, f)
	}
}
