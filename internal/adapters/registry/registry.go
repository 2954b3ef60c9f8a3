// Package registry locates, caches and parses package definitions.
package registry

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/go-playground/validator/v10"
	mcvmfs "go.trai.ch/mcvm/internal/adapters/fs"
	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/mcvm/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DefaultSyncConcurrency bounds how many repositories sync at once.
const DefaultSyncConcurrency = 4

// Registry is the package registry of one run. Every package is located and
// loaded at most once; later requests are served from memory.
type Registry struct {
	logger   ports.Logger
	tracer   ports.Tracer
	fetcher  ports.Fetcher
	runner   ports.ScriptRunner
	validate *validator.Validate
	repos    []ports.RepositoryIndex
	cacheDir string

	mu      sync.Mutex
	locals  map[domain.PackageID]string
	entries map[domain.PackageID]*entry
}

// entry is the in-memory state of one package.
type entry struct {
	location  *domain.PackageLocation
	localPath string

	contents []byte
	parsed   *domain.DeclarativePackage
	meta     *domain.PackageMetadata
	props    *domain.PackageProperties
}

// New creates a Registry over repos, queried in the given order.
func New(
	logger ports.Logger,
	tracer ports.Tracer,
	fetcher ports.Fetcher,
	runner ports.ScriptRunner,
	repos []ports.RepositoryIndex,
	cacheDir string,
) *Registry {
	return &Registry{
		logger:   logger,
		tracer:   tracer,
		fetcher:  fetcher,
		runner:   runner,
		validate: newValidator(),
		repos:    repos,
		cacheDir: cacheDir,
		locals:   make(map[domain.PackageID]string),
		entries:  make(map[domain.PackageID]*entry),
	}
}

// newValidator returns a validator that also knows the addon file name tag.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation(domain.AddonFileNameTag, func(fl validator.FieldLevel) bool {
		return domain.ValidAddonFileName(fl.Field().String())
	})
	return v
}

// InsertLocal registers a package backed by the file at path.
// Local packages shadow repository packages with the same id.
func (r *Registry) InsertLocal(id domain.PackageID, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.locals[id] = path
	delete(r.entries, id)
}

// Contains reports whether the package can be located.
func (r *Registry) Contains(ctx context.Context, id domain.PackageID) bool {
	_, err := r.locate(ctx, id)
	return err == nil
}

// locate finds where a package comes from. Repositories are queried in
// priority order; a failing repository is logged and skipped.
func (r *Registry) locate(ctx context.Context, id domain.PackageID) (*entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[id]; ok {
		return e, nil
	}
	if path, ok := r.locals[id]; ok {
		e := &entry{localPath: path}
		r.entries[id] = e
		return e, nil
	}

	for _, repo := range r.repos {
		found, ok, err := repo.Query(ctx, id.String())
		if err != nil {
			r.logger.Warn(fmt.Sprintf("skipping repository '%s': %v", repo.ID(), err))
			continue
		}
		if ok {
			e := &entry{location: &domain.PackageLocation{Repository: repo.ID(), Entry: *found}}
			r.entries[id] = e
			return e, nil
		}
	}
	return nil, zerr.With(domain.ErrPackageNotFound, "package", id.String())
}

// Load returns the package text. Remote packages are cached on disk keyed by
// id and repository version; force refetches them.
func (r *Registry) Load(ctx context.Context, req *domain.PackageRequest, force bool) ([]byte, error) {
	e, err := r.locate(ctx, req.ID())
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	contents := e.contents
	r.mu.Unlock()
	if contents != nil && !force {
		return contents, nil
	}

	if e.localPath != "" {
		contents, err = os.ReadFile(e.localPath)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrPackageCacheRead.Error()), "package", req.ID().String())
			return nil, zerr.With(err, "path", e.localPath)
		}
	} else {
		contents, err = r.loadRemote(ctx, req.ID(), e.location, force)
		if err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	e.contents = contents
	e.parsed, e.meta, e.props = nil, nil, nil
	r.mu.Unlock()
	return contents, nil
}

func (r *Registry) loadRemote(
	ctx context.Context,
	id domain.PackageID,
	loc *domain.PackageLocation,
	force bool,
) ([]byte, error) {
	path := r.cachePath(id, loc.Entry.Version)
	if !force {
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageCacheRead.Error()), "path", path)
		}
	}

	data, err := r.fetcher.Fetch(ctx, loc.Entry.URL)
	if err != nil {
		return nil, zerr.With(err, "package", id.String())
	}
	if err := mcvmfs.WriteFileAtomic(path, data); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageCacheWrite.Error()), "package", id.String())
	}
	return data, nil
}

// cachePath names the cached package file after the id and a hash of id and version.
func (r *Registry) cachePath(id domain.PackageID, version string) string {
	sum := xxhash.Sum64String(id.String() + "@" + version)
	return filepath.Join(domain.PackageCachePath(r.cacheDir), fmt.Sprintf("%s_%016x.pkg", id, sum))
}

// ContentType returns the repository declared content type, or sniffs the text.
func (r *Registry) ContentType(ctx context.Context, req *domain.PackageRequest) (domain.ContentType, error) {
	e, err := r.locate(ctx, req.ID())
	if err != nil {
		return "", err
	}
	if e.location != nil && e.location.Entry.ContentType != "" {
		return e.location.Entry.ContentType, nil
	}
	contents, err := r.Load(ctx, req, false)
	if err != nil {
		return "", err
	}
	return domain.SniffContentType(contents), nil
}

// Parse returns the parsed declarative package.
func (r *Registry) Parse(ctx context.Context, req *domain.PackageRequest) (*domain.DeclarativePackage, error) {
	ct, err := r.ContentType(ctx, req)
	if err != nil {
		return nil, err
	}
	if ct != domain.ContentTypeDeclarative {
		err := zerr.With(domain.ErrPackageParse, "package", req.ID().String())
		return nil, zerr.With(err, "content_type", string(ct))
	}

	contents, err := r.Load(ctx, req, false)
	if err != nil {
		return nil, err
	}

	e, err := r.locate(ctx, req.ID())
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.parsed != nil {
		return e.parsed, nil
	}
	pkg, err := domain.ParseDeclarativePackage(contents)
	if err != nil {
		return nil, zerr.With(err, "package", req.ID().String())
	}
	e.parsed = pkg
	return pkg, nil
}

// ParseAndValidate checks the package syntax and schema without evaluating it.
func (r *Registry) ParseAndValidate(ctx context.Context, req *domain.PackageRequest) error {
	ct, err := r.ContentType(ctx, req)
	if err != nil {
		return err
	}

	var target any
	switch ct {
	case domain.ContentTypeScript:
		meta, props, err := r.inspect(ctx, req)
		if err != nil {
			return err
		}
		target = &struct {
			Meta       *domain.PackageMetadata
			Properties *domain.PackageProperties
		}{meta, props}
	default:
		pkg, err := r.Parse(ctx, req)
		if err != nil {
			return err
		}
		target = pkg
	}

	if err := r.validate.Struct(target); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPackageValidation.Error()), "package", req.ID().String())
	}
	return nil
}

// Metadata returns the descriptive fields of the package.
func (r *Registry) Metadata(ctx context.Context, req *domain.PackageRequest) (*domain.PackageMetadata, error) {
	meta, _, err := r.describe(ctx, req)
	return meta, err
}

// Properties returns the machine readable fields of the package.
func (r *Registry) Properties(ctx context.Context, req *domain.PackageRequest) (*domain.PackageProperties, error) {
	_, props, err := r.describe(ctx, req)
	return props, err
}

func (r *Registry) describe(
	ctx context.Context,
	req *domain.PackageRequest,
) (*domain.PackageMetadata, *domain.PackageProperties, error) {
	ct, err := r.ContentType(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	if ct == domain.ContentTypeScript {
		return r.inspect(ctx, req)
	}
	pkg, err := r.Parse(ctx, req)
	if err != nil {
		return nil, nil, err
	}
	return &pkg.Meta, &pkg.Properties, nil
}

// inspect runs the script top level once and caches what it declares.
func (r *Registry) inspect(
	ctx context.Context,
	req *domain.PackageRequest,
) (*domain.PackageMetadata, *domain.PackageProperties, error) {
	contents, err := r.Load(ctx, req, false)
	if err != nil {
		return nil, nil, err
	}
	e, err := r.locate(ctx, req.ID())
	if err != nil {
		return nil, nil, err
	}

	r.mu.Lock()
	meta, props := e.meta, e.props
	r.mu.Unlock()
	if meta != nil {
		return meta, props, nil
	}

	meta, props, err = r.runner.Inspect(ctx, req.ID(), contents)
	if err != nil {
		return nil, nil, err
	}
	r.mu.Lock()
	e.meta, e.props = meta, props
	r.mu.Unlock()
	return meta, props, nil
}

// Version returns the repository version of the package; local packages have none.
func (r *Registry) Version(ctx context.Context, req *domain.PackageRequest) (string, error) {
	e, err := r.locate(ctx, req.ID())
	if err != nil {
		return "", err
	}
	if e.location == nil {
		return "", nil
	}
	return e.location.Entry.Version, nil
}

// Flags returns the advisory flags the repository attached to the package.
func (r *Registry) Flags(ctx context.Context, req *domain.PackageRequest) ([]domain.PackageFlag, error) {
	e, err := r.locate(ctx, req.ID())
	if err != nil {
		return nil, err
	}
	if e.location == nil {
		return nil, nil
	}
	return slices.Clone(e.location.Entry.Flags), nil
}

// Sync syncs every repository concurrently and drops all cached package files.
// A failing repository does not stop the others; all failures are returned.
func (r *Registry) Sync(ctx context.Context) error {
	errs := make([]error, len(r.repos))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultSyncConcurrency)
	for i, repo := range r.repos {
		g.Go(func() error {
			errs[i] = r.syncRepo(gctx, repo)
			return nil
		})
	}
	_ = g.Wait()

	r.mu.Lock()
	r.entries = make(map[domain.PackageID]*entry)
	r.mu.Unlock()

	if err := os.RemoveAll(domain.PackageCachePath(r.cacheDir)); err != nil {
		errs = append(errs, zerr.Wrap(err, "failed to clear package cache"))
	}
	return errors.Join(errs...)
}

func (r *Registry) syncRepo(ctx context.Context, repo ports.RepositoryIndex) error {
	ctx, span := r.tracer.Start(ctx, "sync repository")
	defer span.End()
	span.SetAttribute("repository", repo.ID())

	if err := repo.Sync(ctx); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// AllPackages returns every package id available from local packages and repositories.
func (r *Registry) AllPackages(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})

	r.mu.Lock()
	for id := range r.locals {
		seen[id.String()] = struct{}{}
	}
	r.mu.Unlock()

	for _, repo := range r.repos {
		ids, err := repo.Packages(ctx)
		if err != nil {
			r.logger.Warn(fmt.Sprintf("skipping repository '%s': %v", repo.ID(), err))
			continue
		}
		for _, id := range ids {
			seen[id] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	slices.Sort(out)
	return out, nil
}

// Repositories describes the configured repositories in priority order.
func (r *Registry) Repositories(ctx context.Context) ([]domain.RepoInfo, error) {
	out := make([]domain.RepoInfo, 0, len(r.repos))
	for _, repo := range r.repos {
		meta, err := repo.Metadata(ctx)
		if err != nil {
			r.logger.Warn(fmt.Sprintf("failed to read metadata of repository '%s': %v", repo.ID(), err))
		}
		out = append(out, domain.RepoInfo{ID: repo.ID(), URL: repo.URL(), Metadata: meta})
	}
	return out, nil
}
