// Package config loads the profile configuration from mcvm.yaml.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/mcvm/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger   ports.Logger
	dir      string
	validate *validator.Validate
}

// NewLoader creates a Loader reading mcvm.yaml from configDir.
func NewLoader(logger ports.Logger, configDir string) *Loader {
	return &Loader{
		Logger:   logger,
		dir:      configDir,
		validate: validator.New(),
	}
}

// Path returns the location of the configuration file.
func (l *Loader) Path() string {
	return filepath.Join(l.dir, domain.ConfigFileName)
}

// Load reads, validates and normalizes the configuration.
// A missing file yields an empty configuration.
func (l *Loader) Load(_ context.Context) (*domain.Config, error) {
	path := l.Path()
	data, err := os.ReadFile(path) //nolint:gosec // path is built from the settings directory
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &domain.Config{Profiles: make(map[string]*domain.ProfileConfig)}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}
	return l.Parse(data)
}

// Parse validates and normalizes configuration text.
func (l *Loader) Parse(data []byte) (*domain.Config, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", l.Path())
	}
	if err := l.validate.Struct(&file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "path", l.Path())
	}
	return l.normalize(&file)
}

func (l *Loader) normalize(file *File) (*domain.Config, error) {
	cfg := &domain.Config{Profiles: make(map[string]*domain.ProfileConfig, len(file.Profiles))}

	seenRepos := make(map[string]struct{}, len(file.Repositories))
	for _, r := range file.Repositories {
		if _, dup := seenRepos[r.ID]; dup {
			return nil, zerr.With(domain.ErrConfigInvalid, "duplicate_repository", r.ID)
		}
		seenRepos[r.ID] = struct{}{}
		cfg.Repositories = append(cfg.Repositories, domain.RepositoryConfig{ID: r.ID, URL: r.URL})
	}

	var err error
	if cfg.Packages, err = l.packages(file.Packages); err != nil {
		return nil, err
	}

	for id, dto := range file.Profiles {
		profile, err := l.profile(id, &dto)
		if err != nil {
			return nil, zerr.With(err, "profile", id)
		}
		cfg.Profiles[id] = profile
	}
	return cfg, nil
}

func (l *Loader) profile(id string, dto *ProfileDTO) (*domain.ProfileConfig, error) {
	profile := &domain.ProfileConfig{
		ID:           id,
		Version:      dto.Version,
		Modloader:    domain.Modloader(orDefault(dto.Modloader, string(domain.ModloaderVanilla))),
		PluginLoader: domain.PluginLoader(orDefault(dto.PluginLoader, string(domain.PluginLoaderVanilla))),
		Stability:    domain.Stability(orDefault(dto.Stability, string(domain.StabilityStable))),
	}

	var err error
	if profile.Packages.Global, err = l.packages(dto.Packages.Global); err != nil {
		return nil, err
	}
	if profile.Packages.Client, err = l.packages(dto.Packages.Client); err != nil {
		return nil, err
	}
	if profile.Packages.Server, err = l.packages(dto.Packages.Server); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(dto.Instances))
	for instID := range dto.Instances {
		ids = append(ids, instID)
	}
	sort.Strings(ids)

	for _, instID := range ids {
		inst := dto.Instances[instID]
		pkgs, err := l.packages(inst.Packages)
		if err != nil {
			return nil, zerr.With(err, "instance", instID)
		}
		profile.Instances = append(profile.Instances, domain.InstanceConfig{
			ID:       instID,
			Side:     domain.Side(inst.Type),
			Worlds:   inst.Worlds,
			Packages: pkgs,
		})
	}

	if len(profile.Instances) == 0 && l.Logger != nil {
		l.Logger.Warn(fmt.Sprintf("profile '%s' has no instances", id))
	}
	return profile, nil
}

func (l *Loader) packages(dtos []PackageDTO) ([]domain.PackageConfig, error) {
	if len(dtos) == 0 {
		return nil, nil
	}
	out := make([]domain.PackageConfig, 0, len(dtos))
	for i := range dtos {
		dto := &dtos[i]
		id, err := domain.ParsePackageID(dto.ID)
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrConfigInvalid.Error())
		}
		cfg := domain.NewPackageConfig(id)
		if dto.Type != "" {
			cfg.Type = domain.PackageType(dto.Type)
		}
		if cfg.Type == domain.PackageTypeLocal {
			cfg.Path = dto.Path
			if !filepath.IsAbs(cfg.Path) {
				cfg.Path = filepath.Join(l.dir, cfg.Path)
			}
		}
		cfg.Features = dto.Features
		if dto.UseDefaultFeatures != nil {
			cfg.UseDefaultFeatures = *dto.UseDefaultFeatures
		}
		if dto.Permissions != "" {
			cfg.Permissions = domain.Permissions(dto.Permissions)
		}
		cfg.Stability = domain.Stability(dto.Stability)
		out = append(out, cfg)
	}
	return out, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
