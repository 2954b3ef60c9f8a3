package domain

import (
	"slices"
	"sort"

	"go.trai.ch/zerr"
)

// PackageType says where a configured package comes from.
type PackageType string

const (
	PackageTypeRepository PackageType = "repository"
	PackageTypeLocal      PackageType = "local"
)

// PackageConfig is the normalized configuration of one requested package.
type PackageConfig struct {
	ID                 PackageID
	Type               PackageType
	Path               string
	Features           []string
	UseDefaultFeatures bool
	Permissions        Permissions
	Stability          Stability
}

// NewPackageConfig returns the configuration used for a package nobody configured.
func NewPackageConfig(id PackageID) PackageConfig {
	return PackageConfig{
		ID:                 id,
		Type:               PackageTypeRepository,
		UseDefaultFeatures: true,
		Permissions:        PermissionsStandard,
	}
}

// Parameters builds the evaluation parameters of the package for one instance.
func (c *PackageConfig) Parameters(side Side, worlds []string, defaultStability Stability) EvalParameters {
	stability := c.Stability
	if stability == "" {
		stability = defaultStability
	}
	if stability == "" {
		stability = StabilityStable
	}
	perms := c.Permissions
	if perms == "" {
		perms = PermissionsStandard
	}
	return EvalParameters{
		Side:               side,
		Features:           slices.Clone(c.Features),
		UseDefaultFeatures: c.UseDefaultFeatures,
		Permissions:        perms,
		Stability:          stability,
		Worlds:             slices.Clone(worlds),
	}
}

// RepositoryConfig is a remote package repository.
// Repositories are queried in configured order.
type RepositoryConfig struct {
	ID  string
	URL string
}

// InstanceConfig is one launchable installation inside a profile.
type InstanceConfig struct {
	ID       string
	Side     Side
	Worlds   []string
	Packages []PackageConfig
}

// ProfilePackages are the packages of a profile split by side.
type ProfilePackages struct {
	Global []PackageConfig
	Client []PackageConfig
	Server []PackageConfig
}

// ProfileConfig groups instances sharing a game version and packages.
type ProfileConfig struct {
	ID           string
	Version      string
	Modloader    Modloader
	PluginLoader PluginLoader
	Stability    Stability
	Instances    []InstanceConfig
	Packages     ProfilePackages
}

// Instance looks up an instance of the profile by id.
func (p *ProfileConfig) Instance(id string) (*InstanceConfig, error) {
	for i := range p.Instances {
		if p.Instances[i].ID == id {
			return &p.Instances[i], nil
		}
	}
	err := zerr.With(ErrUnknownInstance, "instance", id)
	return nil, zerr.With(err, "profile", p.ID)
}

// Config is the fully normalized user configuration.
type Config struct {
	Repositories []RepositoryConfig
	Packages     []PackageConfig
	Profiles     map[string]*ProfileConfig
}

// Profile looks up a profile by id.
func (c *Config) Profile(id string) (*ProfileConfig, error) {
	p, ok := c.Profiles[id]
	if !ok {
		return nil, zerr.With(ErrUnknownProfile, "profile", id)
	}
	return p, nil
}

// ProfileIDs returns the configured profile ids, sorted.
func (c *Config) ProfileIDs() []string {
	ids := make([]string, 0, len(c.Profiles))
	for id := range c.Profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// PackagesFor returns the packages requested for an instance of profile.
// Sources are layered from global config, profile global, profile side and
// instance packages; a later layer replaces an earlier entry with the same id
// but keeps its position.
func (c *Config) PackagesFor(profile *ProfileConfig, instance *InstanceConfig) []PackageConfig {
	layers := [][]PackageConfig{c.Packages, profile.Packages.Global}
	switch instance.Side {
	case SideClient:
		layers = append(layers, profile.Packages.Client)
	case SideServer:
		layers = append(layers, profile.Packages.Server)
	}
	layers = append(layers, instance.Packages)

	var out []PackageConfig
	index := make(map[PackageID]int)
	for _, layer := range layers {
		for _, pkg := range layer {
			if i, ok := index[pkg.ID]; ok {
				out[i] = pkg
				continue
			}
			index[pkg.ID] = len(out)
			out = append(out, pkg)
		}
	}
	return out
}

// AllPackageIDs returns every package id configured anywhere, sorted and deduplicated.
func (c *Config) AllPackageIDs() []PackageID {
	seen := make(map[PackageID]struct{})
	add := func(pkgs []PackageConfig) {
		for _, p := range pkgs {
			seen[p.ID] = struct{}{}
		}
	}
	add(c.Packages)
	for _, p := range c.Profiles {
		add(p.Packages.Global)
		add(p.Packages.Client)
		add(p.Packages.Server)
		for _, inst := range p.Instances {
			add(inst.Packages)
		}
	}
	ids := make([]PackageID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, PackageID.Compare)
	return ids
}

// ProfilePackageIDs returns the package ids requested by any instance of profile, sorted.
func (c *Config) ProfilePackageIDs(profile *ProfileConfig) []PackageID {
	seen := make(map[PackageID]struct{})
	for i := range profile.Instances {
		for _, p := range c.PackagesFor(profile, &profile.Instances[i]) {
			seen[p.ID] = struct{}{}
		}
	}
	ids := make([]PackageID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, PackageID.Compare)
	return ids
}

// LocalPackages returns every package configured with a local path.
func (c *Config) LocalPackages() []PackageConfig {
	var out []PackageConfig
	seen := make(map[PackageID]struct{})
	collect := func(pkgs []PackageConfig) {
		for _, p := range pkgs {
			if p.Type != PackageTypeLocal {
				continue
			}
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			out = append(out, p)
		}
	}
	collect(c.Packages)
	for _, id := range c.ProfileIDs() {
		p := c.Profiles[id]
		collect(p.Packages.Global)
		collect(p.Packages.Client)
		collect(p.Packages.Server)
		for _, inst := range p.Instances {
			collect(inst.Packages)
		}
	}
	return out
}
