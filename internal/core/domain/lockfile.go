package domain

import (
	"slices"
	"sort"
)

// LockfileAddon records one installed addon and the files it owns.
type LockfileAddon struct {
	ID       string    `json:"id"`
	FileName string    `json:"file_name,omitempty"`
	Files    []string  `json:"files"`
	Kind     AddonKind `json:"kind"`
	Version  string    `json:"version,omitempty"`
	Hashes   Hashes    `json:"hashes"`
}

// LockfilePackage is the installed state of one package in one instance.
type LockfilePackage struct {
	Addons []LockfileAddon `json:"addons"`
}

// LockfileProfile is the installed state of a profile.
type LockfileProfile struct {
	Version string `json:"version"`
	// PaperBuild is carried over from existing lockfiles and cleared when the version changes.
	PaperBuild *int `json:"paper_build,omitempty"`
}

// Lockfile is the persisted record of what was installed where.
// Packages is keyed by instance id, then package id.
type Lockfile struct {
	Packages map[string]map[string]*LockfilePackage `json:"packages"`
	Profiles map[string]*LockfileProfile            `json:"profiles"`
}

// NewLockfile returns an empty lockfile.
func NewLockfile() *Lockfile {
	return &Lockfile{
		Packages: make(map[string]map[string]*LockfilePackage),
		Profiles: make(map[string]*LockfileProfile),
	}
}

// Fix migrates a freshly decoded lockfile to the current format.
// Older lockfiles did not record file_name; it defaults to the addon id.
// Fix must run once after decoding.
func (l *Lockfile) Fix() {
	if l.Packages == nil {
		l.Packages = make(map[string]map[string]*LockfilePackage)
	}
	if l.Profiles == nil {
		l.Profiles = make(map[string]*LockfileProfile)
	}
	for instance, pkgs := range l.Packages {
		if pkgs == nil {
			l.Packages[instance] = make(map[string]*LockfilePackage)
			continue
		}
		for id, pkg := range pkgs {
			if pkg == nil {
				delete(pkgs, id)
				continue
			}
			for i := range pkg.Addons {
				if pkg.Addons[i].FileName == "" {
					pkg.Addons[i].FileName = pkg.Addons[i].ID
				}
			}
		}
	}
}

// Package returns the recorded state of pkg in instance.
func (l *Lockfile) Package(instance, pkg string) (*LockfilePackage, bool) {
	p, ok := l.Packages[instance][pkg]
	return p, ok
}

// Addon returns the recorded addon id of pkg in instance.
func (l *Lockfile) Addon(instance, pkg, addon string) (*LockfileAddon, bool) {
	p, ok := l.Package(instance, pkg)
	if !ok {
		return nil, false
	}
	for i := range p.Addons {
		if p.Addons[i].ID == addon {
			return &p.Addons[i], true
		}
	}
	return nil, false
}

// InstancePackages returns the package ids recorded for instance, sorted.
func (l *Lockfile) InstancePackages(instance string) []string {
	ids := make([]string, 0, len(l.Packages[instance]))
	for id := range l.Packages[instance] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// OwnsFile reports whether path is recorded by any addon of instance.
func (l *Lockfile) OwnsFile(instance, path string) bool {
	for _, pkg := range l.Packages[instance] {
		for _, addon := range pkg.Addons {
			if slices.Contains(addon.Files, path) {
				return true
			}
		}
	}
	return false
}

// UpdatePackage replaces the recorded addons of pkg in instance.
// It returns the previously recorded files that the new addons no longer own,
// in recorded order. The caller is responsible for deleting them.
func (l *Lockfile) UpdatePackage(instance, pkg string, addons []LockfileAddon) []string {
	keep := make(map[string]struct{})
	for _, a := range addons {
		for _, f := range a.Files {
			keep[f] = struct{}{}
		}
	}

	var remove []string
	if old, ok := l.Package(instance, pkg); ok {
		for _, a := range old.Addons {
			for _, f := range a.Files {
				if _, kept := keep[f]; !kept {
					remove = append(remove, f)
				}
			}
		}
	}

	if l.Packages[instance] == nil {
		l.Packages[instance] = make(map[string]*LockfilePackage)
	}
	l.Packages[instance][pkg] = &LockfilePackage{Addons: slices.Clone(addons)}
	return remove
}

// RemovedPackage is a package dropped from an instance by RemoveUnusedPackages.
type RemovedPackage struct {
	ID    string
	Files []string
}

// RemoveUnusedPackages drops every package of instance that is not in keep.
// It returns the dropped packages sorted by id together with their files.
func (l *Lockfile) RemoveUnusedPackages(instance string, keep []string) []RemovedPackage {
	var removed []RemovedPackage
	for _, id := range l.InstancePackages(instance) {
		if slices.Contains(keep, id) {
			continue
		}
		var files []string
		for _, a := range l.Packages[instance][id].Addons {
			files = append(files, a.Files...)
		}
		delete(l.Packages[instance], id)
		removed = append(removed, RemovedPackage{ID: id, Files: files})
	}
	return removed
}

// UpdateProfileVersion records the game version of profile.
// It reports whether the version changed from the recorded one.
func (l *Lockfile) UpdateProfileVersion(profile, version string) bool {
	p, ok := l.Profiles[profile]
	if !ok {
		l.Profiles[profile] = &LockfileProfile{Version: version}
		return false
	}
	if p.Version == version {
		return false
	}
	p.Version = version
	p.PaperBuild = nil
	return true
}
