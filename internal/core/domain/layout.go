package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// AppDirName is the directory name used under the platform data, config and cache roots.
	AppDirName = "mcvm"

	// ConfigFileName is the name of the profile configuration file.
	ConfigFileName = "mcvm.yaml"

	// SettingsFileName is the name of the optional settings file.
	SettingsFileName = "settings.yaml"

	// InternalDirName holds files the user should not edit.
	InternalDirName = "internal"

	// LockfileName is the name of the lockfile inside the internal directory.
	LockfileName = "lock.json"

	// InstancesDirName holds one directory per instance.
	InstancesDirName = "instances"

	// PackageCacheDirName holds downloaded package definitions.
	PackageCacheDirName = "packages"

	// RepoCacheDirName holds downloaded repository indexes.
	RepoCacheDirName = "repos"

	// VersionManifestFileName is the cached copy of the game version manifest.
	VersionManifestFileName = "version_manifest.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// LockfilePath returns the lockfile location inside the data directory.
func LockfilePath(dataDir string) string {
	return filepath.Join(dataDir, InternalDirName, LockfileName)
}

// PackageCachePath returns the cache directory for package definitions.
func PackageCachePath(cacheDir string) string {
	return filepath.Join(cacheDir, PackageCacheDirName)
}

// RepoIndexCachePath returns the cached index file of a repository.
func RepoIndexCachePath(cacheDir, repoID string) string {
	return filepath.Join(cacheDir, RepoCacheDirName, repoID+".json")
}

// VersionManifestCachePath returns the cached version manifest location.
func VersionManifestCachePath(cacheDir string) string {
	return filepath.Join(cacheDir, VersionManifestFileName)
}

// InstanceDir returns the game directory of an instance.
// Clients keep their files in .minecraft, servers in server.
func InstanceDir(dataDir, instanceID string, side Side) string {
	sub := ".minecraft"
	if side == SideServer {
		sub = "server"
	}
	return filepath.Join(dataDir, InstancesDirName, instanceID, sub)
}

// AddonFileNameTag is the validator tag checking ValidAddonFileName.
const AddonFileNameTag = "addon_filename"

// ValidAddonFileName reports whether name can be stored as a single file
// inside an addon directory.
func ValidAddonFileName(name string) bool {
	return name != "" &&
		!strings.ContainsAny(name, `/\:`) &&
		!strings.Contains(name, "..") &&
		filepath.Base(name) == name &&
		!filepath.IsAbs(name)
}

// AddonFileName returns the name an addon is stored under.
// An explicit filename in the package wins.
func AddonFileName(pkg PackageID, addon *SelectedAddon) string {
	if addon.FileName != "" {
		return addon.FileName
	}
	if addon.Version != "" {
		return fmt.Sprintf("%s_%s-%s.%s", pkg, addon.ID, addon.Version, addon.Kind.Extension())
	}
	return fmt.Sprintf("%s_%s.%s", pkg, addon.ID, addon.Kind.Extension())
}

// AddonTargets returns every path an addon must be written to in an instance.
// Datapacks go into each world; kinds the side cannot load return no targets.
// Every target is checked to stay inside gameDir.
func AddonTargets(gameDir string, side Side, pkg PackageID, addon *SelectedAddon, worlds []string) ([]string, error) {
	name := AddonFileName(pkg, addon)
	if !ValidAddonFileName(name) {
		return nil, zerr.With(zerr.With(ErrInvalidAddonFileName, "addon", addon.ID), "filename", name)
	}

	var targets []string
	switch addon.Kind {
	case AddonKindMod:
		targets = []string{filepath.Join(gameDir, "mods", name)}
	case AddonKindResourcePack:
		if side == SideClient {
			targets = []string{filepath.Join(gameDir, "resourcepacks", name)}
		}
	case AddonKindShader:
		if side == SideClient {
			targets = []string{filepath.Join(gameDir, "shaderpacks", name)}
		}
	case AddonKindPlugin:
		if side == SideServer {
			targets = []string{filepath.Join(gameDir, "plugins", name)}
		}
	case AddonKindDatapack:
		for _, world := range worlds {
			if side == SideClient {
				targets = append(targets, filepath.Join(gameDir, "saves", world, "datapacks", name))
			} else {
				targets = append(targets, filepath.Join(gameDir, world, "datapacks", name))
			}
		}
	}

	for _, t := range targets {
		if !within(gameDir, t) {
			return nil, zerr.With(zerr.With(ErrAddonOutsideInstance, "addon", addon.ID), "path", t)
		}
	}
	return targets, nil
}

func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}
