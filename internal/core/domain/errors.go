package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrInvalidPackageID is returned when a package identifier fails validation.
	ErrInvalidPackageID = zerr.New("invalid package id, expected ascii letters, digits, '_', '-' or '.'")

	// ErrPackageNotFound is returned when no configured repository contains the requested package.
	ErrPackageNotFound = zerr.New("package not found")

	// ErrPackageParse is returned when a package definition is malformed.
	ErrPackageParse = zerr.New("failed to parse package")

	// ErrPackageValidation is returned when a package definition fails schema validation.
	ErrPackageValidation = zerr.New("package failed validation")

	// ErrConditionMismatch is returned when a required addon has no version matching the evaluation context.
	ErrConditionMismatch = zerr.New("no addon version matches the evaluation context")

	// ErrConflict is returned when two resolved packages in the same instance exclude each other.
	ErrConflict = zerr.New("conflicting packages")

	// ErrMissingDependency is returned when an explicit dependency cannot be found in any repository.
	ErrMissingDependency = zerr.New("missing required dependency")

	// ErrCycleDetected is returned when a cycle is detected in the package dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrFeatureNotFound is returned when a requested feature is not declared by the package.
	ErrFeatureNotFound = zerr.New("feature not declared by package")

	// ErrInsufficientPermissions is returned when an addon requires more permissions than the package was granted.
	ErrInsufficientPermissions = zerr.New("insufficient permissions for addon")

	// ErrInvalidVersionPattern is returned when a version pattern cannot be parsed.
	ErrInvalidVersionPattern = zerr.New("invalid version pattern")

	// ErrScriptEval is returned when a scripted package fails to evaluate.
	ErrScriptEval = zerr.New("failed to evaluate package script")

	// ErrDownloadFailed is returned when a remote resource cannot be fetched.
	ErrDownloadFailed = zerr.New("download failed")

	// ErrRepoSync is returned when a repository index cannot be synced.
	ErrRepoSync = zerr.New("failed to sync repository")

	// ErrRepoIndexParse is returned when a repository index is malformed.
	ErrRepoIndexParse = zerr.New("failed to parse repository index")

	// ErrRepoCacheRead is returned when a cached repository index cannot be read.
	ErrRepoCacheRead = zerr.New("failed to read cached repository index")

	// ErrPackageCacheWrite is returned when package contents cannot be written to the disk cache.
	ErrPackageCacheWrite = zerr.New("failed to write package cache")

	// ErrPackageCacheRead is returned when package contents cannot be read from disk.
	ErrPackageCacheRead = zerr.New("failed to read package contents")

	// ErrLockfileRead is returned when the lockfile cannot be read.
	ErrLockfileRead = zerr.New("failed to read lockfile")

	// ErrLockfileParse is returned when the lockfile cannot be parsed.
	ErrLockfileParse = zerr.New("failed to parse lockfile")

	// ErrLockfileWrite is returned when the lockfile cannot be written.
	ErrLockfileWrite = zerr.New("failed to write lockfile")

	// ErrAddonInstallFailed is returned when an addon cannot be installed.
	ErrAddonInstallFailed = zerr.New("failed to install addon")

	// ErrAddonRemoveFailed is returned when an addon file cannot be removed.
	ErrAddonRemoveFailed = zerr.New("failed to remove addon file")

	// ErrAddonNoSource is returned when an addon version has neither a url nor a path.
	ErrAddonNoSource = zerr.New("addon version has no url or path")

	// ErrHashMismatch is returned when downloaded addon contents do not match the declared hash.
	ErrHashMismatch = zerr.New("addon hash mismatch")

	// ErrPackageInstallFailed is returned when a package could not be installed for an instance.
	ErrPackageInstallFailed = zerr.New("failed to install package")

	// ErrInstanceResolveFailed is returned when the packages of an instance could not be resolved.
	ErrInstanceResolveFailed = zerr.New("failed to resolve instance packages")

	// ErrUnknownProfile is returned when a profile is not defined in the configuration.
	ErrUnknownProfile = zerr.New("unknown profile")

	// ErrUnknownInstance is returned when an instance is not defined in the configuration.
	ErrUnknownInstance = zerr.New("unknown instance")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file fails validation.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrSettingsLoadFailed is returned when the settings cannot be loaded.
	ErrSettingsLoadFailed = zerr.New("failed to load settings")

	// ErrPromptFailed is returned when the user could not be asked for confirmation.
	ErrPromptFailed = zerr.New("failed to read confirmation")

	// ErrUpdateFailed is returned when a profile update finished with failures.
	ErrUpdateFailed = zerr.New("profile update finished with failures")

	// ErrVersionManifest is returned when the game version list cannot be downloaded or read.
	ErrVersionManifest = zerr.New("failed to load game version manifest")

	// ErrInvalidAddonFileName is returned when an addon file name is not a single path element.
	ErrInvalidAddonFileName = zerr.New("addon file name must not contain path separators")

	// ErrAddonOutsideInstance is returned when an addon target would leave the instance directory.
	ErrAddonOutsideInstance = zerr.New("addon target is outside the instance directory")
)

// ConflictError reports two packages in the same instance that exclude each other.
type ConflictError struct {
	// Package is the package whose conflicts relation matched.
	Package PackageID
	// With is the package it conflicts with.
	With PackageID
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: package '%s' conflicts with package '%s'", ErrConflict.Error(), e.Package, e.With)
}

// Unwrap returns ErrConflict so callers can classify with errors.Is.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
