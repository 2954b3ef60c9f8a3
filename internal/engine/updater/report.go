package updater

import "go.trai.ch/mcvm/internal/core/domain"

// InstalledAddon is an addon written to an instance during an update.
type InstalledAddon struct {
	Instance string
	Package  string
	Addon    string
	Version  string
}

// Failure is a unit of work that failed without aborting the update.
// Package is empty when the whole instance failed to resolve.
type Failure struct {
	Instance string
	Package  string
	Err      error
}

// Report summarizes a profile update.
type Report struct {
	Profile        string
	Installed      []InstalledAddon
	UpToDate       int
	Failures       []Failure
	Removed        []string
	Notices        []domain.Notice
	VersionChanged bool
}

// Failed reports whether any instance or package failed.
func (r *Report) Failed() bool {
	return len(r.Failures) > 0
}
