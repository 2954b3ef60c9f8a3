package domain

import "slices"

// Permissions is the trust level granted to a package.
type Permissions string

const (
	PermissionsRestricted Permissions = "restricted"
	PermissionsStandard   Permissions = "standard"
	PermissionsElevated   Permissions = "elevated"
)

func (p Permissions) rank() int {
	switch p {
	case PermissionsRestricted:
		return 0
	case PermissionsElevated:
		return 2
	default:
		return 1
	}
}

// Allows reports whether p grants at least the required level.
func (p Permissions) Allows(required Permissions) bool {
	return p.rank() >= required.rank()
}

// EvalConstants describe the profile an instance belongs to.
// They are shared by every evaluation in one update.
type EvalConstants struct {
	Version          string
	Versions         []string
	Modloader        Modloader
	PluginLoader     PluginLoader
	OS               OS
	Language         Language
	DefaultStability Stability
}

// EvalParameters are built fresh for every (instance, package) evaluation.
type EvalParameters struct {
	Side               Side
	Features           []string
	UseDefaultFeatures bool
	Permissions        Permissions
	Stability          Stability
	Worlds             []string
}

// EvalInput is everything condition matching looks at.
type EvalInput struct {
	Constants *EvalConstants
	Params    EvalParameters
}

// HasFeature reports whether feature is enabled.
func (in *EvalInput) HasFeature(feature string) bool {
	return slices.Contains(in.Params.Features, feature)
}

// SelectedAddon is the addon version chosen for installation.
type SelectedAddon struct {
	ID       string    `json:"id"`
	Kind     AddonKind `json:"kind"`
	FileName string    `json:"filename,omitempty"`
	URL      string    `json:"url,omitempty"`
	Path     string    `json:"path,omitempty"`
	Version  string    `json:"version,omitempty"`
	Hashes   Hashes    `json:"hashes"`
}

// Notice is a message surfaced to the user after an update.
type Notice struct {
	Package PackageID
	Message string
}

// EvalResult is the side-effect free install plan of one package.
type EvalResult struct {
	Relations Relations
	Addons    []SelectedAddon
	Notices   []string
}
