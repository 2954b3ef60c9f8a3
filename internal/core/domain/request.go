package domain

import "strings"

// SourceKind describes why a package was requested.
type SourceKind uint8

const (
	// SourceUserRequire marks a package listed in the user's configuration.
	SourceUserRequire SourceKind = iota
	// SourceDependency marks a package required by another package.
	SourceDependency
	// SourceExtension marks a package extended by another package.
	SourceExtension
	// SourceBundled marks a package shipped together with another package.
	SourceBundled
)

// String returns a human readable name for the source kind.
func (k SourceKind) String() string {
	switch k {
	case SourceUserRequire:
		return "user"
	case SourceDependency:
		return "dependency"
	case SourceExtension:
		return "extension"
	case SourceBundled:
		return "bundled"
	default:
		return "unknown"
	}
}

// RequestSource is the provenance of a request. Parent is nil for user requests.
type RequestSource struct {
	Kind   SourceKind
	Parent *PackageRequest
}

// PackageRequest is an immutable request for a package.
// Identity is the id alone; the source is diagnostic metadata.
type PackageRequest struct {
	id     PackageID
	source RequestSource
}

// NewPackageRequest creates a request for id with the given source.
func NewPackageRequest(id PackageID, source RequestSource) *PackageRequest {
	return &PackageRequest{id: id, source: source}
}

// UserRequest creates a request for a package the user asked for directly.
func UserRequest(id PackageID) *PackageRequest {
	return NewPackageRequest(id, RequestSource{Kind: SourceUserRequire})
}

// Child creates a request for id that was discovered through r.
func (r *PackageRequest) Child(id PackageID, kind SourceKind) *PackageRequest {
	return NewPackageRequest(id, RequestSource{Kind: kind, Parent: r})
}

// ID returns the requested package id.
func (r *PackageRequest) ID() PackageID {
	return r.id
}

// Source returns the provenance of the request.
func (r *PackageRequest) Source() RequestSource {
	return r.source
}

// Equal reports whether both requests target the same package.
func (r *PackageRequest) Equal(other *PackageRequest) bool {
	return r.id == other.id
}

// Compare orders requests by package id.
func (r *PackageRequest) Compare(other *PackageRequest) int {
	return r.id.Compare(other.id)
}

// String returns the package id.
func (r *PackageRequest) String() string {
	return r.id.String()
}

// Chain returns the ids from the root user request down to r.
func (r *PackageRequest) Chain() []PackageID {
	var chain []PackageID
	for cur := r; cur != nil; cur = cur.source.Parent {
		chain = append(chain, cur.id)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// FormatChain renders a dependency chain as "a -> b -> c".
func FormatChain(chain []PackageID) string {
	parts := make([]string, len(chain))
	for i, id := range chain {
		parts[i] = id.String()
	}
	return strings.Join(parts, " -> ")
}
