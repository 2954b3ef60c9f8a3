package domain

import (
	"bytes"
	"encoding/json"
)

// ListOrSingle is a list that also decodes from a single JSON value.
// Package authors may write "dependencies": "fabric-api" instead of a one element list.
type ListOrSingle[T any] []T

// UnmarshalJSON implements json.Unmarshaler.
func (l *ListOrSingle[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []T
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return err
		}
		*l = list
		return nil
	}
	var single T
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return err
	}
	*l = ListOrSingle[T]{single}
	return nil
}

// CompatPair links a package to a compatibility package.
// When both are resolved, the second is ordered after the first.
type CompatPair [2]PackageID

// Relations are the links a package declares to other packages.
type Relations struct {
	Dependencies         ListOrSingle[PackageID] `json:"dependencies,omitempty"`
	ExplicitDependencies ListOrSingle[PackageID] `json:"explicit_dependencies,omitempty"`
	Conflicts            ListOrSingle[PackageID] `json:"conflicts,omitempty"`
	Extensions           ListOrSingle[PackageID] `json:"extensions,omitempty"`
	Bundled              ListOrSingle[PackageID] `json:"bundled,omitempty"`
	Compats              []CompatPair            `json:"compats,omitempty"`
	Recommendations      ListOrSingle[PackageID] `json:"recommendations,omitempty"`
}

// Merge returns the per-field union of r and other.
// Duplicates are kept; consumers deduplicate.
func (r Relations) Merge(other Relations) Relations {
	return Relations{
		Dependencies:         appendIDs(r.Dependencies, other.Dependencies),
		ExplicitDependencies: appendIDs(r.ExplicitDependencies, other.ExplicitDependencies),
		Conflicts:            appendIDs(r.Conflicts, other.Conflicts),
		Extensions:           appendIDs(r.Extensions, other.Extensions),
		Bundled:              appendIDs(r.Bundled, other.Bundled),
		Compats:              append(append([]CompatPair(nil), r.Compats...), other.Compats...),
		Recommendations:      appendIDs(r.Recommendations, other.Recommendations),
	}
}

// ConflictsWith reports whether id is listed in the conflicts relation.
func (r *Relations) ConflictsWith(id PackageID) bool {
	for _, c := range r.Conflicts {
		if c == id {
			return true
		}
	}
	return false
}

func appendIDs(a, b ListOrSingle[PackageID]) ListOrSingle[PackageID] {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(ListOrSingle[PackageID], 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
