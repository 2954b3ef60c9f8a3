// Package domain contains the core data model of the package engine: package
// identity, the declarative package format, condition matching, the lockfile
// and the instance/profile configuration.
package domain

import (
	"strings"
	"unique"

	"go.trai.ch/zerr"
)

// PackageID is an interned, case-sensitive package identifier.
// Identifiers repeat across every instance, relation and lockfile entry, so
// they are stored as unique handles and compared by handle.
type PackageID struct {
	h unique.Handle[string]
}

// NewPackageID interns s without validating it.
// Use ParsePackageID for identifiers coming from user or repository input.
func NewPackageID(s string) PackageID {
	return PackageID{h: unique.Make(s)}
}

// ParsePackageID validates and interns s.
func ParsePackageID(s string) (PackageID, error) {
	if err := ValidatePackageID(s); err != nil {
		return PackageID{}, err
	}
	return NewPackageID(s), nil
}

// NewPackageIDs interns every string in s.
func NewPackageIDs(s []string) []PackageID {
	res := make([]PackageID, len(s))
	for i, v := range s {
		res[i] = NewPackageID(v)
	}
	return res
}

// ValidatePackageID checks that s is a non-empty ASCII identifier made of
// letters, digits and the punctuation characters '_', '-' and '.'.
func ValidatePackageID(s string) error {
	if s == "" {
		return zerr.With(ErrInvalidPackageID, "id", s)
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_' || r == '-' || r == '.':
		default:
			return zerr.With(ErrInvalidPackageID, "id", s)
		}
	}
	return nil
}

// IsZero reports whether the id was never set.
func (id PackageID) IsZero() bool {
	return id.h == unique.Handle[string]{}
}

// String returns the identifier text.
func (id PackageID) String() string {
	if id.IsZero() {
		return ""
	}
	return id.h.Value()
}

// Compare orders identifiers lexically.
func (id PackageID) Compare(other PackageID) int {
	return strings.Compare(id.String(), other.String())
}

// MarshalText implements encoding.TextMarshaler.
func (id PackageID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and validates the identifier.
func (id *PackageID) UnmarshalText(text []byte) error {
	parsed, err := ParsePackageID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
