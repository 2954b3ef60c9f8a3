package domain

// ResolvedPackage is one member of a resolved set together with the
// configuration and evaluation result it was resolved with.
type ResolvedPackage struct {
	Request *PackageRequest
	Config  PackageConfig
	Result  *EvalResult
}

// ResolvedSet is the ordered, duplicate free closure of packages required by
// one instance. Dependencies come before their dependents.
type ResolvedSet struct {
	Instance string
	Packages []ResolvedPackage
	Notices  []Notice
}

// IDs returns the package ids in resolved order.
func (s *ResolvedSet) IDs() []PackageID {
	ids := make([]PackageID, len(s.Packages))
	for i, p := range s.Packages {
		ids[i] = p.Request.ID()
	}
	return ids
}

// Strings returns the package ids as strings in resolved order.
func (s *ResolvedSet) Strings() []string {
	ids := make([]string, len(s.Packages))
	for i, p := range s.Packages {
		ids[i] = p.Request.ID().String()
	}
	return ids
}
