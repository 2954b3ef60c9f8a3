package domain

import (
	"encoding/json"
	"sort"

	"go.trai.ch/zerr"
)

// RepoMetadata describes a repository.
type RepoMetadata struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Version     string `json:"mcvm_version,omitempty"`
}

// RepoPackageEntry is where a repository serves a package from.
type RepoPackageEntry struct {
	URL         string        `json:"url"`
	Version     string        `json:"version,omitempty"`
	ContentType ContentType   `json:"content_type,omitempty"`
	Flags       []PackageFlag `json:"flags,omitempty"`
}

// RepoIndex is the package index served by a repository.
type RepoIndex struct {
	Metadata RepoMetadata                `json:"metadata"`
	Packages map[string]RepoPackageEntry `json:"packages"`
}

// ParseRepoIndex decodes a repository index.
func ParseRepoIndex(data []byte) (*RepoIndex, error) {
	var idx RepoIndex
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, zerr.Wrap(err, ErrRepoIndexParse.Error())
	}
	if idx.Packages == nil {
		idx.Packages = make(map[string]RepoPackageEntry)
	}
	return &idx, nil
}

// PackageIDs returns the ids in the index, sorted.
func (i *RepoIndex) PackageIDs() []string {
	ids := make([]string, 0, len(i.Packages))
	for id := range i.Packages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RepoInfo summarizes a configured repository for display.
type RepoInfo struct {
	ID       string
	URL      string
	Metadata RepoMetadata
}

// PackageLocation is where a package was found.
type PackageLocation struct {
	Repository string
	Entry      RepoPackageEntry
}
