package domain

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// VersionPattern matches game versions.
//
// Supported forms:
//
//	1.19        exact version
//	1.19+       1.19 or any later version
//	1.19-       1.19 or any earlier version
//	1.16..1.19  inclusive range
//	*           any version
//	latest      the newest known version
type VersionPattern string

const (
	versionAny    = "*"
	versionLatest = "latest"
	versionRange  = ".."
)

// Validate checks that the pattern is well formed.
func (p VersionPattern) Validate() error {
	s := string(p)
	switch {
	case s == "":
		return zerr.With(ErrInvalidVersionPattern, "pattern", s)
	case s == versionAny, s == versionLatest:
		return nil
	case strings.Contains(s, versionRange):
		from, to, _ := strings.Cut(s, versionRange)
		if from == "" || to == "" || strings.Contains(to, versionRange) {
			return zerr.With(ErrInvalidVersionPattern, "pattern", s)
		}
	case s == "+" || s == "-":
		return zerr.With(ErrInvalidVersionPattern, "pattern", s)
	}
	return nil
}

// Matches reports whether version satisfies the pattern.
// versions is the ordered list of known versions, oldest first. When a
// version is missing from it, dotted numeric comparison is used instead.
func (p VersionPattern) Matches(version string, versions []string) bool {
	s := string(p)
	switch {
	case s == versionAny:
		return true
	case s == versionLatest:
		return len(versions) > 0 && versions[len(versions)-1] == version
	case strings.Contains(s, versionRange):
		from, to, _ := strings.Cut(s, versionRange)
		return compareVersions(version, from, versions) >= 0 && compareVersions(version, to, versions) <= 0
	case strings.HasSuffix(s, "+"):
		return compareVersions(version, strings.TrimSuffix(s, "+"), versions) >= 0
	case strings.HasSuffix(s, "-"):
		return compareVersions(version, strings.TrimSuffix(s, "-"), versions) <= 0
	default:
		return s == version
	}
}

// compareVersions returns -1, 0 or 1 as a is older, equal or newer than b.
func compareVersions(a, b string, versions []string) int {
	if a == b {
		return 0
	}
	ai, bi := slices.Index(versions, a), slices.Index(versions, b)
	if ai >= 0 && bi >= 0 {
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		default:
			return 0
		}
	}
	return compareDotted(a, b)
}

func compareDotted(a, b string) int {
	as, bs := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < max(len(as), len(bs)); i++ {
		var x, y string
		if i < len(as) {
			x = as[i]
		}
		if i < len(bs) {
			y = bs[i]
		}
		xn, xerr := strconv.Atoi(orZero(x))
		yn, yerr := strconv.Atoi(orZero(y))
		if xerr != nil || yerr != nil {
			if c := strings.Compare(x, y); c != 0 {
				return c
			}
			continue
		}
		switch {
		case xn < yn:
			return -1
		case xn > yn:
			return 1
		}
	}
	return 0
}

func orZero(s string) string {
	if s == "" {
		return "0"
	}
	return s
}

// VersionManifestURL lists every published game version, newest first.
const VersionManifestURL = "https://piston-meta.mojang.com/mc/game/version_manifest_v2.json"

type versionManifest struct {
	Versions []struct {
		ID string `json:"id"`
	} `json:"versions"`
}

// ParseVersionManifest returns the version ids of a manifest, oldest first.
func ParseVersionManifest(data []byte) ([]string, error) {
	var m versionManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, zerr.Wrap(err, ErrVersionManifest.Error())
	}
	if len(m.Versions) == 0 {
		return nil, zerr.Wrap(ErrVersionManifest, "manifest lists no versions")
	}
	out := make([]string, len(m.Versions))
	for i, v := range m.Versions {
		out[len(out)-1-i] = v.ID
	}
	return out, nil
}
