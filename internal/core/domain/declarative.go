package domain

import (
	"bytes"
	"encoding/json"
	"sort"

	"go.trai.ch/zerr"
)

// ContentType is the authoring format of a package.
type ContentType string

const (
	// ContentTypeDeclarative is a JSON package definition.
	ContentTypeDeclarative ContentType = "declarative"
	// ContentTypeScript is a Starlark package script.
	ContentTypeScript ContentType = "script"
)

// SniffContentType guesses the content type from the package text.
func SniffContentType(contents []byte) ContentType {
	if trimmed := bytes.TrimSpace(contents); len(trimmed) > 0 && trimmed[0] == '{' {
		return ContentTypeDeclarative
	}
	return ContentTypeScript
}

// AddonKind is the kind of content an addon installs.
type AddonKind string

const (
	AddonKindMod          AddonKind = "mod"
	AddonKindResourcePack AddonKind = "resource_pack"
	AddonKindShader       AddonKind = "shader"
	AddonKindPlugin       AddonKind = "plugin"
	AddonKindDatapack     AddonKind = "datapack"
)

// Extension returns the file extension used for addons of this kind.
func (k AddonKind) Extension() string {
	switch k {
	case AddonKindMod, AddonKindPlugin:
		return "jar"
	default:
		return "zip"
	}
}

// Hashes are optional content digests of an addon file.
type Hashes struct {
	SHA256 string `json:"sha256,omitempty" validate:"omitempty,hexadecimal,len=64"`
	SHA512 string `json:"sha512,omitempty" validate:"omitempty,hexadecimal,len=128"`
}

// PackageMetadata are the descriptive fields of a package.
type PackageMetadata struct {
	Name            string   `json:"name,omitempty"`
	Description     string   `json:"description,omitempty"`
	LongDescription string   `json:"long_description,omitempty"`
	Authors         []string `json:"authors,omitempty"`
	Maintainers     []string `json:"package_maintainers,omitempty"`
	Website         string   `json:"website,omitempty" validate:"omitempty,url"`
	SupportLink     string   `json:"support_link,omitempty" validate:"omitempty,url"`
	Documentation   string   `json:"documentation,omitempty" validate:"omitempty,url"`
	Source          string   `json:"source,omitempty" validate:"omitempty,url"`
	Issues          string   `json:"issues,omitempty" validate:"omitempty,url"`
	Community       string   `json:"community,omitempty" validate:"omitempty,url"`
	Icon            string   `json:"icon,omitempty" validate:"omitempty,url"`
	Banner          string   `json:"banner,omitempty" validate:"omitempty,url"`
	License         string   `json:"license,omitempty"`
}

// PackageProperties are the machine readable fields of a package.
type PackageProperties struct {
	Features               []string            `json:"features,omitempty"`
	DefaultFeatures        []string            `json:"default_features,omitempty"`
	ModrinthID             string              `json:"modrinth_id,omitempty"`
	CurseforgeID           string              `json:"curseforge_id,omitempty"`
	SupportedVersions      []VersionPattern    `json:"supported_versions,omitempty"`
	SupportedModloaders    []ModloaderMatch    `json:"supported_modloaders,omitempty"`
	SupportedPluginLoaders []PluginLoaderMatch `json:"supported_plugin_loaders,omitempty"`
	SupportedSides         []Side              `json:"supported_sides,omitempty" validate:"dive,oneof=client server"`
	Tags                   []string            `json:"tags,omitempty"`
}

// AddonVersion is one installable variant of an addon.
type AddonVersion struct {
	ConditionSet
	Relations Relations `json:"relations"`
	Filename  string    `json:"filename,omitempty" validate:"omitempty,addon_filename"`
	Path      string    `json:"path,omitempty" validate:"required_without=URL"`
	URL       string    `json:"url,omitempty" validate:"omitempty,url"`
	Version   string    `json:"version,omitempty"`
	Hashes    Hashes    `json:"hashes"`
}

// Addon is a single installable content unit of a package.
type Addon struct {
	Kind       AddonKind      `json:"kind" validate:"required,oneof=mod resource_pack shader plugin datapack"`
	Versions   []AddonVersion `json:"versions" validate:"dive"`
	Conditions []ConditionSet `json:"conditions,omitempty" validate:"dive"`
}

// DeclarativePackage is a package described by structured data.
type DeclarativePackage struct {
	Meta             PackageMetadata   `json:"meta"`
	Properties       PackageProperties `json:"properties"`
	Addons           map[string]Addon  `json:"addons" validate:"dive"`
	Relations        Relations         `json:"relations"`
	ConditionalRules []ConditionalRule `json:"conditional_rules,omitempty" validate:"dive"`
}

// ParseDeclarativePackage decodes a declarative package from JSON.
// Version patterns and addon file names are checked here, since they come
// from remote repositories and are used to select and place files.
func ParseDeclarativePackage(data []byte) (*DeclarativePackage, error) {
	var pkg DeclarativePackage
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, zerr.Wrap(err, ErrPackageParse.Error())
	}
	if err := pkg.check(); err != nil {
		return nil, zerr.Wrap(err, ErrPackageParse.Error())
	}
	return &pkg, nil
}

func (p *DeclarativePackage) check() error {
	for _, v := range p.Properties.SupportedVersions {
		if err := v.Validate(); err != nil {
			return zerr.With(err, "field", "supported_versions")
		}
	}
	for _, name := range p.AddonNames() {
		addon := p.Addons[name]
		for i := range addon.Conditions {
			if err := addon.Conditions[i].Validate(); err != nil {
				return zerr.With(err, "addon", name)
			}
		}
		for i := range addon.Versions {
			v := &addon.Versions[i]
			if err := v.Validate(); err != nil {
				return zerr.With(err, "addon", name)
			}
			if v.Filename != "" && !ValidAddonFileName(v.Filename) {
				return zerr.With(zerr.With(ErrInvalidAddonFileName, "addon", name), "filename", v.Filename)
			}
		}
	}
	for i := range p.ConditionalRules {
		for j := range p.ConditionalRules[i].Conditions {
			if err := p.ConditionalRules[i].Conditions[j].Validate(); err != nil {
				return zerr.With(err, "rule", i)
			}
		}
	}
	return nil
}

// AddonNames returns the addon names in lexical order.
func (p *DeclarativePackage) AddonNames() []string {
	names := make([]string, 0, len(p.Addons))
	for name := range p.Addons {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
