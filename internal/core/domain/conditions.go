package domain

import "slices"

// Side is the side of the game an instance runs.
type Side string

const (
	SideClient Side = "client"
	SideServer Side = "server"
)

// Stability selects between stable and bleeding edge addon versions.
type Stability string

const (
	StabilityStable Stability = "stable"
	StabilityLatest Stability = "latest"
)

// OS is an operating system family.
type OS string

const (
	OSWindows OS = "windows"
	OSLinux   OS = "linux"
	OSMacOS   OS = "macos"
	OSOther   OS = "other"
)

// OSFromGOOS maps a runtime.GOOS value to an OS.
func OSFromGOOS(goos string) OS {
	switch goos {
	case "windows":
		return OSWindows
	case "linux":
		return OSLinux
	case "darwin":
		return OSMacOS
	default:
		return OSOther
	}
}

// Language is a game language code such as "en_us".
type Language string

// Modloader is the concrete mod loader of an instance.
type Modloader string

const (
	ModloaderVanilla   Modloader = "vanilla"
	ModloaderForge     Modloader = "forge"
	ModloaderNeoForged Modloader = "neoforged"
	ModloaderFabric    Modloader = "fabric"
	ModloaderQuilt     Modloader = "quilt"
)

// ModloaderMatch matches one or more mod loaders.
type ModloaderMatch string

const (
	MatchModloaderVanilla    ModloaderMatch = "vanilla"
	MatchModloaderForge      ModloaderMatch = "forge"
	MatchModloaderNeoForged  ModloaderMatch = "neoforged"
	MatchModloaderFabric     ModloaderMatch = "fabric"
	MatchModloaderQuilt      ModloaderMatch = "quilt"
	MatchModloaderFabricLike ModloaderMatch = "fabriclike"
	MatchModloaderForgeLike  ModloaderMatch = "forgelike"
	MatchModloaderAny        ModloaderMatch = "any"
)

// Matches reports whether loader is accepted by the matcher.
// "any" accepts every loader except vanilla.
func (m ModloaderMatch) Matches(loader Modloader) bool {
	switch m {
	case MatchModloaderAny:
		return loader != ModloaderVanilla && loader != ""
	case MatchModloaderFabricLike:
		return loader == ModloaderFabric || loader == ModloaderQuilt
	case MatchModloaderForgeLike:
		return loader == ModloaderForge || loader == ModloaderNeoForged
	default:
		return string(m) == string(loader)
	}
}

// PluginLoader is the server plugin loader of an instance.
type PluginLoader string

const (
	PluginLoaderVanilla PluginLoader = "vanilla"
	PluginLoaderPaper   PluginLoader = "paper"
	PluginLoaderFolia   PluginLoader = "folia"
	PluginLoaderSponge  PluginLoader = "sponge"
)

// PluginLoaderMatch matches one or more plugin loaders.
type PluginLoaderMatch string

const (
	MatchPluginLoaderVanilla PluginLoaderMatch = "vanilla"
	MatchPluginLoaderPaper   PluginLoaderMatch = "paper"
	MatchPluginLoaderFolia   PluginLoaderMatch = "folia"
	MatchPluginLoaderSponge  PluginLoaderMatch = "sponge"
	MatchPluginLoaderBukkit  PluginLoaderMatch = "bukkit"
	MatchPluginLoaderAny     PluginLoaderMatch = "any"
)

// Matches reports whether loader is accepted by the matcher.
func (m PluginLoaderMatch) Matches(loader PluginLoader) bool {
	switch m {
	case MatchPluginLoaderAny:
		return loader != PluginLoaderVanilla && loader != ""
	case MatchPluginLoaderBukkit:
		return loader == PluginLoaderPaper || loader == PluginLoaderFolia
	default:
		return string(m) == string(loader)
	}
}

// ConditionSet is a conjunction of optional predicates over the evaluation input.
// A nil or empty field does not constrain the match.
type ConditionSet struct {
	MinecraftVersions ListOrSingle[VersionPattern]    `json:"minecraft_versions,omitempty"`
	Side              *Side                           `json:"side,omitempty" validate:"omitempty,oneof=client server"`
	Modloaders        ListOrSingle[ModloaderMatch]    `json:"modloaders,omitempty"`
	PluginLoaders     ListOrSingle[PluginLoaderMatch] `json:"plugin_loaders,omitempty"`
	Stability         *Stability                      `json:"stability,omitempty" validate:"omitempty,oneof=stable latest"`
	Features          ListOrSingle[string]            `json:"features,omitempty"`
	OS                *OS                             `json:"os,omitempty"`
	Language          *Language                       `json:"language,omitempty"`
}

// Matches reports whether every present predicate holds for in.
func (c *ConditionSet) Matches(in *EvalInput) bool {
	if len(c.MinecraftVersions) > 0 && !slices.ContainsFunc(c.MinecraftVersions, func(p VersionPattern) bool {
		return p.Matches(in.Constants.Version, in.Constants.Versions)
	}) {
		return false
	}
	if c.Side != nil && *c.Side != in.Params.Side {
		return false
	}
	if len(c.Modloaders) > 0 && !slices.ContainsFunc(c.Modloaders, func(m ModloaderMatch) bool {
		return m.Matches(in.Constants.Modloader)
	}) {
		return false
	}
	if len(c.PluginLoaders) > 0 && !slices.ContainsFunc(c.PluginLoaders, func(m PluginLoaderMatch) bool {
		return m.Matches(in.Constants.PluginLoader)
	}) {
		return false
	}
	if c.Stability != nil && *c.Stability != in.Params.Stability {
		return false
	}
	for _, f := range c.Features {
		if !in.HasFeature(f) {
			return false
		}
	}
	if c.OS != nil && *c.OS != in.Constants.OS {
		return false
	}
	if c.Language != nil && *c.Language != in.Constants.Language {
		return false
	}
	return true
}

// Validate checks the version patterns of the set.
func (c *ConditionSet) Validate() error {
	for _, p := range c.MinecraftVersions {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// IsEmpty reports whether the set has no predicates.
func (c *ConditionSet) IsEmpty() bool {
	return len(c.MinecraftVersions) == 0 && c.Side == nil && len(c.Modloaders) == 0 &&
		len(c.PluginLoaders) == 0 && c.Stability == nil && len(c.Features) == 0 &&
		c.OS == nil && c.Language == nil
}

// RuleProperties are applied when a conditional rule matches.
type RuleProperties struct {
	Relations Relations `json:"relations"`
	Notices   []string  `json:"notices,omitempty"`
}

// ConditionalRule applies its properties when any of its condition sets matches.
type ConditionalRule struct {
	Conditions []ConditionSet `json:"conditions" validate:"dive"`
	Properties RuleProperties `json:"properties"`
}

// Matches is a disjunction over the rule's condition sets.
// A rule without conditions always applies.
func (r *ConditionalRule) Matches(in *EvalInput) bool {
	if len(r.Conditions) == 0 {
		return true
	}
	for i := range r.Conditions {
		if r.Conditions[i].Matches(in) {
			return true
		}
	}
	return false
}
