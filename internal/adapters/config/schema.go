package config

import "gopkg.in/yaml.v3"

// File is the structure of mcvm.yaml.
type File struct {
	Repositories []RepositoryDTO       `yaml:"repositories" validate:"dive"`
	Packages     []PackageDTO          `yaml:"packages" validate:"dive"`
	Profiles     map[string]ProfileDTO `yaml:"profiles" validate:"dive"`
}

// RepositoryDTO is a remote package repository.
type RepositoryDTO struct {
	ID  string `yaml:"id" validate:"required"`
	URL string `yaml:"url" validate:"required,url"`
}

// PackageDTO is a requested package. It is written either as a bare id or
// as a mapping with options.
type PackageDTO struct {
	ID                 string   `yaml:"id" validate:"required"`
	Type               string   `yaml:"type" validate:"omitempty,oneof=repository local"`
	Path               string   `yaml:"path" validate:"required_if=Type local"`
	Features           []string `yaml:"features"`
	UseDefaultFeatures *bool    `yaml:"use_default_features"`
	Permissions        string   `yaml:"permissions" validate:"omitempty,oneof=restricted standard elevated"`
	Stability          string   `yaml:"stability" validate:"omitempty,oneof=stable latest"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *PackageDTO) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		p.ID = value.Value
		return nil
	}
	type plain PackageDTO
	return value.Decode((*plain)(p))
}

// ProfilePackagesDTO are the packages of a profile. A plain list applies to
// every instance; a mapping splits them by side.
type ProfilePackagesDTO struct {
	Global []PackageDTO `yaml:"global" validate:"dive"`
	Client []PackageDTO `yaml:"client" validate:"dive"`
	Server []PackageDTO `yaml:"server" validate:"dive"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *ProfilePackagesDTO) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		return value.Decode(&p.Global)
	}
	type plain ProfilePackagesDTO
	return value.Decode((*plain)(p))
}

// InstanceDTO is an instance of a profile. It is written either as its side
// or as a mapping.
type InstanceDTO struct {
	Type     string       `yaml:"type" validate:"required,oneof=client server"`
	Worlds   []string     `yaml:"worlds"`
	Packages []PackageDTO `yaml:"packages" validate:"dive"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (i *InstanceDTO) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		i.Type = value.Value
		return nil
	}
	type plain InstanceDTO
	return value.Decode((*plain)(i))
}

// ProfileDTO is a group of instances sharing a game version.
type ProfileDTO struct {
	Version      string                 `yaml:"version" validate:"required"`
	Modloader    string                 `yaml:"modloader" validate:"omitempty,oneof=vanilla forge neoforged fabric quilt"`
	PluginLoader string                 `yaml:"plugin_loader" validate:"omitempty,oneof=vanilla paper folia sponge"`
	Stability    string                 `yaml:"stability" validate:"omitempty,oneof=stable latest"`
	Instances    map[string]InstanceDTO `yaml:"instances" validate:"dive"`
	Packages     ProfilePackagesDTO     `yaml:"packages"`
}
