package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mcvm/internal/core/domain"
)

const sodiumPackage = `{
	"meta": {
		"name": "Sodium",
		"description": "Rendering engine replacement",
		"package_maintainers": ["carbon"]
	},
	"properties": {
		"features": ["extras"],
		"default_features": ["extras"],
		"supported_sides": ["client"]
	},
	"relations": {
		"conflicts": "optifine"
	},
	"addons": {
		"sodium": {
			"kind": "mod",
			"versions": [
				{
					"minecraft_versions": "1.20+",
					"modloaders": ["fabriclike"],
					"url": "https://example.com/sodium-0.5.jar",
					"version": "0.5"
				},
				{
					"minecraft_versions": ["1.19", "1.19.4"],
					"url": "https://example.com/sodium-0.4.jar",
					"version": "0.4",
					"relations": {"dependencies": ["indium"]}
				}
			]
		},
		"extra": {
			"kind": "resource_pack",
			"conditions": [{"features": "extras"}],
			"versions": [{"url": "https://example.com/extra.zip"}]
		}
	},
	"conditional_rules": [
		{
			"conditions": [{"side": "client"}],
			"properties": {"notices": ["restart the game"]}
		}
	]
}`

func TestParseDeclarativePackage(t *testing.T) {
	pkg, err := domain.ParseDeclarativePackage([]byte(sodiumPackage))
	require.NoError(t, err)

	assert.Equal(t, "Sodium", pkg.Meta.Name)
	assert.Equal(t, []string{"carbon"}, pkg.Meta.Maintainers)
	assert.Equal(t, []string{"extra", "sodium"}, pkg.AddonNames())
	assert.True(t, pkg.Relations.ConflictsWith(domain.NewPackageID("optifine")))

	sodium := pkg.Addons["sodium"]
	assert.Equal(t, domain.AddonKindMod, sodium.Kind)
	require.Len(t, sodium.Versions, 2)
	assert.Equal(t, []domain.VersionPattern{"1.20+"}, []domain.VersionPattern(sodium.Versions[0].MinecraftVersions))
	assert.Equal(t, []string{"indium"}, idStrings(sodium.Versions[1].Relations.Dependencies))

	extra := pkg.Addons["extra"]
	require.Len(t, extra.Conditions, 1)
	assert.Equal(t, []string{"extras"}, []string(extra.Conditions[0].Features))

	require.Len(t, pkg.ConditionalRules, 1)
	assert.Equal(t, []string{"restart the game"}, pkg.ConditionalRules[0].Properties.Notices)
}

func TestParseDeclarativePackage_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "malformed json", data: `{"addons": `},
		{name: "invalid package id", data: `{"relations": {"dependencies": "not valid"}}`},
		{
			name: "invalid version pattern",
			data: `{"addons": {"a": {"kind": "mod", "versions": [{"minecraft_versions": "..1.19", "url": "https://x"}]}}}`,
		},
		{
			name: "invalid pattern in addon conditions",
			data: `{"addons": {"a": {"kind": "mod", "conditions": [{"minecraft_versions": "1.16.."}], "versions": [{"url": "https://x"}]}}}`,
		},
		{
			name: "invalid pattern in conditional rule",
			data: `{"conditional_rules": [{"conditions": [{"minecraft_versions": "+"}], "properties": {}}]}`,
		},
		{
			name: "invalid supported version",
			data: `{"properties": {"supported_versions": [""]}}`,
		},
		{
			name: "filename leaving the addon directory",
			data: `{"addons": {"jar": {"kind": "mod", "versions": [{"url": "https://x.example/a.jar", "filename": "../../../../../home/user/.bashrc"}]}}}`,
		},
		{
			name: "filename with a directory",
			data: `{"addons": {"jar": {"kind": "mod", "versions": [{"url": "https://x.example/a.jar", "filename": "sub/a.jar"}]}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseDeclarativePackage([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrPackageParse.Error())
		})
	}
}

func TestSniffContentType(t *testing.T) {
	assert.Equal(t, domain.ContentTypeDeclarative, domain.SniffContentType([]byte("  \n{\"meta\": {}}")))
	assert.Equal(t, domain.ContentTypeScript, domain.SniffContentType([]byte("def evaluate(input):\n    return {}")))
}

func TestAddonKind_Extension(t *testing.T) {
	assert.Equal(t, "jar", domain.AddonKindMod.Extension())
	assert.Equal(t, "jar", domain.AddonKindPlugin.Extension())
	assert.Equal(t, "zip", domain.AddonKindDatapack.Extension())
	assert.Equal(t, "zip", domain.AddonKindShader.Extension())
}
