package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mcvm/internal/core/domain"
)

func pkgConfig(id string, features ...string) domain.PackageConfig {
	cfg := domain.NewPackageConfig(domain.NewPackageID(id))
	cfg.Features = features
	return cfg
}

func testConfig() *domain.Config {
	return &domain.Config{
		Packages: []domain.PackageConfig{pkgConfig("fabric-api"), pkgConfig("sodium")},
		Profiles: map[string]*domain.ProfileConfig{
			"main": {
				ID:        "main",
				Version:   "1.20.1",
				Modloader: domain.ModloaderFabric,
				Packages: domain.ProfilePackages{
					Global: []domain.PackageConfig{pkgConfig("lithium")},
					Client: []domain.PackageConfig{pkgConfig("sodium", "extras")},
					Server: []domain.PackageConfig{pkgConfig("spark")},
				},
				Instances: []domain.InstanceConfig{
					{ID: "client", Side: domain.SideClient},
					{ID: "server", Side: domain.SideServer, Packages: []domain.PackageConfig{pkgConfig("chunky")}},
				},
			},
		},
	}
}

func configIDs(pkgs []domain.PackageConfig) []string {
	out := make([]string, len(pkgs))
	for i, p := range pkgs {
		out[i] = p.ID.String()
	}
	return out
}

func TestConfig_PackagesFor(t *testing.T) {
	cfg := testConfig()
	profile, err := cfg.Profile("main")
	require.NoError(t, err)

	client, err := profile.Instance("client")
	require.NoError(t, err)
	pkgs := cfg.PackagesFor(profile, client)
	assert.Equal(t, []string{"fabric-api", "sodium", "lithium"}, configIDs(pkgs))
	assert.Equal(t, []string{"extras"}, pkgs[1].Features, "side layer replaces the global entry in place")

	server, err := profile.Instance("server")
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"fabric-api", "sodium", "lithium", "spark", "chunky"},
		configIDs(cfg.PackagesFor(profile, server)),
	)
}

func TestConfig_Lookups(t *testing.T) {
	cfg := testConfig()

	_, err := cfg.Profile("missing")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownProfile.Error())

	profile, _ := cfg.Profile("main")
	_, err = profile.Instance("missing")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownInstance.Error())

	assert.Equal(t, []string{"main"}, cfg.ProfileIDs())

	all := cfg.AllPackageIDs()
	got := make([]string, len(all))
	for i, id := range all {
		got[i] = id.String()
	}
	assert.Equal(t, []string{"chunky", "fabric-api", "lithium", "sodium", "spark"}, got)
	assert.Len(t, cfg.ProfilePackageIDs(profile), 5)
}

func TestConfig_LocalPackages(t *testing.T) {
	cfg := testConfig()
	local := pkgConfig("my-pack")
	local.Type = domain.PackageTypeLocal
	local.Path = "/srv/packages/my-pack.json"
	cfg.Profiles["main"].Instances[0].Packages = []domain.PackageConfig{local}
	cfg.Packages = append(cfg.Packages, local)

	locals := cfg.LocalPackages()
	require.Len(t, locals, 1)
	assert.Equal(t, "/srv/packages/my-pack.json", locals[0].Path)
}

func TestPackageConfig_Parameters(t *testing.T) {
	cfg := pkgConfig("sodium", "extras")
	params := cfg.Parameters(domain.SideClient, []string{"world"}, domain.StabilityLatest)

	assert.Equal(t, domain.SideClient, params.Side)
	assert.Equal(t, domain.StabilityLatest, params.Stability)
	assert.Equal(t, domain.PermissionsStandard, params.Permissions)
	assert.True(t, params.UseDefaultFeatures)
	assert.Equal(t, []string{"world"}, params.Worlds)

	cfg.Stability = domain.StabilityStable
	assert.Equal(t, domain.StabilityStable, cfg.Parameters(domain.SideClient, nil, domain.StabilityLatest).Stability)
}

func TestPermissions_Allows(t *testing.T) {
	assert.True(t, domain.PermissionsElevated.Allows(domain.PermissionsElevated))
	assert.True(t, domain.PermissionsStandard.Allows(domain.PermissionsRestricted))
	assert.False(t, domain.PermissionsStandard.Allows(domain.PermissionsElevated))
	assert.False(t, domain.PermissionsRestricted.Allows(domain.PermissionsStandard))
}
