package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/mcvm/internal/core/ports/mocks"
	"go.trai.ch/mcvm/internal/engine/eval"
	"go.uber.org/mock/gomock"
)

const sodiumPackage = `{
	"properties": {
		"features": ["extras", "legacy"],
		"default_features": ["extras"]
	},
	"relations": {"conflicts": "optifine"},
	"addons": {
		"sodium": {
			"kind": "mod",
			"versions": [
				{
					"minecraft_versions": "1.20+",
					"modloaders": "fabriclike",
					"url": "https://example.com/sodium-0.5.jar",
					"version": "0.5",
					"relations": {"dependencies": "fabric-api"}
				},
				{
					"minecraft_versions": ["1.19", "1.19.4"],
					"url": "https://example.com/sodium-0.4.jar",
					"version": "0.4"
				}
			]
		},
		"extra": {
			"kind": "resource_pack",
			"conditions": [{"features": "extras"}],
			"versions": [{"url": "https://example.com/extra.zip"}]
		},
		"legacy": {
			"kind": "mod",
			"conditions": [{"features": "legacy"}],
			"versions": [{"minecraft_versions": "1.12-", "url": "https://example.com/legacy.jar"}]
		},
		"placeholder": {"kind": "mod", "versions": []}
	},
	"conditional_rules": [
		{
			"conditions": [{"side": "server"}],
			"properties": {"relations": {"recommendations": "spark"}, "notices": ["server side rendering is a no-op"]}
		}
	]
}`

func input(side domain.Side, version string, features ...string) *domain.EvalInput {
	return &domain.EvalInput{
		Constants: &domain.EvalConstants{
			Version:   version,
			Modloader: domain.ModloaderQuilt,
			OS:        domain.OSLinux,
		},
		Params: domain.EvalParameters{
			Side:               side,
			Features:           features,
			UseDefaultFeatures: true,
			Permissions:        domain.PermissionsStandard,
			Stability:          domain.StabilityStable,
		},
	}
}

func addonIDs(res *domain.EvalResult) []string {
	ids := make([]string, len(res.Addons))
	for i, a := range res.Addons {
		ids[i] = a.ID
	}
	return ids
}

func setupDeclarative(t *testing.T, data string) (*mocks.MockPackageRegistry, *eval.Evaluator, *domain.PackageRequest) {
	t.Helper()
	ctrl := gomock.NewController(t)
	reg := mocks.NewMockPackageRegistry(ctrl)
	pkg, err := domain.ParseDeclarativePackage([]byte(data))
	require.NoError(t, err)

	req := domain.UserRequest(domain.NewPackageID("sodium"))
	reg.EXPECT().ContentType(gomock.Any(), req).Return(domain.ContentTypeDeclarative, nil).AnyTimes()
	reg.EXPECT().Parse(gomock.Any(), req).Return(pkg, nil).AnyTimes()
	return reg, eval.New(reg, mocks.NewMockScriptRunner(ctrl)), req
}

func TestEvaluate_SelectsFirstMatchingVersion(t *testing.T) {
	_, ev, req := setupDeclarative(t, sodiumPackage)

	res, err := ev.Evaluate(t.Context(), req, input(domain.SideClient, "1.20.1"))
	require.NoError(t, err)

	assert.Equal(t, []string{"extra", "sodium"}, addonIDs(res), "default features enable the extra addon")
	assert.Equal(t, "0.5", res.Addons[1].Version)
	assert.Equal(t, []domain.PackageID{domain.NewPackageID("fabric-api")}, []domain.PackageID(res.Relations.Dependencies),
		"relations of the selected version are merged")
	assert.True(t, res.Relations.ConflictsWith(domain.NewPackageID("optifine")))
	assert.Empty(t, res.Notices)

	res, err = ev.Evaluate(t.Context(), req, input(domain.SideClient, "1.19.4"))
	require.NoError(t, err)
	assert.Equal(t, "0.4", res.Addons[1].Version)
	assert.Empty(t, res.Relations.Dependencies)
}

func TestEvaluate_ConditionalRules(t *testing.T) {
	_, ev, req := setupDeclarative(t, sodiumPackage)

	res, err := ev.Evaluate(t.Context(), req, input(domain.SideServer, "1.20.1"))
	require.NoError(t, err)
	assert.Equal(t, []string{"server side rendering is a no-op"}, res.Notices)
	assert.Equal(t, []domain.PackageID{domain.NewPackageID("spark")}, []domain.PackageID(res.Relations.Recommendations))
	assert.True(t, res.Relations.ConflictsWith(domain.NewPackageID("optifine")), "rules never remove base relations")
}

func TestEvaluate_DefaultFeaturesDisabled(t *testing.T) {
	_, ev, req := setupDeclarative(t, sodiumPackage)
	in := input(domain.SideClient, "1.20.1")
	in.Params.UseDefaultFeatures = false

	res, err := ev.Evaluate(t.Context(), req, in)
	require.NoError(t, err)
	assert.Equal(t, []string{"sodium"}, addonIDs(res))
	assert.Nil(t, in.Params.Features, "the caller's input is not modified")
}

func TestEvaluate_ConditionalAddonWithoutVersionIsSkipped(t *testing.T) {
	_, ev, req := setupDeclarative(t, sodiumPackage)

	res, err := ev.Evaluate(t.Context(), req, input(domain.SideClient, "1.20.1", "legacy"))
	require.NoError(t, err)
	assert.Equal(t, []string{"extra", "sodium"}, addonIDs(res))
	assert.Equal(t, []string{"addon 'legacy' has no version for this instance and was skipped"}, res.Notices)
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		input   *domain.EvalInput
		wantErr error
	}{
		{
			name:    "required addon without matching version",
			data:    sodiumPackage,
			input:   input(domain.SideClient, "1.16.5"),
			wantErr: domain.ErrConditionMismatch,
		},
		{
			name:    "undeclared feature",
			data:    sodiumPackage,
			input:   input(domain.SideClient, "1.20.1", "turbo"),
			wantErr: domain.ErrFeatureNotFound,
		},
		{
			name:    "local path without elevated permissions",
			data:    `{"addons": {"local": {"kind": "mod", "versions": [{"path": "/srv/local.jar"}]}}}`,
			input:   input(domain.SideClient, "1.20.1"),
			wantErr: domain.ErrInsufficientPermissions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ev, req := setupDeclarative(t, tt.data)
			_, err := ev.Evaluate(t.Context(), req, tt.input)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestEvaluate_ElevatedPermissionsAllowPath(t *testing.T) {
	_, ev, req := setupDeclarative(t, `{"addons": {"local": {"kind": "mod", "versions": [{"path": "/srv/local.jar"}]}}}`)
	in := input(domain.SideClient, "1.20.1")
	in.Params.Permissions = domain.PermissionsElevated

	res, err := ev.Evaluate(t.Context(), req, in)
	require.NoError(t, err)
	require.Len(t, res.Addons, 1)
	assert.Equal(t, "/srv/local.jar", res.Addons[0].Path)
}

func TestEvaluate_Script(t *testing.T) {
	ctrl := gomock.NewController(t)
	reg := mocks.NewMockPackageRegistry(ctrl)
	runner := mocks.NewMockScriptRunner(ctrl)

	id := domain.NewPackageID("shaders")
	req := domain.UserRequest(id)
	source := []byte("def evaluate(input):\n    return {}\n")
	want := &domain.EvalResult{Addons: []domain.SelectedAddon{{ID: "loader", Kind: domain.AddonKindMod, URL: "https://x.example"}}}

	reg.EXPECT().ContentType(gomock.Any(), req).Return(domain.ContentTypeScript, nil)
	reg.EXPECT().Properties(gomock.Any(), req).Return(&domain.PackageProperties{
		Features:        []string{"iris"},
		DefaultFeatures: []string{"iris"},
	}, nil)
	reg.EXPECT().Load(gomock.Any(), req, false).Return(source, nil)
	runner.EXPECT().Run(gomock.Any(), id, source, gomock.Cond(func(x any) bool {
		in, ok := x.(*domain.EvalInput)
		return ok && in.HasFeature("iris")
	})).Return(want, nil)

	res, err := eval.New(reg, runner).Evaluate(t.Context(), req, input(domain.SideClient, "1.20.1"))
	require.NoError(t, err)
	assert.Same(t, want, res)
}

func TestEvaluate_ScriptPathNeedsPermissions(t *testing.T) {
	ctrl := gomock.NewController(t)
	reg := mocks.NewMockPackageRegistry(ctrl)
	runner := mocks.NewMockScriptRunner(ctrl)
	req := domain.UserRequest(domain.NewPackageID("shaders"))

	reg.EXPECT().ContentType(gomock.Any(), req).Return(domain.ContentTypeScript, nil)
	reg.EXPECT().Properties(gomock.Any(), req).Return(&domain.PackageProperties{}, nil)
	reg.EXPECT().Load(gomock.Any(), req, false).Return([]byte("x"), nil)
	runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.EvalResult{
		Addons: []domain.SelectedAddon{{ID: "local", Kind: domain.AddonKindMod, Path: "/srv/a.jar"}},
	}, nil)

	_, err := eval.New(reg, runner).Evaluate(t.Context(), req, input(domain.SideClient, "1.20.1"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInsufficientPermissions.Error())
}
