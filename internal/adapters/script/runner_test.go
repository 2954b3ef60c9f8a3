package script_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mcvm/internal/adapters/script"
	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/mcvm/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const shaderScript = `
meta = {
    "name": "Shader Loader",
    "description": "Loads shaders",
}

properties = {
    "features": ["iris"],
    "supported_sides": ["client"],
}

def evaluate(input):
    print("evaluating for " + input.side)
    if input.side != "client":
        return {"notices": ["shaders only work on clients"]}

    relations = {"dependencies": ["fabric-api"]}
    if "iris" in input.features:
        relations["conflicts"] = "optifine"

    return {
        "relations": relations,
        "addons": [
            {
                "id": "loader",
                "kind": "mod",
                "url": "https://example.com/loader-%s.jar" % input.version,
                "version": input.version,
            },
        ],
    }
`

func testInput(side domain.Side, features ...string) *domain.EvalInput {
	return &domain.EvalInput{
		Constants: &domain.EvalConstants{
			Version:   "1.20.1",
			Modloader: domain.ModloaderFabric,
			OS:        domain.OSLinux,
		},
		Params: domain.EvalParameters{
			Side:        side,
			Features:    features,
			Permissions: domain.PermissionsStandard,
			Stability:   domain.StabilityStable,
		},
	}
}

func newRunner(t *testing.T) *script.Runner {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	return script.New(log)
}

func TestRunner_Run(t *testing.T) {
	runner := newRunner(t)
	id := domain.NewPackageID("shaders")

	res, err := runner.Run(t.Context(), id, []byte(shaderScript), testInput(domain.SideClient, "iris"))
	require.NoError(t, err)

	require.Len(t, res.Addons, 1)
	assert.Equal(t, domain.SelectedAddon{
		ID:      "loader",
		Kind:    domain.AddonKindMod,
		URL:     "https://example.com/loader-1.20.1.jar",
		Version: "1.20.1",
	}, res.Addons[0])
	assert.Equal(t, []domain.PackageID{domain.NewPackageID("fabric-api")}, []domain.PackageID(res.Relations.Dependencies))
	assert.True(t, res.Relations.ConflictsWith(domain.NewPackageID("optifine")))

	res, err = runner.Run(t.Context(), id, []byte(shaderScript), testInput(domain.SideServer))
	require.NoError(t, err)
	assert.Empty(t, res.Addons)
	assert.Equal(t, []string{"shaders only work on clients"}, res.Notices)
}

func TestRunner_PrintGoesToDebugLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug("shaders: evaluating for client").Times(1)

	_, err := script.New(log).Run(t.Context(), domain.NewPackageID("shaders"), []byte(shaderScript), testInput(domain.SideClient))
	require.NoError(t, err)
}

func TestRunner_Inspect(t *testing.T) {
	meta, props, err := newRunner(t).Inspect(t.Context(), domain.NewPackageID("shaders"), []byte(shaderScript))
	require.NoError(t, err)
	assert.Equal(t, "Shader Loader", meta.Name)
	assert.Equal(t, []string{"iris"}, props.Features)
	assert.Equal(t, []domain.Side{domain.SideClient}, props.SupportedSides)
}

func TestRunner_Errors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{name: "syntax error", source: "def evaluate(input)\n    return {}"},
		{name: "missing evaluate", source: "meta = {}"},
		{name: "evaluate not callable", source: "evaluate = 3"},
		{name: "runtime failure", source: "def evaluate(input):\n    fail('unsupported')"},
		{name: "wrong return type", source: "def evaluate(input):\n    return [1]"},
		{name: "addon without source", source: "def evaluate(input):\n    return {'addons': [{'id': 'a', 'kind': 'mod'}]}"},
		{name: "unknown addon kind", source: "def evaluate(input):\n    return {'addons': [{'id': 'a', 'kind': 'toy', 'url': 'https://x.example'}]}"},
		{name: "filename with path", source: "def evaluate(input):\n    return {'addons': [{'id': 'a', 'kind': 'mod', 'url': 'https://x.example', 'filename': '../../evil.jar'}]}"},
		{name: "invalid package id", source: "def evaluate(input):\n    return {'relations': {'dependencies': ['not valid']}}"},
		{name: "step budget", source: "def evaluate(input):\n    n = 0\n    for i in range(100000000):\n        n += i\n    return {}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := newRunner(t).WithMaxSteps(100_000)
			_, err := runner.Run(t.Context(), domain.NewPackageID("broken"), []byte(tt.source), testInput(domain.SideClient))
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrScriptEval.Error())
		})
	}
}

func TestRunner_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	source := "def evaluate(input):\n    for i in range(100000000):\n        pass\n    return {}"
	_, err := newRunner(t).Run(ctx, domain.NewPackageID("slow"), []byte(source), testInput(domain.SideClient))
	require.Error(t, err)
	assert.ErrorContains(t, err, "cancel")
}
