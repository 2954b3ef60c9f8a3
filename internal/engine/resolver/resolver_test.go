package resolver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/mcvm/internal/core/ports"
	"go.trai.ch/mcvm/internal/core/ports/mocks"
	"go.trai.ch/mcvm/internal/engine/resolver"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// catalog maps every existing package to the relations it evaluates to.
type catalog map[string]domain.Relations

func ids(s ...string) domain.ListOrSingle[domain.PackageID] {
	return domain.NewPackageIDs(s)
}

type harness struct {
	resolver *resolver.Resolver
	logger   *mocks.MockLogger
	inputs   map[string]*domain.EvalInput
	evals    map[string]int
}

func newHarness(t *testing.T, c catalog) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{
		logger: mocks.NewMockLogger(ctrl),
		inputs: make(map[string]*domain.EvalInput),
		evals:  make(map[string]int),
	}

	reg := mocks.NewMockPackageRegistry(ctrl)
	reg.EXPECT().Contains(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, id domain.PackageID) bool {
		_, ok := c[id.String()]
		return ok
	}).AnyTimes()

	ev := mocks.NewMockPackageEvaluator(ctrl)
	ev.EXPECT().Evaluate(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *domain.PackageRequest, in *domain.EvalInput) (*domain.EvalResult, error) {
			id := req.ID().String()
			h.inputs[id] = in
			h.evals[id]++
			if id == "broken" {
				return nil, zerr.With(domain.ErrConditionMismatch, "addon", "main")
			}
			return &domain.EvalResult{Relations: c[id]}, nil
		}).AnyTimes()

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().End().AnyTimes()
	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), "resolve instance").DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Span) {
			return ctx, span
		}).AnyTimes()

	h.resolver = resolver.New(reg, ev, h.logger, tracer)
	return h
}

func request(pkgs ...domain.PackageConfig) ports.ResolveRequest {
	profile := &domain.ProfileConfig{
		ID:        "main",
		Version:   "1.20.1",
		Instances: []domain.InstanceConfig{{ID: "client", Side: domain.SideClient, Worlds: []string{"world"}}},
	}
	return ports.ResolveRequest{
		Config:   &domain.Config{Packages: pkgs, Profiles: map[string]*domain.ProfileConfig{"main": profile}},
		Profile:  profile,
		Instance: &profile.Instances[0],
		Constants: &domain.EvalConstants{
			Version:          "1.20.1",
			DefaultStability: domain.StabilityLatest,
		},
	}
}

func user(names ...string) []domain.PackageConfig {
	out := make([]domain.PackageConfig, len(names))
	for i, n := range names {
		out[i] = domain.NewPackageConfig(domain.NewPackageID(n))
	}
	return out
}

func (h *harness) resolve(t *testing.T, pkgs ...domain.PackageConfig) (*domain.ResolvedSet, error) {
	t.Helper()
	return h.resolver.Resolve(t.Context(), request(pkgs...))
}

func TestResolve_DependencyFirstOrder(t *testing.T) {
	h := newHarness(t, catalog{
		"a": {Dependencies: ids("b", "c")},
		"b": {ExplicitDependencies: ids("d")},
		"c": {},
		"d": {},
	})

	set, err := h.resolve(t, user("a")...)
	require.NoError(t, err)
	assert.Equal(t, "client", set.Instance)
	assert.Equal(t, []string{"d", "b", "c", "a"}, set.Strings())

	d := set.Packages[0]
	assert.Equal(t, []domain.PackageID{
		domain.NewPackageID("a"), domain.NewPackageID("b"), domain.NewPackageID("d"),
	}, d.Request.Chain())
	assert.Equal(t, domain.SourceDependency, d.Request.Source().Kind)
}

func TestResolve_SharedDependencyResolvedOnce(t *testing.T) {
	h := newHarness(t, catalog{
		"a": {Dependencies: ids("c")},
		"b": {Dependencies: ids("c"), Bundled: ids("c")},
		"c": {},
	})

	set, err := h.resolve(t, user("a", "b")...)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, set.Strings())
	assert.Equal(t, map[string]int{"a": 1, "b": 1, "c": 1}, h.evals)
}

func TestResolve_EvaluationInputs(t *testing.T) {
	h := newHarness(t, catalog{
		"sodium":     {Dependencies: ids("fabric-api")},
		"fabric-api": {},
	})

	sodium := domain.NewPackageConfig(domain.NewPackageID("sodium"))
	sodium.Features = []string{"extras"}
	sodium.Stability = domain.StabilityStable

	_, err := h.resolve(t, sodium)
	require.NoError(t, err)

	in := h.inputs["sodium"]
	assert.Equal(t, []string{"extras"}, in.Params.Features)
	assert.Equal(t, domain.StabilityStable, in.Params.Stability)
	assert.Equal(t, domain.SideClient, in.Params.Side)
	assert.Equal(t, []string{"world"}, in.Params.Worlds)
	assert.Equal(t, "1.20.1", in.Constants.Version)

	dep := h.inputs["fabric-api"]
	assert.Empty(t, dep.Params.Features)
	assert.True(t, dep.Params.UseDefaultFeatures)
	assert.Equal(t, domain.StabilityLatest, dep.Params.Stability, "unconfigured packages use the profile default")
}

func TestResolve_Conflicts(t *testing.T) {
	tests := []struct {
		name string
		cat  catalog
		want domain.ConflictError
	}{
		{
			name: "new package conflicts with resolved one",
			cat:  catalog{"a": {}, "b": {Conflicts: ids("a")}},
			want: domain.ConflictError{Package: domain.NewPackageID("b"), With: domain.NewPackageID("a")},
		},
		{
			name: "resolved package conflicts with new one",
			cat:  catalog{"a": {Conflicts: ids("b")}, "b": {}},
			want: domain.ConflictError{Package: domain.NewPackageID("a"), With: domain.NewPackageID("b")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.cat)
			_, err := h.resolve(t, user("a", "b")...)
			require.Error(t, err)

			var conflict *domain.ConflictError
			require.ErrorAs(t, err, &conflict)
			assert.Equal(t, tt.want, *conflict)
			assert.ErrorIs(t, err, domain.ErrConflict)
		})
	}
}

func TestResolve_TransitiveConflict(t *testing.T) {
	h := newHarness(t, catalog{
		"a": {Dependencies: ids("b")},
		"b": {Conflicts: ids("c")},
		"c": {},
	})

	_, err := h.resolve(t, user("a", "c")...)
	require.Error(t, err)

	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.ConflictError{Package: domain.NewPackageID("b"), With: domain.NewPackageID("c")}, *conflict)
}

func TestResolve_Deterministic(t *testing.T) {
	cat := catalog{
		"a": {Dependencies: ids("b", "c")},
		"b": {Dependencies: ids("d"), Recommendations: ids("ghost")},
		"c": {Dependencies: ids("d"), Extensions: ids("b")},
		"d": {},
		"e": {ExplicitDependencies: ids("d")},
	}

	chains := func(set *domain.ResolvedSet) map[string][]domain.PackageID {
		out := make(map[string][]domain.PackageID, len(set.Packages))
		for _, p := range set.Packages {
			out[p.Request.ID().String()] = p.Request.Chain()
		}
		return out
	}

	h := newHarness(t, cat)
	first, err := h.resolve(t, user("e", "a")...)
	require.NoError(t, err)
	second, err := h.resolve(t, user("e", "a")...)
	require.NoError(t, err)
	fresh, err := newHarness(t, cat).resolve(t, user("e", "a")...)
	require.NoError(t, err)

	assert.Equal(t, first.Strings(), second.Strings())
	assert.Equal(t, first.Strings(), fresh.Strings())
	assert.Equal(t, chains(first), chains(second))
	assert.Equal(t, first.Notices, second.Notices)
	assert.ElementsMatch(t, []string{"a", "b", "c", "d", "e"}, first.Strings())
}

func TestResolve_MissingDependencyIsSkipped(t *testing.T) {
	h := newHarness(t, catalog{"a": {Dependencies: ids("ghost")}})
	h.logger.EXPECT().Warn("dependency 'ghost' of package 'a' was not found and was skipped").Times(1)

	set, err := h.resolve(t, user("a")...)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, set.Strings())
}

func TestResolve_MissingRequiredPackages(t *testing.T) {
	tests := []struct {
		name      string
		cat       catalog
		wantErr   error
		wantChain string
	}{
		{
			name:      "explicit dependency",
			cat:       catalog{"a": {ExplicitDependencies: ids("b")}, "b": {Dependencies: ids("c"), ExplicitDependencies: ids("c")}},
			wantErr:   domain.ErrMissingDependency,
			wantChain: "a -> b -> c",
		},
		{
			name:      "bundled package",
			cat:       catalog{"a": {Bundled: ids("ghost")}},
			wantErr:   domain.ErrMissingDependency,
			wantChain: "a -> ghost",
		},
		{
			name:      "user request",
			cat:       catalog{},
			wantErr:   domain.ErrPackageNotFound,
			wantChain: "a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, tt.cat)
			_, err := h.resolve(t, user("a")...)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, tt.wantChain, zErr.Metadata()["chain"])
			assert.Equal(t, "client", zErr.Metadata()["instance"])
		})
	}
}

func TestResolve_EvaluationFailureCarriesChain(t *testing.T) {
	h := newHarness(t, catalog{"a": {Dependencies: ids("broken")}, "broken": {}})

	_, err := h.resolve(t, user("a")...)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrConditionMismatch.Error())

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "a -> broken", zErr.Metadata()["chain"])
}

func TestResolve_CycleIsRejected(t *testing.T) {
	h := newHarness(t, catalog{
		"a": {ExplicitDependencies: ids("b")},
		"b": {Dependencies: ids("a")},
	})

	_, err := h.resolve(t, user("a")...)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCycleDetected.Error())
}

func TestResolve_Extensions(t *testing.T) {
	h := newHarness(t, catalog{
		"addon":  {Extensions: ids("sodium")},
		"sodium": {},
	})

	set, err := h.resolve(t, user("addon")...)
	require.NoError(t, err)
	assert.Equal(t, []string{"addon"}, set.Strings(), "extensions never pull packages in")
	assert.Equal(t, []domain.Notice{{
		Package: domain.NewPackageID("addon"),
		Message: "package 'addon' extends 'sodium', which is not installed",
	}}, set.Notices)

	set, err = h.resolve(t, user("addon", "sodium")...)
	require.NoError(t, err)
	assert.Equal(t, []string{"sodium", "addon"}, set.Strings(), "an extension is ordered after the package it extends")
	assert.Empty(t, set.Notices)
}

func TestResolve_CompatsAndRecommendations(t *testing.T) {
	h := newHarness(t, catalog{
		"a": {
			Compats:         []domain.CompatPair{{domain.NewPackageID("b"), domain.NewPackageID("a")}},
			Recommendations: ids("spark", "b"),
		},
		"b": {},
	})

	set, err := h.resolve(t, user("a", "b")...)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, set.Strings())
	assert.Equal(t, []domain.Notice{{
		Package: domain.NewPackageID("a"),
		Message: "package 'a' recommends 'spark'",
	}}, set.Notices)
}

func TestResolve_Canceled(t *testing.T) {
	h := newHarness(t, catalog{"a": {}})
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := h.resolver.Resolve(ctx, request(user("a")...))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
