// Package eval turns packages into side-effect free install plans.
package eval

import (
	"context"
	"fmt"
	"slices"

	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/mcvm/internal/core/ports"
	"go.trai.ch/zerr"
)

// Evaluator evaluates declarative packages directly and hands scripted
// packages to a ScriptRunner.
type Evaluator struct {
	registry ports.PackageRegistry
	runner   ports.ScriptRunner
}

// New creates an Evaluator.
func New(registry ports.PackageRegistry, runner ports.ScriptRunner) *Evaluator {
	return &Evaluator{registry: registry, runner: runner}
}

// Evaluate computes the install plan of the requested package for input.
func (e *Evaluator) Evaluate(
	ctx context.Context,
	req *domain.PackageRequest,
	input *domain.EvalInput,
) (*domain.EvalResult, error) {
	ct, err := e.registry.ContentType(ctx, req)
	if err != nil {
		return nil, err
	}

	if ct == domain.ContentTypeScript {
		return e.evaluateScript(ctx, req, input)
	}

	pkg, err := e.registry.Parse(ctx, req)
	if err != nil {
		return nil, err
	}
	in, err := withFeatures(req.ID(), &pkg.Properties, input)
	if err != nil {
		return nil, err
	}
	return EvaluateDeclarative(req.ID(), pkg, in)
}

func (e *Evaluator) evaluateScript(
	ctx context.Context,
	req *domain.PackageRequest,
	input *domain.EvalInput,
) (*domain.EvalResult, error) {
	props, err := e.registry.Properties(ctx, req)
	if err != nil {
		return nil, err
	}
	in, err := withFeatures(req.ID(), props, input)
	if err != nil {
		return nil, err
	}
	contents, err := e.registry.Load(ctx, req, false)
	if err != nil {
		return nil, err
	}
	res, err := e.runner.Run(ctx, req.ID(), contents, in)
	if err != nil {
		return nil, err
	}
	for i := range res.Addons {
		if err := checkPermissions(req.ID(), res.Addons[i].ID, res.Addons[i].Path, in); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// withFeatures validates the requested features against the declared ones and
// returns an input whose feature list also holds the default features.
func withFeatures(id domain.PackageID, props *domain.PackageProperties, input *domain.EvalInput) (*domain.EvalInput, error) {
	for _, f := range input.Params.Features {
		if !slices.Contains(props.Features, f) {
			err := zerr.With(domain.ErrFeatureNotFound, "package", id.String())
			return nil, zerr.With(err, "feature", f)
		}
	}

	out := *input
	out.Params.Features = slices.Clone(input.Params.Features)
	if input.Params.UseDefaultFeatures {
		for _, f := range props.DefaultFeatures {
			if !slices.Contains(out.Params.Features, f) {
				out.Params.Features = append(out.Params.Features, f)
			}
		}
	}
	return &out, nil
}

func checkPermissions(id domain.PackageID, addon, path string, in *domain.EvalInput) error {
	if path == "" || in.Params.Permissions.Allows(domain.PermissionsElevated) {
		return nil
	}
	err := zerr.With(domain.ErrInsufficientPermissions, "package", id.String())
	return zerr.With(err, "addon", addon)
}

// EvaluateDeclarative evaluates pkg against in. Features in in must already
// include the package defaults.
func EvaluateDeclarative(id domain.PackageID, pkg *domain.DeclarativePackage, in *domain.EvalInput) (*domain.EvalResult, error) {
	res := &domain.EvalResult{Relations: pkg.Relations}

	for i := range pkg.ConditionalRules {
		rule := &pkg.ConditionalRules[i]
		if !rule.Matches(in) {
			continue
		}
		res.Relations = res.Relations.Merge(rule.Properties.Relations)
		res.Notices = append(res.Notices, rule.Properties.Notices...)
	}

	for _, name := range pkg.AddonNames() {
		addon := pkg.Addons[name]
		if !addonApplies(&addon, in) {
			continue
		}

		version := selectVersion(&addon, in)
		if version == nil {
			switch {
			case len(addon.Conditions) > 0:
				res.Notices = append(res.Notices, fmt.Sprintf("addon '%s' has no version for this instance and was skipped", name))
				continue
			case len(addon.Versions) == 0:
				continue
			default:
				err := zerr.With(domain.ErrConditionMismatch, "package", id.String())
				return nil, zerr.With(err, "addon", name)
			}
		}

		if err := checkPermissions(id, name, version.Path, in); err != nil {
			return nil, err
		}

		res.Relations = res.Relations.Merge(version.Relations)
		res.Addons = append(res.Addons, domain.SelectedAddon{
			ID:       name,
			Kind:     addon.Kind,
			FileName: version.Filename,
			URL:      version.URL,
			Path:     version.Path,
			Version:  version.Version,
			Hashes:   version.Hashes,
		})
	}

	return res, nil
}

// addonApplies reports whether every addon level condition set matches.
func addonApplies(addon *domain.Addon, in *domain.EvalInput) bool {
	for i := range addon.Conditions {
		if !addon.Conditions[i].Matches(in) {
			return false
		}
	}
	return true
}

// selectVersion picks the first matching version in declared order.
func selectVersion(addon *domain.Addon, in *domain.EvalInput) *domain.AddonVersion {
	for i := range addon.Versions {
		if addon.Versions[i].Matches(in) {
			return &addon.Versions[i]
		}
	}
	return nil
}
