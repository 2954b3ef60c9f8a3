package ports

import (
	"context"

	"go.trai.ch/mcvm/internal/core/domain"
)

// PackageEvaluator turns a package and an evaluation input into an install plan.
//
//go:generate mockgen -source=evaluator.go -destination=mocks/mock_evaluator.go -package=mocks
type PackageEvaluator interface {
	Evaluate(ctx context.Context, req *domain.PackageRequest, input *domain.EvalInput) (*domain.EvalResult, error)
}

// ScriptRunner evaluates scripted packages.
type ScriptRunner interface {
	// Run executes the script's evaluate function against input.
	Run(ctx context.Context, id domain.PackageID, source []byte, input *domain.EvalInput) (*domain.EvalResult, error)
	// Inspect returns the static meta and properties declared by the script.
	Inspect(ctx context.Context, id domain.PackageID, source []byte) (*domain.PackageMetadata, *domain.PackageProperties, error)
}

// InstanceResolver computes the resolved package set of one instance.
type InstanceResolver interface {
	Resolve(ctx context.Context, req ResolveRequest) (*domain.ResolvedSet, error)
}

// ResolveRequest is the input of one instance resolution.
type ResolveRequest struct {
	Config    *domain.Config
	Profile   *domain.ProfileConfig
	Instance  *domain.InstanceConfig
	Constants *domain.EvalConstants
}
