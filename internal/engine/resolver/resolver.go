// Package resolver computes the closure of packages required by an instance.
package resolver

import (
	"context"
	"fmt"

	"go.trai.ch/mcvm/internal/core/domain"
	"go.trai.ch/mcvm/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver expands the configured packages of an instance into a resolved set.
type Resolver struct {
	registry  ports.PackageRegistry
	evaluator ports.PackageEvaluator
	logger    ports.Logger
	tracer    ports.Tracer
}

// New creates a Resolver.
func New(
	registry ports.PackageRegistry,
	evaluator ports.PackageEvaluator,
	logger ports.Logger,
	tracer ports.Tracer,
) *Resolver {
	return &Resolver{
		registry:  registry,
		evaluator: evaluator,
		logger:    logger,
		tracer:    tracer,
	}
}

// state is the per instance resolution state.
// pending maps queued ids to whether the package may be skipped when missing,
// order holds resolved ids in discovery order and extensions maps an extended
// package to the first package extending it.
type state struct {
	rr         ports.ResolveRequest
	configs    map[domain.PackageID]domain.PackageConfig
	queue      []*domain.PackageRequest
	pending    map[domain.PackageID]bool
	resolved   map[domain.PackageID]*domain.ResolvedPackage
	order      []domain.PackageID
	graph      *domain.PackageGraph
	extensions map[domain.PackageID]domain.PackageID
	extOrder   []domain.PackageID
	notices    []domain.Notice
}

// Resolve expands the instance's packages breadth first. Any conflict,
// missing required package or dependency cycle fails the whole instance.
func (r *Resolver) Resolve(ctx context.Context, rr ports.ResolveRequest) (*domain.ResolvedSet, error) {
	ctx, span := r.tracer.Start(ctx, "resolve instance")
	defer span.End()
	span.SetAttribute("instance", rr.Instance.ID)

	set, err := r.resolve(ctx, rr)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(err, "instance", rr.Instance.ID)
	}
	span.SetAttribute("packages", len(set.Packages))
	return set, nil
}

func (r *Resolver) resolve(ctx context.Context, rr ports.ResolveRequest) (*domain.ResolvedSet, error) {
	s := &state{
		rr:         rr,
		configs:    make(map[domain.PackageID]domain.PackageConfig),
		pending:    make(map[domain.PackageID]bool),
		resolved:   make(map[domain.PackageID]*domain.ResolvedPackage),
		graph:      domain.NewPackageGraph(),
		extensions: make(map[domain.PackageID]domain.PackageID),
	}
	for _, cfg := range rr.Config.PackagesFor(rr.Profile, rr.Instance) {
		s.configs[cfg.ID] = cfg
		s.push(domain.UserRequest(cfg.ID), false)
	}

	for len(s.queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		req := s.queue[0]
		s.queue = s.queue[1:]
		optional := s.pending[req.ID()]
		delete(s.pending, req.ID())
		if err := r.step(ctx, s, req, optional); err != nil {
			return nil, err
		}
	}

	s.finish()

	if err := s.graph.Sort(); err != nil {
		return nil, err
	}

	set := &domain.ResolvedSet{Instance: rr.Instance.ID, Notices: s.notices}
	for id := range s.graph.Walk() {
		set.Packages = append(set.Packages, *s.resolved[id])
	}
	return set, nil
}

// step resolves one request and queues what it requires.
func (r *Resolver) step(ctx context.Context, s *state, req *domain.PackageRequest, optional bool) error {
	id := req.ID()
	if _, ok := s.resolved[id]; ok {
		return nil
	}

	if !r.registry.Contains(ctx, id) {
		return r.missing(req, optional)
	}

	cfg, ok := s.configs[id]
	if !ok {
		cfg = domain.NewPackageConfig(id)
	}
	input := &domain.EvalInput{
		Constants: s.rr.Constants,
		Params:    cfg.Parameters(s.rr.Instance.Side, s.rr.Instance.Worlds, s.rr.Constants.DefaultStability),
	}

	res, err := r.evaluator.Evaluate(ctx, req, input)
	if err != nil {
		err = zerr.With(err, "package", id.String())
		return zerr.With(err, "chain", domain.FormatChain(req.Chain()))
	}

	if err := checkConflicts(s, id, res); err != nil {
		return err
	}

	s.resolved[id] = &domain.ResolvedPackage{Request: req, Config: cfg, Result: res}
	s.order = append(s.order, id)
	s.graph.AddNode(id)

	rel := &res.Relations
	s.enqueue(req, rel.Dependencies, domain.SourceDependency, true)
	s.enqueue(req, rel.ExplicitDependencies, domain.SourceDependency, false)
	s.enqueue(req, rel.Bundled, domain.SourceBundled, false)

	for _, ext := range rel.Extensions {
		if _, ok := s.extensions[ext]; !ok {
			s.extensions[ext] = id
			s.extOrder = append(s.extOrder, ext)
		}
	}
	return nil
}

func (s *state) enqueue(parent *domain.PackageRequest, ids []domain.PackageID, kind domain.SourceKind, optional bool) {
	for _, child := range ids {
		s.graph.AddEdge(parent.ID(), child)
		if _, ok := s.resolved[child]; ok {
			continue
		}
		s.push(parent.Child(child, kind), optional)
	}
}

// push queues req once. A package stays optional only while every
// request for it is optional.
func (s *state) push(req *domain.PackageRequest, optional bool) {
	if queuedOptional, ok := s.pending[req.ID()]; ok {
		s.pending[req.ID()] = queuedOptional && optional
		return
	}
	s.pending[req.ID()] = optional
	s.queue = append(s.queue, req)
}

// missing handles a request for a package no repository provides.
func (r *Resolver) missing(req *domain.PackageRequest, optional bool) error {
	chain := domain.FormatChain(req.Chain())
	if optional {
		parent := req.Source().Parent
		r.logger.Warn(fmt.Sprintf("dependency '%s' of package '%s' was not found and was skipped", req.ID(), parent.ID()))
		return nil
	}

	sentinel := domain.ErrPackageNotFound
	if req.Source().Kind != domain.SourceUserRequire {
		sentinel = domain.ErrMissingDependency
	}
	err := zerr.With(sentinel, "package", req.ID().String())
	return zerr.With(err, "chain", chain)
}

// checkConflicts tests the new package against every resolved package in both directions.
func checkConflicts(s *state, id domain.PackageID, res *domain.EvalResult) error {
	for _, other := range s.order {
		rp := s.resolved[other]
		if res.Relations.ConflictsWith(other) {
			return &domain.ConflictError{Package: id, With: other}
		}
		if rp.Result.Relations.ConflictsWith(id) {
			return &domain.ConflictError{Package: other, With: id}
		}
	}
	return nil
}

// finish adds ordering hints and notices once the closure is complete.
func (s *state) finish() {
	for _, ext := range s.extOrder {
		extender := s.extensions[ext]
		if s.graph.Has(ext) {
			s.graph.AddSoftEdge(extender, ext)
			continue
		}
		s.notices = append(s.notices, domain.Notice{
			Package: extender,
			Message: fmt.Sprintf("package '%s' extends '%s', which is not installed", extender, ext),
		})
	}

	for _, id := range s.order {
		rel := s.resolved[id].Result.Relations
		for _, pair := range rel.Compats {
			if s.graph.Has(pair[0]) && s.graph.Has(pair[1]) {
				s.graph.AddSoftEdge(pair[1], pair[0])
			}
		}
		for _, rec := range rel.Recommendations {
			if !s.graph.Has(rec) {
				s.notices = append(s.notices, domain.Notice{
					Package: id,
					Message: fmt.Sprintf("package '%s' recommends '%s'", id, rec),
				})
			}
		}
	}
}
