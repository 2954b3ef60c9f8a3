package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// PackageGraph orders the packages of one instance so that every package
// comes after the packages it depends on.
// Hard edges must be acyclic. Soft edges only reorder and are dropped where
// they would close a cycle.
type PackageGraph struct {
	nodes map[PackageID]*graphNode
	order []PackageID
	// sorted is populated by Sort.
	sorted []PackageID
}

type graphNode struct {
	hard []PackageID
	soft []PackageID
}

// NewPackageGraph creates an empty graph.
func NewPackageGraph() *PackageGraph {
	return &PackageGraph{nodes: make(map[PackageID]*graphNode)}
}

// AddNode adds id in discovery order. Adding an existing node is a no-op.
func (g *PackageGraph) AddNode(id PackageID) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = &graphNode{}
	g.order = append(g.order, id)
}

// Has reports whether id is in the graph.
func (g *PackageGraph) Has(id PackageID) bool {
	_, ok := g.nodes[id]
	return ok
}

// AddEdge records that from must come after to.
func (g *PackageGraph) AddEdge(from, to PackageID) {
	g.AddNode(from)
	n := g.nodes[from]
	if !slices.Contains(n.hard, to) {
		n.hard = append(n.hard, to)
	}
}

// AddSoftEdge records that from should come after to when possible.
func (g *PackageGraph) AddSoftEdge(from, to PackageID) {
	g.AddNode(from)
	n := g.nodes[from]
	if !slices.Contains(n.soft, to) {
		n.soft = append(n.soft, to)
	}
}

// Sort computes a dependency-first order that is stable with respect to
// discovery order. Edges pointing at ids that were never added are ignored.
func (g *PackageGraph) Sort() error {
	g.sorted = make([]PackageID, 0, len(g.order))
	state := make(map[PackageID]int) // 0: unvisited, 1: visiting, 2: visited
	var path []PackageID

	var visit func(u PackageID) error
	visit = func(u PackageID) error {
		state[u] = 1
		path = append(path, u)
		n := g.nodes[u]

		for _, dep := range n.hard {
			if !g.Has(dep) {
				continue
			}
			switch state[dep] {
			case 1:
				return g.buildCycleError(path, dep)
			case 0:
				if err := visit(dep); err != nil {
					return err
				}
			}
		}
		for _, dep := range n.soft {
			if g.Has(dep) && state[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		state[u] = 2
		path = path[:len(path)-1]
		g.sorted = append(g.sorted, u)
		return nil
	}

	for _, id := range g.order {
		if state[id] == 0 {
			if err := visit(id); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func (g *PackageGraph) buildCycleError(path []PackageID, dep PackageID) error {
	start := slices.Index(path, dep)
	cycle := append(slices.Clone(path[start:]), dep)
	return zerr.With(ErrCycleDetected, "cycle", FormatChain(cycle))
}

// Walk yields package ids in sorted order. Sort must have succeeded.
func (g *PackageGraph) Walk() iter.Seq[PackageID] {
	return func(yield func(PackageID) bool) {
		for _, id := range g.sorted {
			if !yield(id) {
				return
			}
		}
	}
}
