// Package domain contains the core domain models and business logic for the target dependency graph.
package domain

import (
	"iter"
	"strings"

	"go.trai.ch/zerr"
)

// Graph is a dependency graph of targets together with the logical clock that
// orders touches and builds. A Graph is not safe for concurrent use.
type Graph struct {
	targets map[InternedString]*Target
	order   []*Target
	clock   int64
	limits  Limits
}

// NewGraph creates an empty graph with the clock at zero.
func NewGraph(limits Limits) *Graph {
	return &Graph{
		targets: make(map[InternedString]*Target),
		limits:  limits,
	}
}

// DeclareDependency records that target depends on dependency, creating either
// target on first mention. When a new name would push the graph past its target
// limit, nothing is created and ErrMaxTargetsExceeded is returned. New targets
// are created target first, dependency second.
func (g *Graph) DeclareDependency(target, dependency string) error {
	if target == "" || dependency == "" {
		err := zerr.With(zerr.Wrap(ErrEmptyTargetName, "cannot declare dependency"), "target", target)
		return zerr.With(err, "dependency", dependency)
	}
	if target == dependency {
		return zerr.With(zerr.Wrap(ErrSelfDependency, "cannot declare dependency"), "target", target)
	}

	targetID := NewInternedString(target)
	dependID := NewInternedString(dependency)

	t, targetExists := g.targets[targetID]
	d, dependExists := g.targets[dependID]

	created := 0
	if !targetExists {
		created++
	}
	if !dependExists {
		created++
	}

	if created > 0 && !allows(g.limits.MaxTargets, len(g.order), created) {
		err := zerr.With(zerr.Wrap(ErrMaxTargetsExceeded, "cannot declare dependency"), "target", target)
		err = zerr.With(err, "dependency", dependency)
		return zerr.With(err, "limit", g.limits.MaxTargets)
	}

	if !targetExists {
		t = g.add(targetID)
	}
	if !dependExists {
		d = g.add(dependID)
	}

	return t.AddDependency(d)
}

func (g *Graph) add(name InternedString) *Target {
	t := newTarget(name, g.limits.MaxDependencies)
	g.targets[name] = t
	g.order = append(g.order, t)
	return t
}

// Touch advances the clock and stamps the named leaf target with the new time.
// The clock advances even when the touch is rejected.
func (g *Graph) Touch(name string) (TouchEvent, error) {
	g.clock++

	t, err := g.lookup(name)
	if err != nil {
		return TouchEvent{}, err
	}

	if !t.IsLeaf() {
		return TouchEvent{}, zerr.With(zerr.Wrap(ErrNonLeafTouch, "cannot touch target"), "target", name)
	}

	t.RecordBuild(g.clock)
	return TouchEvent{Target: name, Time: g.clock}, nil
}

// Rebuild brings the named target up to date and returns the build events in
// the order the builds happened, dependencies first.
//
// Every target below the root is judged against the root's own last build
// time, and a dependency newer than that time marks its dependent stale
// without the dependent's remaining dependencies being visited.
//
// A dependency cycle stops the traversal with ErrCyclicDependency; builds that
// already happened are still returned.
func (g *Graph) Rebuild(name string) ([]BuildEvent, error) {
	t, err := g.lookup(name)
	if err != nil {
		return nil, err
	}

	run := newRebuildRun(g, t.LastBuildTime())

	stale, err := run.evaluate(t)
	if err != nil {
		return run.events, err
	}

	if stale {
		run.build(t)
	}

	return run.events, nil
}

func (g *Graph) lookup(name string) (*Target, error) {
	t, ok := g.targets[NewInternedString(name)]
	if !ok {
		return nil, zerr.With(zerr.Wrap(ErrTargetNotFound, "unknown target"), "target", name)
	}
	return t, nil
}

// Target returns the named target.
func (g *Graph) Target(name string) (*Target, bool) {
	t, ok := g.targets[NewInternedString(name)]
	return t, ok
}

// Targets yields all targets in creation order.
func (g *Graph) Targets() iter.Seq[*Target] {
	return func(yield func(*Target) bool) {
		for _, t := range g.order {
			if !yield(t) {
				return
			}
		}
	}
}

// Len returns the number of targets.
func (g *Graph) Len() int {
	return len(g.order)
}

// Clock returns the current logical time.
func (g *Graph) Clock() int64 {
	return g.clock
}

// Limits returns the capacity limits the graph was created with.
func (g *Graph) Limits() Limits {
	return g.limits
}

// Snapshot captures the current state of the graph.
func (g *Graph) Snapshot() Snapshot {
	s := Snapshot{
		Clock:   g.clock,
		Targets: make([]TargetState, len(g.order)),
	}
	for i, t := range g.order {
		s.Targets[i] = TargetState{
			Name:          t.Name(),
			LastBuildTime: t.LastBuildTime(),
			Dependencies:  t.DependencyNames(),
			Leaf:          t.IsLeaf(),
		}
	}
	return s
}

// rebuildRun holds the state of a single Rebuild call.
type rebuildRun struct {
	graph     *Graph
	threshold int64
	path      []*Target
	onPath    map[InternedString]bool
	events    []BuildEvent
}

func newRebuildRun(g *Graph, threshold int64) *rebuildRun {
	return &rebuildRun{
		graph:     g,
		threshold: threshold,
		onPath:    make(map[InternedString]bool),
	}
}

// evaluate reports whether node needs rebuilding, rebuilding any of its
// dependencies that need it on the way.
func (r *rebuildRun) evaluate(node *Target) (bool, error) {
	if node.IsLeaf() {
		return false, nil
	}

	if r.onPath[node.name] {
		return false, r.cycleError(node)
	}
	r.onPath[node.name] = true
	r.path = append(r.path, node)
	defer func() {
		delete(r.onPath, node.name)
		r.path = r.path[:len(r.path)-1]
	}()

	rebuilt := false
	for _, dep := range node.dependencies {
		if dep.LastBuildTime() > r.threshold {
			return true, nil
		}

		stale, err := r.evaluate(dep)
		if err != nil {
			return false, err
		}

		if stale {
			r.build(dep)
			rebuilt = true
		}
	}

	return rebuilt, nil
}

func (r *rebuildRun) build(t *Target) {
	now := r.graph.clock
	t.RecordBuild(now)
	r.events = append(r.events, BuildEvent{Target: t.Name(), Time: now})
}

// cycleError reports the path from the first visit of node back to node.
func (r *rebuildRun) cycleError(node *Target) error {
	start := 0
	for i, t := range r.path {
		if t == node {
			start = i
			break
		}
	}

	names := make([]string, 0, len(r.path)-start+1)
	for _, t := range r.path[start:] {
		names = append(names, t.Name())
	}
	names = append(names, node.Name())

	return zerr.With(zerr.Wrap(ErrCyclicDependency, "cannot rebuild target"), "cycle", strings.Join(names, " -> "))
}
