package domain

import (
	"iter"
	"slices"

	"go.trai.ch/zerr"
)

// Target is a named node of the dependency graph. A target without dependencies
// is a leaf (a source); a target with dependencies is derived and only changes
// through Rebuild.
type Target struct {
	name            InternedString
	dependencies    []*Target
	lastBuildTime   int64
	maxDependencies int
}

// newTarget creates a leaf target that accepts at most maxDependencies
// dependencies (zero means unbounded).
func newTarget(name InternedString, maxDependencies int) *Target {
	return &Target{
		name:            name,
		maxDependencies: maxDependencies,
	}
}

// Name returns the target name.
func (t *Target) Name() string {
	return t.name.String()
}

// ID returns the interned target name.
func (t *Target) ID() InternedString {
	return t.name
}

// AddDependency appends d to the dependency list.
// Adding a dependency that is already present is a no-op.
// It returns ErrMaxDependenciesExceeded, without mutating the target, when the
// dependency list is full.
func (t *Target) AddDependency(d *Target) error {
	if t.hasDependency(d.name) {
		return nil
	}

	if !allows(t.maxDependencies, len(t.dependencies), 1) {
		err := zerr.With(zerr.Wrap(ErrMaxDependenciesExceeded, "cannot add dependency"), "target", t.Name())
		err = zerr.With(err, "dependency", d.Name())
		return zerr.With(err, "limit", t.maxDependencies)
	}

	t.dependencies = append(t.dependencies, d)
	return nil
}

func (t *Target) hasDependency(name InternedString) bool {
	return slices.ContainsFunc(t.dependencies, func(d *Target) bool {
		return d.name == name
	})
}

// IsLeaf reports whether the target has no dependencies.
func (t *Target) IsLeaf() bool {
	return len(t.dependencies) == 0
}

// RecordBuild sets the last build time unconditionally.
func (t *Target) RecordBuild(time int64) {
	t.lastBuildTime = time
}

// LastBuildTime returns the clock value of the last build or touch.
func (t *Target) LastBuildTime() int64 {
	return t.lastBuildTime
}

// DependencyCount returns the number of declared dependencies.
func (t *Target) DependencyCount() int {
	return len(t.dependencies)
}

// Dependencies yields the dependencies in declaration order.
func (t *Target) Dependencies() iter.Seq[*Target] {
	return slices.Values(t.dependencies)
}

// DependencyNames returns the dependency names in declaration order.
func (t *Target) DependencyNames() []string {
	names := make([]string, len(t.dependencies))
	for i, d := range t.dependencies {
		names[i] = d.Name()
	}
	return names
}
