package domain_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/remake/internal/core/domain"
)

func TestTarget_LeafTransition(t *testing.T) {
	g := domain.NewGraph(domain.DefaultLimits())
	require.NoError(t, g.DeclareDependency("lib", "util.c"))

	util, _ := g.Target("util.c")
	lib, _ := g.Target("lib")
	assert.True(t, util.IsLeaf())
	assert.False(t, lib.IsLeaf())

	require.NoError(t, g.DeclareDependency("util.c", "util.h"))
	assert.False(t, util.IsLeaf())
	assert.Equal(t, 1, util.DependencyCount())
}

func TestTarget_AddDependency(t *testing.T) {
	g := domain.NewGraph(domain.Limits{MaxDependencies: 1})
	require.NoError(t, g.DeclareDependency("app", "main.o"))
	require.NoError(t, g.DeclareDependency("other", "lib.o"))

	app, _ := g.Target("app")
	mainObj, _ := g.Target("main.o")
	libObj, _ := g.Target("lib.o")

	require.NoError(t, app.AddDependency(mainObj))
	require.ErrorIs(t, app.AddDependency(libObj), domain.ErrMaxDependenciesExceeded)
	assert.Equal(t, []string{"main.o"}, app.DependencyNames())
}

func TestTarget_Dependencies(t *testing.T) {
	g := domain.NewGraph(domain.DefaultLimits())
	for _, dep := range []string{"c", "a", "b"} {
		require.NoError(t, g.DeclareDependency("all", dep))
	}

	all, _ := g.Target("all")
	names := slices.Collect(func(yield func(string) bool) {
		for d := range all.Dependencies() {
			if !yield(d.Name()) {
				return
			}
		}
	})

	assert.Equal(t, []string{"c", "a", "b"}, names)
	assert.Equal(t, domain.NewInternedString("all"), all.ID())
}

func TestTarget_RecordBuild(t *testing.T) {
	g := domain.NewGraph(domain.DefaultLimits())
	require.NoError(t, g.DeclareDependency("a", "b"))

	a, _ := g.Target("a")
	a.RecordBuild(7)
	assert.Equal(t, int64(7), a.LastBuildTime())

	a.RecordBuild(3)
	assert.Equal(t, int64(3), a.LastBuildTime())
}

func TestConfig_Commands(t *testing.T) {
	cfg := domain.Config{
		Limits: domain.DefaultLimits(),
		Rules: []domain.Rule{
			{Target: "app", DependsOn: []string{"main.o", "lib.o"}},
			{Target: "main.o", DependsOn: []string{"main.c"}},
		},
	}

	assert.Equal(t, []domain.Command{
		{Kind: domain.CommandDeclare, Target: "app", Dependency: "main.o"},
		{Kind: domain.CommandDeclare, Target: "app", Dependency: "lib.o"},
		{Kind: domain.CommandDeclare, Target: "main.o", Dependency: "main.c"},
	}, cfg.Commands())
}

func TestCommandKind_String(t *testing.T) {
	assert.Equal(t, "declare", domain.CommandDeclare.String())
	assert.Equal(t, "touch", domain.CommandTouch.String())
	assert.Equal(t, "build", domain.CommandRebuild.String())
	assert.Equal(t, "unknown", domain.CommandKind(9).String())
}
