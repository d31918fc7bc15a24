package graphviz_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/remake/internal/adapters/graphviz"
	"go.trai.ch/remake/internal/core/domain"
	"go.trai.ch/remake/internal/core/ports"
)

func sampleSnapshot(t *testing.T) domain.Snapshot {
	t.Helper()
	g := domain.NewGraph(domain.DefaultLimits())
	require.NoError(t, g.DeclareDependency("app", "main.o"))
	require.NoError(t, g.DeclareDependency("app", "lib.o"))
	require.NoError(t, g.DeclareDependency("main.o", "main.c"))
	require.NoError(t, g.DeclareDependency("lib.o", "lib.c"))
	require.NoError(t, g.DeclareDependency("main.o", "lib.h"))
	require.NoError(t, g.DeclareDependency("lib.o", "lib.h"))

	_, err := g.Touch("main.c")
	require.NoError(t, err)
	_, err = g.Rebuild("app")
	require.NoError(t, err)
	return g.Snapshot()
}

func TestRender_Order(t *testing.T) {
	buf := &bytes.Buffer{}
	err := graphviz.NewRenderer().Render(buf, sampleSnapshot(t), ports.GraphFormatOrder)
	require.NoError(t, err)

	assert.Equal(t, "main.c\nlib.c\nlib.h\nmain.o\nlib.o\napp\n", buf.String())
}

func TestRender_DOT(t *testing.T) {
	buf := &bytes.Buffer{}
	err := graphviz.NewRenderer().Render(buf, sampleSnapshot(t), ports.GraphFormatDOT)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "strict digraph {")
	assert.Contains(t, out, `"app" -> "main.o"`)
	assert.Contains(t, out, `"app" -> "lib.o"`)
	assert.Contains(t, out, `"main.o" -> "lib.h"`)
	assert.Contains(t, out, `"lib.h" [ shape="box", `)
	assert.Contains(t, out, `xlabel="t=1"`)
}

func TestRender_OrderCycle(t *testing.T) {
	snap := domain.Snapshot{Targets: []domain.TargetState{
		{Name: "a", Dependencies: []string{"b"}},
		{Name: "b", Dependencies: []string{"a"}},
	}}

	err := graphviz.NewRenderer().Render(&bytes.Buffer{}, snap, ports.GraphFormatOrder)
	require.ErrorIs(t, err, domain.ErrCyclicDependency)
}

func TestRender_UnsupportedFormat(t *testing.T) {
	err := graphviz.NewRenderer().Render(&bytes.Buffer{}, domain.Snapshot{}, "svg")
	require.ErrorIs(t, err, graphviz.ErrUnsupportedFormat)
}
