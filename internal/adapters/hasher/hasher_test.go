package hasher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/remake/internal/adapters/hasher"
	"go.trai.ch/remake/internal/core/domain"
)

func buildGraph(t *testing.T) *domain.Graph {
	t.Helper()
	g := domain.NewGraph(domain.DefaultLimits())
	require.NoError(t, g.DeclareDependency("app", "main.o"))
	require.NoError(t, g.DeclareDependency("main.o", "main.c"))
	return g
}

func TestFingerprint_Stable(t *testing.T) {
	h := hasher.New()

	a := h.Fingerprint(buildGraph(t).Snapshot())
	b := h.Fingerprint(buildGraph(t).Snapshot())

	assert.Equal(t, a, b)
	assert.Len(t, a, 16)
}

func TestFingerprint_ChangesWithState(t *testing.T) {
	h := hasher.New()
	g := buildGraph(t)
	before := h.Fingerprint(g.Snapshot())

	_, err := g.Touch("main.c")
	require.NoError(t, err)
	touched := h.Fingerprint(g.Snapshot())

	_, err = g.Rebuild("app")
	require.NoError(t, err)
	rebuilt := h.Fingerprint(g.Snapshot())

	assert.NotEqual(t, before, touched)
	assert.NotEqual(t, touched, rebuilt)
}

func TestFingerprint_NameBoundaries(t *testing.T) {
	h := hasher.New()

	a := domain.Snapshot{Targets: []domain.TargetState{{Name: "ab", Dependencies: []string{"c"}}}}
	b := domain.Snapshot{Targets: []domain.TargetState{{Name: "a", Dependencies: []string{"bc"}}}}
	c := domain.Snapshot{Targets: []domain.TargetState{{Name: "a"}, {Name: "bc"}}}

	assert.NotEqual(t, h.Fingerprint(a), h.Fingerprint(b))
	assert.NotEqual(t, h.Fingerprint(b), h.Fingerprint(c))
}
