package wiring_test

import (
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/remake/internal/app"
	_ "go.trai.ch/remake/internal/wiring"
)

// TestGraftDependencies checks that every node declaring a dependency
// actually uses it, and every used dependency is declared.
func TestGraftDependencies(t *testing.T) {
	// AssertDepsValid infers a dependency ID from the package of the type
	// passed to Dep[T]. Every adapter is resolved through the shared ports
	// package, so it would expect a node named "ports".
	t.Skip("Skipping Graft validation due to static analysis limitation with shared ports package")
	graft.AssertDepsValid(t, "../../internal")
}

func TestGraftResolvesComponents(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](t.Context())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
	require.NoError(t, components.App.Close())
}
