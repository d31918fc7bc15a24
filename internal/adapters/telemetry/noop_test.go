package telemetry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/remake/internal/adapters/telemetry"
	"go.trai.ch/remake/internal/core/domain"
	"go.trai.ch/remake/internal/core/ports"
)

func TestNoOp_Record(t *testing.T) {
	tel := telemetry.NewNoOp()

	ctx, v := tel.Record(t.Context(), "build app")
	require.NotNil(t, v)

	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, v, fromCtx)

	n, err := v.Stdout().Write([]byte("output"))
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	v.Log(domain.LogLevelInfo, "Building app")
	v.Cached()
	v.Complete(errors.New("ignored"))

	assert.NoError(t, tel.Close())
}
