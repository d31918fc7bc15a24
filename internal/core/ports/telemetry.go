package ports

import (
	"context"
	"io"

	"go.trai.ch/remake/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records units of work on a progress tape.
type Telemetry interface {
	// Record starts a new vertex and returns a context carrying it.
	Record(ctx context.Context, name string, opts ...VertexOption) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is one recorded unit of work.
type Vertex interface {
	// Stdout returns a writer for the vertex output stream.
	Stdout() io.Writer
	// Log records a message on the vertex.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex as finished, failed when err is non-nil.
	Complete(err error)
	// Cached marks the vertex as having had nothing to do.
	Cached()
}

// VertexConfig holds configuration for a vertex being recorded.
type VertexConfig struct {
	// Internal hides the vertex from user-facing progress output.
	Internal bool
}

// VertexOption is a functional option for configuring a vertex.
type VertexOption func(*VertexConfig)

// WithInternal marks the vertex as internal.
func WithInternal() VertexOption {
	return func(c *VertexConfig) {
		c.Internal = true
	}
}

type vertexKey struct{}

// ContextWithVertex returns a context carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex carried by ctx, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}
