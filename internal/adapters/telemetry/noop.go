// Package telemetry holds telemetry adapters that need no recording backend.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/remake/internal/core/domain"
	"go.trai.ch/remake/internal/core/ports"
)

var (
	_ ports.Telemetry = (*NoOp)(nil)
	_ ports.Vertex    = (*NoOpVertex)(nil)
)

// NoOp is a ports.Telemetry that records nothing.
type NoOp struct{}

// NewNoOp creates a NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that discards everything.
func (t *NoOp) Record(ctx context.Context, _ string, _ ...ports.VertexOption) (context.Context, ports.Vertex) {
	v := &NoOpVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

// NoOpVertex is a ports.Vertex that discards everything.
type NoOpVertex struct{}

// Stdout returns io.Discard.
func (v *NoOpVertex) Stdout() io.Writer { return io.Discard }

// Log does nothing.
func (v *NoOpVertex) Log(_ domain.LogLevel, _ string) {}

// Complete does nothing.
func (v *NoOpVertex) Complete(_ error) {}

// Cached does nothing.
func (v *NoOpVertex) Cached() {}
