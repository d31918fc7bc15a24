package progrock

import (
	"fmt"
	"io"

	"github.com/vito/progrock"
	"go.trai.ch/remake/internal/core/domain"
	"go.trai.ch/remake/internal/core/ports"
)

var _ ports.Vertex = (*Vertex)(nil)

// Vertex implements ports.Vertex on a *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns the vertex output stream.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns the vertex error stream.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Log writes "[level] msg" to the vertex output stream.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	_, _ = fmt.Fprintf(v.vertex.Stdout(), "[%s] %s\n", level.String(), msg)
}

// Complete marks the vertex as finished, failed when err is non-nil.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

// Cached marks the vertex as having had nothing to do.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}
