// Package progrock records rebuild requests on a progrock tape.
package progrock

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"github.com/vito/progrock/ui"
	"go.trai.ch/remake/internal/core/ports"
	"go.trai.ch/remake/internal/ui/style"
	"go.trai.ch/zerr"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on a progrock.Recorder. Every Record
// call starts its own vertex, even when names repeat.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
	seq atomic.Uint64
}

// New creates a Recorder on an in-memory tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts a vertex named name.
func (r *Recorder) Record(ctx context.Context, name string, opts ...ports.VertexOption) (context.Context, ports.Vertex) {
	var cfg ports.VertexConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var vopts []progrock.VertexOpt
	if cfg.Internal {
		vopts = append(vopts, progrock.Internal())
	}

	id := digest.FromString(fmt.Sprintf("%d/%s", r.seq.Add(1), name))
	v := &Vertex{vertex: r.rec.Vertex(id, name, vopts...)}
	return ports.ContextWithVertex(ctx, v), v
}

// Replay writes every visible vertex on the tape in start order, each followed
// by its indented log lines. Internal vertices are skipped. Writers other than
// a *progrock.Tape keep nothing to replay.
func (r *Recorder) Replay(w io.Writer) error {
	tape, ok := r.w.(*progrock.Tape)
	if !ok {
		return nil
	}

	logs := make(map[string][]string)
	err := tape.EachVertex(func(v *progrock.Vertex, term *ui.Vterm) error {
		var buf bytes.Buffer
		if err := term.Print(&buf); err != nil {
			return err
		}
		logs[v.Id] = logLines(buf.String())
		return nil
	})
	if err != nil {
		return zerr.Wrap(err, "failed to read telemetry tape")
	}

	var b strings.Builder
	for _, v := range tape.Vertices() {
		if v.Internal {
			continue
		}
		b.WriteString(vertexLine(v))
		b.WriteByte('\n')
		for _, line := range logs[v.Id] {
			fmt.Fprintf(&b, "    %s\n", line)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return zerr.Wrap(err, "failed to write telemetry replay")
	}
	return nil
}

func vertexLine(v *progrock.Vertex) string {
	switch {
	case v.Error != nil:
		return fmt.Sprintf("%s %s: %s", style.Cross, v.Name, v.GetError())
	case v.Cached:
		return fmt.Sprintf("%s %s (up to date)", style.Circle, v.Name)
	case v.Completed == nil:
		return fmt.Sprintf("%s %s (running)", style.Dot, v.Name)
	default:
		return fmt.Sprintf("%s %s", style.Check, v.Name)
	}
}

func logLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimRight(line, " "); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Close closes the underlying writer when it supports closing.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
