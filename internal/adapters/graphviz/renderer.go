// Package graphviz renders dependency graphs as Graphviz DOT or as a build order.
package graphviz

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	graphlib "github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
	"go.trai.ch/remake/internal/core/domain"
	"go.trai.ch/remake/internal/core/ports"
	"go.trai.ch/zerr"
)

// ErrUnsupportedFormat is returned for a format the renderer does not know.
var ErrUnsupportedFormat = zerr.New("unsupported graph format")

var _ ports.GraphRenderer = (*Renderer)(nil)

// Renderer implements ports.GraphRenderer.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes snap to w in the requested format.
func (r *Renderer) Render(w io.Writer, snap domain.Snapshot, format ports.GraphFormat) error {
	switch format {
	case ports.GraphFormatDOT:
		return renderDOT(w, snap)
	case ports.GraphFormatOrder:
		return renderOrder(w, snap)
	default:
		return zerr.With(zerr.Wrap(ErrUnsupportedFormat, "cannot render graph"), "format", string(format))
	}
}

// renderDOT draws an edge from every target to each of its dependencies.
// Leaves are boxes; built targets carry their build time as an external label.
func renderDOT(w io.Writer, snap domain.Snapshot) error {
	g := graphlib.New(graphlib.StringHash, graphlib.Directed())

	for _, t := range snap.Targets {
		var opts []func(*graphlib.VertexProperties)
		if t.Leaf {
			opts = append(opts, graphlib.VertexAttribute("shape", "box"))
		}
		if t.LastBuildTime > 0 {
			opts = append(opts, graphlib.VertexAttribute("xlabel", "t="+strconv.FormatInt(t.LastBuildTime, 10)))
		}
		if err := g.AddVertex(t.Name, opts...); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to add vertex"), "target", t.Name)
		}
	}

	for _, t := range snap.Targets {
		for _, dep := range t.Dependencies {
			if err := addEdge(g, t.Name, dep); err != nil {
				return err
			}
		}
	}

	if err := draw.DOT(g, w); err != nil {
		return zerr.Wrap(err, "failed to write DOT")
	}
	return nil
}

// renderOrder writes one target per line with dependencies before their
// dependents. Ties are broken by creation order.
func renderOrder(w io.Writer, snap domain.Snapshot) error {
	g := graphlib.New(graphlib.StringHash, graphlib.Directed())
	rank := make(map[string]int, len(snap.Targets))

	for i, t := range snap.Targets {
		rank[t.Name] = i
		if err := g.AddVertex(t.Name); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to add vertex"), "target", t.Name)
		}
	}

	for _, t := range snap.Targets {
		for _, dep := range t.Dependencies {
			if err := addEdge(g, dep, t.Name); err != nil {
				return err
			}
		}
	}

	order, err := graphlib.StableTopologicalSort(g, func(a, b string) bool {
		return rank[a] < rank[b]
	})
	if err != nil {
		return zerr.Wrap(domain.ErrCyclicDependency, "cannot order targets")
	}

	for _, name := range order {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return zerr.Wrap(err, "failed to write order")
		}
	}
	return nil
}

func addEdge(g graphlib.Graph[string, string], from, to string) error {
	err := g.AddEdge(from, to)
	if err != nil && !errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
		err = zerr.With(zerr.Wrap(err, "failed to add edge"), "from", from)
		return zerr.With(err, "to", to)
	}
	return nil
}
