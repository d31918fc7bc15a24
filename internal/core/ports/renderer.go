package ports

import (
	"io"

	"go.trai.ch/remake/internal/core/domain"
)

// GraphFormat selects the output of a GraphRenderer.
type GraphFormat string

const (
	// GraphFormatDOT renders Graphviz DOT.
	GraphFormatDOT GraphFormat = "dot"
	// GraphFormatOrder renders one target per line, dependencies before dependents.
	GraphFormatOrder GraphFormat = "order"
)

// GraphRenderer renders the dependency structure of a graph.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type GraphRenderer interface {
	Render(w io.Writer, snap domain.Snapshot, format GraphFormat) error
}
