package graphviz

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/remake/internal/core/ports"
)

// NodeID is the unique identifier for the graph renderer Graft node.
const NodeID graft.ID = "adapter.graph_renderer"

func init() {
	graft.Register(graft.Node[ports.GraphRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.GraphRenderer, error) {
			return NewRenderer(), nil
		},
	})
}
