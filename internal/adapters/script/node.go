package script

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/remake/internal/core/ports"
)

// NodeID is the unique identifier for the script parser Graft node.
const NodeID graft.ID = "adapter.script_parser"

func init() {
	graft.Register(graft.Node[ports.ScriptParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ScriptParser, error) {
			return NewParser(), nil
		},
	})
}
