package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/remake/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/remake/internal/adapters/console"            //nolint:depguard // Wired in app layer
	"go.trai.ch/remake/internal/adapters/graphviz"           //nolint:depguard // Wired in app layer
	"go.trai.ch/remake/internal/adapters/hasher"             //nolint:depguard // Wired in app layer
	"go.trai.ch/remake/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/remake/internal/adapters/script"             //nolint:depguard // Wired in app layer
	"go.trai.ch/remake/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/remake/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			script.NodeID,
			console.NodeID,
			progrock.NodeID,
			hasher.NodeID,
			graphviz.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	parser, err := graft.Dep[ports.ScriptParser](ctx)
	if err != nil {
		return nil, err
	}

	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	h, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.GraphRenderer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, parser, reporter, telemetry, h, renderer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    a,
		Logger: log,
	}, nil
}
