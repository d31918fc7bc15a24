// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/remake/internal/adapters/config"
	_ "go.trai.ch/remake/internal/adapters/console"
	_ "go.trai.ch/remake/internal/adapters/graphviz"
	_ "go.trai.ch/remake/internal/adapters/hasher"
	_ "go.trai.ch/remake/internal/adapters/logger"
	_ "go.trai.ch/remake/internal/adapters/script"
	_ "go.trai.ch/remake/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/remake/internal/app"
)
