package ports

import (
	"io"

	"go.trai.ch/remake/internal/core/domain"
)

// ScriptParser turns a command script into graph commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=script.go -destination=mocks/mock_script.go -package=mocks
type ScriptParser interface {
	// Parse reads the whole script and returns its commands in order.
	Parse(r io.Reader) ([]domain.Command, error)
}
