package script_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/remake/internal/adapters/script"
	"go.trai.ch/remake/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParse(t *testing.T) {
	src := `
# project
app: main.o lib.o
main.o:main.c   # no spaces needed

touch main.c
build app
REBUILD main.o
make lib.o
`

	cmds, err := script.NewParser().Parse(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, []domain.Command{
		{Kind: domain.CommandDeclare, Target: "app", Dependency: "main.o", Line: 3},
		{Kind: domain.CommandDeclare, Target: "app", Dependency: "lib.o", Line: 3},
		{Kind: domain.CommandDeclare, Target: "main.o", Dependency: "main.c", Line: 4},
		{Kind: domain.CommandTouch, Target: "main.c", Line: 6},
		{Kind: domain.CommandRebuild, Target: "app", Line: 7},
		{Kind: domain.CommandRebuild, Target: "main.o", Line: 8},
		{Kind: domain.CommandRebuild, Target: "lib.o", Line: 9},
	}, cmds)
}

func TestParse_Empty(t *testing.T) {
	cmds, err := script.NewParser().Parse(strings.NewReader("\n  # nothing\n"))
	require.NoError(t, err)
	assert.Empty(t, cmds)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantLine int
	}{
		{name: "unknown keyword", src: "delete app", wantLine: 1},
		{name: "missing name", src: "a: b\ntouch", wantLine: 2},
		{name: "too many names", src: "build a b", wantLine: 1},
		{name: "no dependency", src: "\n\napp:", wantLine: 3},
		{name: "no target", src: ": b", wantLine: 1},
		{name: "spaced target", src: "my app: b", wantLine: 1},
		{name: "second colon", src: "a: b: c", wantLine: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := script.NewParser().Parse(strings.NewReader(tt.src))
			require.ErrorIs(t, err, domain.ErrInvalidCommand)

			var zErr *zerr.Error
			require.True(t, errors.As(err, &zErr))
			assert.Equal(t, tt.wantLine, zErr.Metadata()["line"])
		})
	}
}
