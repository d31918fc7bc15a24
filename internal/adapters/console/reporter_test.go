package console_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/remake/internal/adapters/console"
	"go.trai.ch/remake/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestReporter_Transcript(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	g := domain.NewGraph(domain.Limits{MaxTargets: 5, MaxDependencies: 2})
	require.NoError(t, g.DeclareDependency("app", "main.o"))
	require.NoError(t, g.DeclareDependency("app", "lib.o"))
	require.NoError(t, g.DeclareDependency("main.o", "main.c"))
	require.NoError(t, g.DeclareDependency("lib.o", "lib.c"))

	buf := &bytes.Buffer{}
	r := console.NewReporter(buf)

	touched, err := g.Touch("main.c")
	require.NoError(t, err)
	r.Touched(touched)

	events, err := g.Rebuild("app")
	require.NoError(t, err)
	for _, ev := range events {
		r.Built(ev)
	}

	_, err = g.Touch("app")
	r.Rejected(err)

	r.Rejected(zerr.With(zerr.Wrap(domain.ErrCyclicDependency, "cannot rebuild target"), "cycle", "a -> b -> a"))
	r.Rejected(g.DeclareDependency("app", "main.c"))
	r.Rejected(nil)

	r.Summary(g.Snapshot(), "0123456789abcdef")

	gold := goldie.New(t)
	gold.Assert(t, "transcript", buf.Bytes())
}

func TestRejectionMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "max targets",
			err:  zerr.With(zerr.Wrap(domain.ErrMaxTargetsExceeded, "cannot declare dependency"), "limit", 20),
			want: "Max targets exceeded",
		},
		{
			name: "non-leaf",
			err:  zerr.Wrap(domain.ErrNonLeafTouch, "cannot touch target"),
			want: "Cannot update non-leaf object",
		},
		{
			name: "cycle without path",
			err:  domain.ErrCyclicDependency,
			want: "Cyclic dependency",
		},
		{
			name: "self dependency",
			err:  zerr.With(zerr.Wrap(domain.ErrSelfDependency, "cannot declare dependency"), "target", "app"),
			want: "Target cannot depend on itself: app",
		},
		{
			name: "empty name",
			err:  zerr.Wrap(domain.ErrEmptyTargetName, "cannot declare dependency"),
			want: "Target name is empty",
		},
		{
			name: "other",
			err:  errors.New("disk on fire"),
			want: "disk on fire",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, console.RejectionMessage(tt.err))
		})
	}
}

func TestReporter_SetOutput(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	first := &bytes.Buffer{}
	second := &bytes.Buffer{}

	r := console.NewReporter(first)
	r.Built(domain.BuildEvent{Target: "main.o", Time: 1})

	r.SetOutput(second)
	r.Touched(domain.TouchEvent{Target: "main.c", Time: 2})

	assert.Equal(t, "Building main.o\n", first.String())
	assert.Equal(t, "main.c updated at time 2\n", second.String())
}
