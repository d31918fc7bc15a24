package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/remake/internal/adapters/logger"
)

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{name: "info level", level: slog.LevelInfo, msg: "information message", goldenName: "handler_info"},
		{name: "warn level", level: slog.LevelWarn, msg: "warning message", goldenName: "handler_warn"},
		{name: "error level", level: slog.LevelError, msg: "error message", goldenName: "handler_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
			lg.Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_DebugFiltered(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, nil))
	lg.Debug("hidden")

	assert.Empty(t, buf.String())
}

func TestPrettyHandler_LevelVar(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	level := &slog.LevelVar{}
	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: level}))

	lg.Debug("first")
	level.Set(slog.LevelDebug)
	lg.Debug("second")

	assert.Equal(t, "○ second\n", buf.String())
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name  string
		build func(h slog.Handler) *slog.Logger
		want  string
	}{
		{
			name: "record attrs",
			build: func(h slog.Handler) *slog.Logger {
				return slog.New(h)
			},
			want: "touched target=main.c time=3\n",
		},
		{
			name: "handler attrs first",
			build: func(h slog.Handler) *slog.Logger {
				return slog.New(h.WithAttrs([]slog.Attr{slog.String("session", "s1")}))
			},
			want: "touched session=s1 target=main.c time=3\n",
		},
		{
			name: "group prefix",
			build: func(h slog.Handler) *slog.Logger {
				return slog.New(h.WithGroup("graph"))
			},
			want: "touched graph.target=main.c graph.time=3\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			lg := tt.build(logger.NewPrettyHandler(buf, nil))
			lg.Info("touched", "target", "main.c", "time", 3)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
