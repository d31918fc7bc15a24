package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/remake/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []logger.ErrorEntry
	}{
		{
			name: "standard error",
			err:  errors.New("simple error"),
			want: []logger.ErrorEntry{{Message: "simple error"}},
		},
		{
			name: "zerr chain",
			err:  zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			want: []logger.ErrorEntry{
				{Message: "outer layer"},
				{Message: "middle layer"},
				{Message: "root cause"},
			},
		},
		{
			name: "metadata on each link",
			err: func() error {
				inner := zerr.With(zerr.New("max dependencies exceeded"), "limit", 10)
				return zerr.With(zerr.Wrap(inner, "cannot declare dependency"), "target", "app")
			}(),
			want: []logger.ErrorEntry{
				{Message: "cannot declare dependency", Metadata: map[string]any{"target": "app"}},
				{Message: "max dependencies exceeded", Metadata: map[string]any{"limit": 10}},
			},
		},
		{
			name: "metadata on foreign error folds into parent",
			err:  zerr.With(zerr.Wrap(zerr.With(errors.New("eof"), "line", 3), "parse failed"), "file", "x"),
			want: []logger.ErrorEntry{
				{Message: "parse failed", Metadata: map[string]any{"file": "x", "line": 3}},
				{Message: "eof"},
			},
		},
		{
			name: "nil",
			err:  nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.CollectErrorEntries(tt.err))
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name:    "three entries",
			entries: []logger.ErrorEntry{{Message: "first"}, {Message: "second"}, {Message: "third"}},
			want:    "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name: "metadata sorted",
			entries: []logger.ErrorEntry{{
				Message:  "error",
				Metadata: map[string]any{"zebra": "z", "alpha": "a"},
			}},
			want: "Error: error\n       alpha: a\n       zebra: z",
		},
		{
			name: "metadata on cause",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause", Metadata: map[string]any{"cycle": "a -> b -> a"}},
			},
			want: "Error: main\n\n  Caused by:\n    → cause\n      cycle: a -> b -> a",
		},
		{
			name:    "multiline",
			entries: []logger.ErrorEntry{{Message: "main"}, {Message: "line1\nline2"}},
			want:    "Error: main\n\n  Caused by:\n    → line1\n      line2",
		},
		{
			name:    "empty",
			entries: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
