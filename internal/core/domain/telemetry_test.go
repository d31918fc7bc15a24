package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/remake/internal/core/domain"
)

func TestVertexStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		name       string
		status     domain.VertexStatus
		isTerminal bool
	}{
		{"Running", domain.VertexStatusRunning, false},
		{"Completed", domain.VertexStatusCompleted, true},
		{"Failed", domain.VertexStatusFailed, true},
		{"Cached", domain.VertexStatusCached, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isTerminal, tt.status.IsTerminal())
		})
	}
}

func TestRebuildStatus(t *testing.T) {
	built := []domain.BuildEvent{{Target: "a", Time: 1}}

	assert.Equal(t, domain.VertexStatusCached, domain.RebuildStatus(nil, nil))
	assert.Equal(t, domain.VertexStatusCompleted, domain.RebuildStatus(built, nil))
	assert.Equal(t, domain.VertexStatusFailed, domain.RebuildStatus(built, errors.New("boom")))
}

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    domain.LogLevel
		expected string
	}{
		{domain.LogLevelDebug, "DEBUG"},
		{domain.LogLevelInfo, "INFO"},
		{domain.LogLevelWarn, "WARN"},
		{domain.LogLevelError, "ERROR"},
		{domain.LogLevel(42), "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.String())
		})
	}
}
