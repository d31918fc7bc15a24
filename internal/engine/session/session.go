// Package session applies commands to a dependency graph and routes the
// outcome to the reporter, the telemetry tape and the logger.
package session

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/remake/internal/core/domain"
	"go.trai.ch/remake/internal/core/ports"
	"go.trai.ch/zerr"
)

// Session drives one graph. It is not safe for concurrent use.
type Session struct {
	graph     *domain.Graph
	reporter  ports.Reporter
	telemetry ports.Telemetry
	logger    ports.Logger
	strict    bool

	status map[string]domain.VertexStatus
}

// Option configures a Session.
type Option func(*Session)

// WithStrict makes Apply fail on the first command the graph rejects.
func WithStrict(strict bool) Option {
	return func(s *Session) {
		s.strict = strict
	}
}

// New creates a Session over graph.
func New(
	graph *domain.Graph,
	reporter ports.Reporter,
	telemetry ports.Telemetry,
	logger ports.Logger,
	opts ...Option,
) *Session {
	s := &Session{
		graph:     graph,
		reporter:  reporter,
		telemetry: telemetry,
		logger:    logger,
		status:    make(map[string]domain.VertexStatus),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Declare records that target depends on dependency. A rejected declaration
// is reported and returned.
func (s *Session) Declare(_ context.Context, target, dependency string) error {
	if err := s.graph.DeclareDependency(target, dependency); err != nil {
		s.reporter.Rejected(err)
		return err
	}

	s.logger.Debug("declared dependency", "target", target, "dependency", dependency)
	return nil
}

// Touch stamps the named leaf with a new time. Unknown targets are ignored.
func (s *Session) Touch(_ context.Context, name string) error {
	ev, err := s.graph.Touch(name)
	switch {
	case errors.Is(err, domain.ErrTargetNotFound):
		s.logger.Debug("ignored touch of unknown target", "target", name)
		return nil
	case err != nil:
		s.reporter.Rejected(err)
		return err
	}

	s.reporter.Touched(ev)
	s.logger.Debug("touched target", "target", ev.Target, "time", ev.Time)
	return nil
}

// Rebuild brings the named target up to date and returns what was built.
// Unknown targets are ignored. Each request is recorded as one vertex.
func (s *Session) Rebuild(ctx context.Context, name string) ([]domain.BuildEvent, error) {
	target, ok := s.graph.Target(name)
	if !ok {
		s.logger.Debug("ignored rebuild of unknown target", "target", name)
		return nil, nil
	}

	// Leaves never build; their vertices are bookkeeping.
	var opts []ports.VertexOption
	if target.IsLeaf() {
		opts = append(opts, ports.WithInternal())
	}

	s.status[name] = domain.VertexStatusRunning
	_, vertex := s.telemetry.Record(ctx, fmt.Sprintf("build %s @%d", name, s.graph.Clock()), opts...)

	events, err := s.graph.Rebuild(name)
	for _, ev := range events {
		s.reporter.Built(ev)
		vertex.Log(domain.LogLevelInfo, "Building "+ev.Target)
	}

	s.status[name] = domain.RebuildStatus(events, err)

	if err != nil {
		s.reporter.Rejected(err)
		vertex.Log(domain.LogLevelError, err.Error())
		vertex.Complete(err)
		return events, err
	}

	if len(events) == 0 {
		s.logger.Debug("target is up to date", "target", name)
		vertex.Cached()
	} else {
		s.logger.Debug("rebuilt target", "target", name, "built", len(events), "clock", s.graph.Clock())
	}
	vertex.Complete(nil)
	return events, nil
}

// Apply runs one command. Rejections are reported and swallowed unless the
// session is strict, in which case they stop the caller with
// domain.ErrCommandRejected.
func (s *Session) Apply(ctx context.Context, cmd domain.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var err error
	switch cmd.Kind {
	case domain.CommandDeclare:
		err = s.Declare(ctx, cmd.Target, cmd.Dependency)
	case domain.CommandTouch:
		err = s.Touch(ctx, cmd.Target)
	case domain.CommandRebuild:
		_, err = s.Rebuild(ctx, cmd.Target)
	default:
		return zerr.With(zerr.Wrap(domain.ErrInvalidCommand, "unknown command kind"), "kind", int(cmd.Kind))
	}

	if err == nil || !s.strict {
		return nil
	}

	rejected := zerr.Wrap(errors.Join(domain.ErrCommandRejected, err), "stopped at rejected command")
	rejected = zerr.With(rejected, "command", cmd.Kind.String())
	if cmd.Line > 0 {
		rejected = zerr.With(rejected, "line", cmd.Line)
	}
	return rejected
}

// ApplyAll runs cmds in order and stops at the first error Apply returns.
func (s *Session) ApplyAll(ctx context.Context, cmds []domain.Command) error {
	for _, cmd := range cmds {
		if err := s.Apply(ctx, cmd); err != nil {
			return err
		}
	}
	return nil
}

// Status returns the outcome of the last rebuild request for name.
func (s *Session) Status(name string) (domain.VertexStatus, bool) {
	st, ok := s.status[name]
	return st, ok
}

// Snapshot returns the current state of the graph.
func (s *Session) Snapshot() domain.Snapshot {
	return s.graph.Snapshot()
}
