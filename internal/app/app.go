// Package app implements the application layer for remake.
package app

import (
	"context"
	"io"

	"go.trai.ch/remake/internal/core/domain"
	"go.trai.ch/remake/internal/core/ports"
	"go.trai.ch/remake/internal/engine/session"
	"go.trai.ch/zerr"
)

// App wires the graph engine to its collaborators for one CLI invocation.
type App struct {
	configLoader ports.ConfigLoader
	parser       ports.ScriptParser
	reporter     ports.Reporter
	telemetry    ports.Telemetry
	hasher       ports.Hasher
	renderer     ports.GraphRenderer
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	parser ports.ScriptParser,
	reporter ports.Reporter,
	telemetry ports.Telemetry,
	hasher ports.Hasher,
	renderer ports.GraphRenderer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		parser:       parser,
		reporter:     reporter,
		telemetry:    telemetry,
		hasher:       hasher,
		renderer:     renderer,
		logger:       log,
	}
}

// RunOptions configures Run.
type RunOptions struct {
	ConfigPath string
	Strict     bool
	Summary    bool
	// Trace receives a replay of the recorded rebuild requests when non-nil.
	Trace io.Writer
}

// BuildOptions configures Build.
type BuildOptions struct {
	ConfigPath string
	Touch      []string
	Strict     bool
	Summary    bool
	Trace      io.Writer
}

// GraphOptions configures Graph.
type GraphOptions struct {
	ConfigPath string
	Format     ports.GraphFormat
}

// Run declares the configured rules, then applies every command of script.
func (a *App) Run(ctx context.Context, script io.Reader, opts RunOptions) error {
	cmds, err := a.parser.Parse(script)
	if err != nil {
		return zerr.Wrap(err, "failed to parse script")
	}

	sess, err := a.newSession(ctx, opts.ConfigPath, a.reporter, opts.Strict)
	if err != nil {
		return err
	}

	err = sess.ApplyAll(ctx, cmds)
	if opts.Summary {
		a.summarize(sess)
	}
	if traceErr := a.trace(opts.Trace); err == nil {
		err = traceErr
	}
	return err
}

// Build declares the configured rules, touches the given leaves and rebuilds
// targets in order.
func (a *App) Build(ctx context.Context, targets []string, opts BuildOptions) error {
	if len(targets) == 0 {
		return domain.ErrNoTargetsSpecified
	}

	sess, err := a.newSession(ctx, opts.ConfigPath, a.reporter, opts.Strict)
	if err != nil {
		return err
	}

	cmds := make([]domain.Command, 0, len(opts.Touch)+len(targets))
	for _, leaf := range opts.Touch {
		cmds = append(cmds, domain.Command{Kind: domain.CommandTouch, Target: leaf})
	}
	for _, target := range targets {
		cmds = append(cmds, domain.Command{Kind: domain.CommandRebuild, Target: target})
	}

	err = sess.ApplyAll(ctx, cmds)
	if opts.Summary {
		a.summarize(sess)
	}
	if traceErr := a.trace(opts.Trace); err == nil {
		err = traceErr
	}
	return err
}

// Graph renders the configured rules, plus the commands of script when it is
// non-nil, to w. Rejections are logged as warnings so w only carries the
// rendering.
func (a *App) Graph(ctx context.Context, w io.Writer, script io.Reader, opts GraphOptions) error {
	var cmds []domain.Command
	if script != nil {
		var err error
		if cmds, err = a.parser.Parse(script); err != nil {
			return zerr.Wrap(err, "failed to parse script")
		}
	}

	sess, err := a.newSession(ctx, opts.ConfigPath, &logReporter{logger: a.logger}, false)
	if err != nil {
		return err
	}

	if err := sess.ApplyAll(ctx, cmds); err != nil {
		return err
	}

	format := opts.Format
	if format == "" {
		format = ports.GraphFormatDOT
	}
	return a.renderer.Render(w, sess.Snapshot(), format)
}

// Close flushes the telemetry tape.
func (a *App) Close() error {
	return a.telemetry.Close()
}

func (a *App) newSession(ctx context.Context, configPath string, reporter ports.Reporter, strict bool) (*session.Session, error) {
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	graph := domain.NewGraph(cfg.Limits)
	sess := session.New(graph, reporter, a.telemetry, a.logger, session.WithStrict(strict))

	if err := sess.ApplyAll(ctx, cfg.Commands()); err != nil {
		return nil, zerr.Wrap(err, "failed to declare configured rules")
	}
	return sess, nil
}

// tracer is implemented by telemetry backends that can replay what they
// recorded.
type tracer interface {
	Replay(w io.Writer) error
}

func (a *App) trace(w io.Writer) error {
	if w == nil {
		return nil
	}

	t, ok := a.telemetry.(tracer)
	if !ok {
		a.logger.Debug("telemetry keeps no trace")
		return nil
	}
	return t.Replay(w)
}

func (a *App) summarize(sess *session.Session) {
	snap := sess.Snapshot()
	a.reporter.Summary(snap, a.hasher.Fingerprint(snap))
}

// logReporter forwards rejections to the logger and drops everything else.
type logReporter struct {
	logger ports.Logger
}

func (r *logReporter) Built(domain.BuildEvent)   {}
func (r *logReporter) Touched(domain.TouchEvent) {}

func (r *logReporter) Rejected(err error) {
	r.logger.Warn("command rejected", "error", err.Error())
}

func (r *logReporter) Summary(domain.Snapshot, string) {}
