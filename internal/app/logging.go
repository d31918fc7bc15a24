package app

import "io"

// logConfigurer is implemented by loggers whose format and level can change
// after construction.
type logConfigurer interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// ConfigureLogging applies the command line logging flags. Loggers that cannot
// be reconfigured are left as they are.
func (a *App) ConfigureLogging(verbose, jsonLogs bool) {
	lc, ok := a.logger.(logConfigurer)
	if !ok {
		return
	}
	lc.SetVerbose(verbose)
	lc.SetJSON(jsonLogs)
}

// outputSetter is implemented by adapters whose sink can change after
// construction.
type outputSetter interface {
	SetOutput(w io.Writer)
}

// ConfigureOutput sends reports to stdout and logs to stderr. Adapters that
// cannot be redirected keep their sinks.
func (a *App) ConfigureOutput(stdout, stderr io.Writer) {
	if r, ok := a.reporter.(outputSetter); ok {
		r.SetOutput(stdout)
	}
	if l, ok := a.logger.(outputSetter); ok {
		l.SetOutput(stderr)
	}
}
