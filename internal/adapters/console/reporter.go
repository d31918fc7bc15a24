// Package console writes build messages and graph summaries to a terminal.
package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/remake/internal/core/domain"
	"go.trai.ch/remake/internal/core/ports"
	"go.trai.ch/remake/internal/ui/style"
	"go.trai.ch/zerr"
)

var _ ports.Reporter = (*Reporter)(nil)

// Reporter implements ports.Reporter. Colors are dropped when the writer is
// not a terminal or NO_COLOR is set.
type Reporter struct {
	mu  sync.Mutex
	out io.Writer

	build   lipgloss.Style
	touch   lipgloss.Style
	reject  lipgloss.Style
	header  lipgloss.Style
	muted   lipgloss.Style
	leaf    lipgloss.Style
	nonLeaf lipgloss.Style
}

// NewReporter creates a Reporter writing to out. A nil out writes to stdout.
func NewReporter(out io.Writer) *Reporter {
	r := &Reporter{}
	r.setOutput(out)
	return r
}

// SetOutput redirects the reporter to w and re-detects its color profile.
func (r *Reporter) SetOutput(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setOutput(w)
}

func (r *Reporter) setOutput(out io.Writer) {
	if out == nil {
		out = os.Stdout
	}

	renderer := lipgloss.NewRenderer(out)
	if os.Getenv("NO_COLOR") != "" {
		renderer.SetColorProfile(termenv.Ascii)
	}

	r.out = out
	r.build = renderer.NewStyle().Foreground(style.Accent)
	r.touch = renderer.NewStyle().Foreground(style.Green)
	r.reject = renderer.NewStyle().Foreground(style.Red)
	r.header = renderer.NewStyle().Bold(true)
	r.muted = renderer.NewStyle().Foreground(style.Muted)
	r.leaf = renderer.NewStyle().Foreground(style.Muted)
	r.nonLeaf = renderer.NewStyle().Foreground(style.Accent)
}

// Built writes "Building NAME".
func (r *Reporter) Built(ev domain.BuildEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.println(r.build.Render("Building " + ev.Target))
}

// Touched writes "NAME updated at time N".
func (r *Reporter) Touched(ev domain.TouchEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.println(r.touch.Render(fmt.Sprintf("%s updated at time %d", ev.Target, ev.Time)))
}

// Rejected writes the message for a refused operation.
func (r *Reporter) Rejected(err error) {
	if err == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.println(r.reject.Render(RejectionMessage(err)))
}

// RejectionMessage returns the one-line user message for err.
func RejectionMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNonLeafTouch):
		return "Cannot update non-leaf object"
	case errors.Is(err, domain.ErrMaxTargetsExceeded):
		return "Max targets exceeded"
	case errors.Is(err, domain.ErrMaxDependenciesExceeded):
		return "Max dependencies exceeded"
	case errors.Is(err, domain.ErrCyclicDependency):
		if cycle, ok := metadata(err, "cycle"); ok {
			return fmt.Sprintf("Cyclic dependency: %v", cycle)
		}
		return "Cyclic dependency"
	case errors.Is(err, domain.ErrSelfDependency):
		if target, ok := metadata(err, "target"); ok {
			return fmt.Sprintf("Target cannot depend on itself: %v", target)
		}
		return "Target cannot depend on itself"
	case errors.Is(err, domain.ErrEmptyTargetName):
		return "Target name is empty"
	default:
		return err.Error()
	}
}

// metadata returns the first value stored under key along err's chain.
func metadata(err error, key string) (any, bool) {
	for current := err; current != nil; current = errors.Unwrap(current) {
		z, ok := current.(*zerr.Error)
		if !ok {
			continue
		}
		if v, ok := z.Metadata()[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// Summary writes a table of every target followed by the fingerprint.
func (r *Reporter) Summary(snap domain.Snapshot, fingerprint string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	nameWidth := len("TARGET")
	for _, t := range snap.Targets {
		nameWidth = max(nameWidth, len(t.Name))
	}
	timeWidth := max(len("BUILT"), len(strconv.FormatInt(snap.Clock, 10)))

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.header.Render(fmt.Sprintf("%d targets, clock %d", len(snap.Targets), snap.Clock)))
	fmt.Fprintf(&b, "%s\n", r.muted.Render(fmt.Sprintf("  %-*s  %*s  %s", nameWidth, "TARGET", timeWidth, "BUILT", "DEPENDS ON")))

	for _, t := range snap.Targets {
		glyph, nameStyle := style.Dot, r.nonLeaf
		if t.Leaf {
			glyph, nameStyle = style.Circle, r.leaf
		}

		deps := "-"
		if len(t.Dependencies) > 0 {
			deps = strings.Join(t.Dependencies, " ")
		}

		name := nameStyle.Render(t.Name) + strings.Repeat(" ", nameWidth-len(t.Name))
		fmt.Fprintf(&b, "%s %s  %*d  %s\n", glyph, name, timeWidth, t.LastBuildTime, deps)
	}

	fmt.Fprintf(&b, "%s\n", r.muted.Render("fingerprint "+fingerprint))

	_, _ = io.WriteString(r.out, b.String())
}

// println writes one line. Callers hold r.mu.
func (r *Reporter) println(line string) {
	_, _ = fmt.Fprintln(r.out, line)
}
