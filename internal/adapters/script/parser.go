// Package script parses line-oriented command scripts.
//
// A script holds one command per line:
//
//	app: main.o lib.o   # app depends on main.o, then on lib.o
//	touch main.c
//	build app           # "rebuild" and "make" are accepted too
//
// Blank lines and text after '#' are ignored.
package script

import (
	"bufio"
	"io"
	"strings"

	"go.trai.ch/remake/internal/core/domain"
	"go.trai.ch/remake/internal/core/ports"
	"go.trai.ch/zerr"
)

// Parser implements ports.ScriptParser.
type Parser struct{}

// NewParser creates a Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads r to the end. The first malformed line aborts parsing with an
// error wrapping domain.ErrInvalidCommand.
func (p *Parser) Parse(r io.Reader) ([]domain.Command, error) {
	var cmds []domain.Command

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		line := stripComment(scanner.Text())
		if line == "" {
			continue
		}

		parsed, err := parseLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, parsed...)
	}

	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to read script")
	}

	return cmds, nil
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

func parseLine(line string, lineNo int) ([]domain.Command, error) {
	if target, deps, ok := strings.Cut(line, ":"); ok {
		return parseDeclaration(strings.TrimSpace(target), deps, line, lineNo)
	}

	fields := strings.Fields(line)
	if len(fields) != 2 {
		return nil, invalid("expected a keyword and one target", line, lineNo)
	}

	var kind domain.CommandKind
	switch strings.ToLower(fields[0]) {
	case "touch":
		kind = domain.CommandTouch
	case "build", "rebuild", "make":
		kind = domain.CommandRebuild
	default:
		return nil, invalid("unknown keyword", line, lineNo)
	}

	return []domain.Command{{Kind: kind, Target: fields[1], Line: lineNo}}, nil
}

func parseDeclaration(target, deps, line string, lineNo int) ([]domain.Command, error) {
	if target == "" || strings.ContainsAny(target, " \t") {
		return nil, invalid("expected a single target before ':'", line, lineNo)
	}

	names := strings.Fields(deps)
	if len(names) == 0 {
		return nil, invalid("expected at least one dependency after ':'", line, lineNo)
	}

	cmds := make([]domain.Command, 0, len(names))
	for _, dep := range names {
		if strings.Contains(dep, ":") {
			return nil, invalid("unexpected ':'", line, lineNo)
		}
		cmds = append(cmds, domain.Command{
			Kind:       domain.CommandDeclare,
			Target:     target,
			Dependency: dep,
			Line:       lineNo,
		})
	}
	return cmds, nil
}

func invalid(reason, line string, lineNo int) error {
	err := zerr.With(zerr.Wrap(domain.ErrInvalidCommand, reason), "line", lineNo)
	return zerr.With(err, "text", line)
}

var _ ports.ScriptParser = (*Parser)(nil)
