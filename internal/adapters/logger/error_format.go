package logger

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// messager is implemented by errors that can report their own message
// without the rest of the chain, such as *zerr.Error.
type messager interface {
	Message() string
}

type metadataer interface {
	Metadata() map[string]any
}

// errorEntry is one link of an error chain.
type errorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks err's chain. zerr links contribute their own
// message and metadata; the first foreign error contributes its full text and
// ends the walk. Links with an empty message only carry metadata and are
// merged into the previous entry.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{Message: current.Error()})
			break
		}

		var meta map[string]any
		if md, ok := current.(metadataer); ok {
			if md := md.Metadata(); len(md) > 0 {
				meta = md
			}
		}

		if m.Message() == "" && len(entries) > 0 {
			last := &entries[len(entries)-1]
			for k, v := range meta {
				if last.Metadata == nil {
					last.Metadata = make(map[string]any)
				}
				last.Metadata[k] = v
			}
		} else {
			entries = append(entries, errorEntry{Message: m.Message(), Metadata: meta})
		}

		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders entries as a headline followed by an indented
// "Caused by" list. Metadata keys are sorted.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			lines = append(lines, formatMetadata(entry.Metadata, "       ")...)
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
		lines = append(lines, formatMetadata(entry.Metadata, "      ")...)
	}

	return strings.Join(lines, "\n")
}

func formatMetadata(meta map[string]any, indent string) []string {
	if len(meta) == 0 {
		return nil
	}

	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, meta[k]))
	}
	return lines
}
