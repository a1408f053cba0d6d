package jsonstore

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"jdex/internal/domain"
)

// DiffContext is the number of unchanged lines shown around each hunk
const DiffContext = 3

// Diff returns a unified diff from the current file contents to the
// persisted form of next. An empty current means no file existed yet.
func Diff(current []byte, next *domain.IndexFile, fromName, toName string) (string, error) {
	rendered, err := Marshal(next)
	if err != nil {
		return "", err
	}

	from := fromName
	if len(current) == 0 {
		from = "/dev/null"
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLinesKeepNL(string(current)),
		B:        splitLinesKeepNL(string(rendered)),
		FromFile: from,
		ToFile:   toName,
		Context:  DiffContext,
	})
}

// splitLinesKeepNL keeps the trailing newline on every line so hunks render
// the way diff(1) prints them
func splitLinesKeepNL(s string) []string {
	if s == "" {
		return []string{}
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
