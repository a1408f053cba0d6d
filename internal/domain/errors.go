package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLegacyFormat is returned by strict reads of a file without the envelope
var ErrLegacyFormat = errors.New("index file uses the legacy format without envelope")

// ErrMalformedIndex marks an index file that fails structural validation
var ErrMalformedIndex = errors.New("malformed index file")

// MalformedIndexError carries the structural issues that made a strict read fail
type MalformedIndexError struct {
	Path   string
	Issues []InvalidEntry
}

func (e *MalformedIndexError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, fmt.Sprintf("%s: %s", issue.Key, issue.Message))
	}
	return fmt.Sprintf("%s: %d structural issue(s): %s", e.Path, len(e.Issues), strings.Join(msgs, "; "))
}

func (e *MalformedIndexError) Is(target error) bool {
	return target == ErrMalformedIndex
}
