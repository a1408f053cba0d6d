package application

import (
	"log/slog"

	"jdex/internal/domain"
	"jdex/internal/ports"
)

// Re-export entry types for use by adapters
type EntryType = domain.EntryType

const (
	EntryTypeArea     = domain.EntryTypeArea
	EntryTypeCategory = domain.EntryTypeCategory
	EntryTypeID       = domain.EntryTypeID
)

// Re-export domain types for use by adapters
type (
	Entry        = domain.Entry
	Index        = domain.Index
	IndexFile    = domain.IndexFile
	IndexDiff    = domain.IndexDiff
	SearchResult = domain.SearchResult
	FuzzyMatch   = domain.FuzzyMatch
	CheckResult  = domain.CheckResult
	JournalEvent = domain.JournalEvent
)

// ParseEntryType converts user input to an EntryType
func ParseEntryType(s string) (EntryType, error) {
	return domain.ParseEntryType(s)
}

// Workspace bundles the collaborators and the plain root/index inputs that
// every command operates on
type Workspace struct {
	Root      string
	IndexPath string

	Store   ports.IndexStore
	Scanner ports.TreeScanner
	Journal ports.Journal // optional
	Logger  *slog.Logger  // optional
}

// Log returns the workspace logger or slog.Default
func (w *Workspace) Log() *slog.Logger {
	if w.Logger == nil {
		return slog.Default()
	}
	return w.Logger
}

// Validate checks that the workspace is usable
func (w *Workspace) Validate() error {
	if err := ValidateRequired("root", w.Root); err != nil {
		return err
	}
	return ValidateRequired("indexPath", w.IndexPath)
}

// RecordEvent journals event when a journal is configured. Failures are
// logged and never fail the calling command.
func (w *Workspace) RecordEvent(event domain.JournalEvent) {
	if w.Journal == nil {
		return
	}
	event.Root = w.Root
	event.IndexPath = w.IndexPath
	if err := w.Journal.Record(event); err != nil {
		w.Log().Warn("failed to record journal event", "kind", event.Kind, "error", err)
	}
}
