package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jdex/internal/application"
	"jdex/internal/domain"
)

// RebuildResult contains the outcome of a rebuild
type RebuildResult struct {
	Previous *domain.IndexFile // nil when no index existed
	File     *domain.IndexFile
	Diff     domain.IndexDiff
	Legacy   bool // the previous file used the legacy shape
	Written  bool
}

// RebuildCommand regenerates the index from the directory tree, keeping
// descriptions and the original created timestamp
type RebuildCommand struct {
	ws     *application.Workspace
	DryRun bool
}

// NewRebuildCommand creates a new RebuildCommand
func NewRebuildCommand(ws *application.Workspace, dryRun bool) *RebuildCommand {
	return &RebuildCommand{ws: ws, DryRun: dryRun}
}

// Validate checks if the rebuild can run
func (c *RebuildCommand) Validate() error {
	if err := c.ws.Validate(); err != nil {
		return err
	}
	ok, err := c.ws.Scanner.DirExists(c.ws.Root)
	if err != nil {
		return err
	}
	if !ok {
		return &application.ValidationError{
			Field:   "root",
			Message: fmt.Sprintf("not a directory: %s", c.ws.Root),
		}
	}
	return nil
}

// Execute builds the new index and writes it unless DryRun is set.
// An existing file that fails the strict read aborts the rebuild; the legacy
// shape is upgraded in place.
func (c *RebuildCommand) Execute(ctx context.Context) (*RebuildResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	result := &RebuildResult{}
	previous, legacy, err := c.readPrevious()
	if err != nil {
		return nil, err
	}
	result.Previous = previous
	result.Legacy = legacy

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var prior domain.Index
	var created time.Time
	if previous != nil {
		prior = previous.Entries
		created = previous.Created
	}

	next, err := c.ws.Scanner.BuildIndex(c.ws.Root, prior)
	if err != nil {
		return nil, err
	}
	result.Diff = domain.DiffIndexes(prior, next)

	if c.DryRun {
		result.File = &domain.IndexFile{Created: created, Entries: next}
		return result, nil
	}

	file, err := c.ws.Store.Write(c.ws.IndexPath, next, created)
	if err != nil {
		return nil, fmt.Errorf("failed to write index: %w", err)
	}
	result.File = file
	result.Written = true

	c.ws.Log().Info("index rebuilt",
		"path", c.ws.IndexPath,
		"entries", len(next),
		"added", len(result.Diff.Added),
		"removed", len(result.Diff.Removed),
		"changed", len(result.Diff.Changed))

	c.ws.RecordEvent(domain.JournalEvent{
		Kind:    domain.EventRebuild,
		Entries: len(next),
		Added:   len(result.Diff.Added),
		Removed: len(result.Diff.Removed),
		Changed: len(result.Diff.Changed),
		At:      file.Updated,
	})

	return result, nil
}

func (c *RebuildCommand) readPrevious() (*domain.IndexFile, bool, error) {
	exists, err := c.ws.Store.Exists(c.ws.IndexPath)
	if err != nil || !exists {
		return nil, false, err
	}

	file, err := c.ws.Store.ReadFile(c.ws.IndexPath)
	if err == nil {
		return file, false, nil
	}
	if !errors.Is(err, domain.ErrLegacyFormat) {
		return nil, false, fmt.Errorf("refusing to overwrite unreadable index: %w", err)
	}

	entries, err := c.ws.Store.Read(c.ws.IndexPath)
	if err != nil {
		return nil, false, fmt.Errorf("refusing to overwrite unreadable index: %w", err)
	}
	c.ws.Log().Info("upgrading legacy index file", "path", c.ws.IndexPath)
	return &domain.IndexFile{Entries: entries}, true, nil
}
