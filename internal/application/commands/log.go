package commands

import (
	"context"
	"errors"

	"jdex/internal/domain"
	"jdex/internal/ports"
)

// LogCommand lists recent index writes from the journal
type LogCommand struct {
	journal ports.Journal
	Limit   int
}

// NewLogCommand creates a new LogCommand
func NewLogCommand(journal ports.Journal, limit int) *LogCommand {
	return &LogCommand{journal: journal, Limit: limit}
}

// Execute returns up to Limit events, newest first
func (c *LogCommand) Execute(ctx context.Context) ([]domain.JournalEvent, error) {
	if c.journal == nil {
		return nil, errors.New("journal is disabled")
	}
	return c.journal.Recent(c.Limit)
}
