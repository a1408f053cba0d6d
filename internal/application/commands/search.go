package commands

import (
	"context"
	"strings"

	"jdex/internal/application"
	"jdex/internal/domain"
)

// SearchCommand filters the index by entry type and a substring of key or name
type SearchCommand struct {
	ws   *application.Workspace
	Type string
	Term string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(ws *application.Workspace, entryType, term string) *SearchCommand {
	return &SearchCommand{ws: ws, Type: entryType, Term: term}
}

// Validate checks the requested entry type
func (c *SearchCommand) Validate() error {
	if err := application.ValidateRequired("entryType", c.Type); err != nil {
		return err
	}
	if _, err := domain.ParseEntryType(c.Type); err != nil {
		return &application.ValidationError{Field: "entryType", Message: err.Error()}
	}
	return nil
}

// Execute runs the search and returns results in natural key order
func (c *SearchCommand) Execute(ctx context.Context) ([]domain.SearchResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	index, err := LoadIndex(c.ws)
	if err != nil {
		return nil, err
	}

	t, _ := domain.ParseEntryType(c.Type)
	return domain.SearchIndex(index, t, strings.TrimSpace(c.Term)), nil
}

// FindCommand ranks all entries against a free-text query
type FindCommand struct {
	ws        *application.Workspace
	Query     string
	Threshold float64
	Type      string // optional
	Limit     int    // 0 means no limit
}

// NewFindCommand creates a new FindCommand
func NewFindCommand(ws *application.Workspace, query string, threshold float64) *FindCommand {
	return &FindCommand{ws: ws, Query: query, Threshold: threshold}
}

// Validate checks the threshold and optional type filter
func (c *FindCommand) Validate() error {
	if err := application.ValidateThreshold(c.Threshold); err != nil {
		return err
	}
	if c.Type != "" {
		if _, err := domain.ParseEntryType(c.Type); err != nil {
			return &application.ValidationError{Field: "entryType", Message: err.Error()}
		}
	}
	return nil
}

// Execute returns matches ordered by descending score
func (c *FindCommand) Execute(ctx context.Context) ([]domain.FuzzyMatch, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	index, err := LoadIndex(c.ws)
	if err != nil {
		return nil, err
	}
	return Find(index, c.Query, c.Threshold, c.Type, c.Limit), nil
}

// Find runs the fuzzy search on an already loaded index. An unknown type
// string is ignored.
func Find(index domain.Index, query string, threshold float64, entryType string, limit int) []domain.FuzzyMatch {
	opts := domain.FuzzyOptions{Threshold: threshold}
	if t, err := domain.ParseEntryType(entryType); err == nil {
		opts.Type = t
	}

	matches := domain.FuzzySearch(index, query, opts)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
