package commands

import (
	"context"
	"strings"

	"jdex/internal/application"
	"jdex/internal/domain"
)

// DescribeResult contains the result of a description edit
type DescribeResult struct {
	Key         string
	Description string
	Cleared     bool
}

// DescribeCommand sets or clears the description of one indexed entry
type DescribeCommand struct {
	ws          *application.Workspace
	Key         string
	Description string
}

// NewDescribeCommand creates a new DescribeCommand; an empty description
// clears the field
func NewDescribeCommand(ws *application.Workspace, key, description string) *DescribeCommand {
	return &DescribeCommand{ws: ws, Key: key, Description: description}
}

// Validate checks the key shape
func (c *DescribeCommand) Validate() error {
	if err := c.ws.Validate(); err != nil {
		return err
	}
	return application.ValidateKey("key", c.Key)
}

// Execute rewrites the index file with the new description
func (c *DescribeCommand) Execute(ctx context.Context) (*DescribeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	exists, err := c.ws.Store.Exists(c.ws.IndexPath)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, application.ErrNoIndex
	}

	description := strings.TrimSpace(c.Description)
	updated, err := c.ws.Store.UpdateDescription(c.ws.IndexPath, c.Key, description)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, &application.KeyError{Key: c.Key, Reason: application.ErrNotFound}
	}

	c.ws.Log().Info("description updated", "key", c.Key, "cleared", description == "")
	c.ws.RecordEvent(domain.JournalEvent{Kind: domain.EventDescribe, Key: c.Key})

	return &DescribeResult{
		Key:         c.Key,
		Description: description,
		Cleared:     description == "",
	}, nil
}
