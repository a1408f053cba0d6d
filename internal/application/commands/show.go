package commands

import (
	"context"

	"jdex/internal/application"
	"jdex/internal/domain"
	"jdex/internal/ports"
)

// EntryDetail is one entry with its resolved folder and direct children
type EntryDetail struct {
	domain.SearchResult
	Path     string                `json:"path"`
	Exists   bool                  `json:"exists"`
	Children []domain.SearchResult `json:"children,omitempty"`
}

// ShowCommand resolves a key to its folder path and related entries
type ShowCommand struct {
	ws  *application.Workspace
	Key string
}

// NewShowCommand creates a new ShowCommand
func NewShowCommand(ws *application.Workspace, key string) *ShowCommand {
	return &ShowCommand{ws: ws, Key: key}
}

// Validate checks the key shape
func (c *ShowCommand) Validate() error {
	return application.ValidateKey("key", c.Key)
}

// Execute looks the key up and checks its folder on disk
func (c *ShowCommand) Execute(ctx context.Context) (*EntryDetail, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	index, err := LoadIndex(c.ws)
	if err != nil {
		return nil, err
	}
	return Show(c.ws.Scanner, c.ws.Root, index, c.Key)
}

// Show builds the detail of key from an already loaded index
func Show(scanner ports.TreeScanner, root string, index domain.Index, key string) (*EntryDetail, error) {
	entry, err := lookupEntry(index, key)
	if err != nil {
		return nil, err
	}

	parent, _ := entry.ParentKey()
	path := domain.ResolveEntryPath(root, index, key)
	exists, err := scanner.DirExists(path)
	if err != nil {
		return nil, err
	}

	return &EntryDetail{
		SearchResult: domain.SearchResult{
			Key:         key,
			Type:        entry.Type,
			Name:        entry.Name,
			Parent:      parent,
			Description: entry.Description,
		},
		Path:     path,
		Exists:   exists,
		Children: domain.Children(index, key),
	}, nil
}

// ResolvePathCommand maps a key to its folder path under the root
type ResolvePathCommand struct {
	ws  *application.Workspace
	Key string
}

// NewResolvePathCommand creates a new ResolvePathCommand
func NewResolvePathCommand(ws *application.Workspace, key string) *ResolvePathCommand {
	return &ResolvePathCommand{ws: ws, Key: key}
}

// Execute returns the resolved path. Unknown keys fail with ErrNotFound;
// a broken parent chain yields a truncated path.
func (c *ResolvePathCommand) Execute(ctx context.Context) (string, error) {
	if err := application.ValidateKey("key", c.Key); err != nil {
		return "", err
	}
	index, err := LoadIndex(c.ws)
	if err != nil {
		return "", err
	}
	if _, err := lookupEntry(index, c.Key); err != nil {
		return "", err
	}
	return domain.ResolveEntryPath(c.ws.Root, index, c.Key), nil
}
