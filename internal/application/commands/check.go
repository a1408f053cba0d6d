package commands

import (
	"context"
	"fmt"

	"jdex/internal/application"
	"jdex/internal/domain"
	"jdex/internal/ports"
)

// Check compares index against the live tree under root. When raw is not
// nil it is validated structurally first and keys with issues are left out
// of the orphan and missing-on-disk passes. All four passes always run.
func Check(scanner ports.TreeScanner, root string, index domain.Index, raw any) (domain.CheckResult, error) {
	result := domain.CheckResult{
		InvalidEntries: []domain.InvalidEntry{},
		OrphanParents:  []domain.OrphanParent{},
		MissingOnDisk:  []string{},
		MissingInIndex: []domain.MissingFolder{},
	}

	invalid := map[string]bool{}
	if raw != nil {
		result.InvalidEntries = append(result.InvalidEntries, domain.ValidateRaw(raw)...)
		invalid = domain.InvalidKeys(result.InvalidEntries)
	}

	for _, key := range index.Keys() {
		if invalid[key] {
			continue
		}
		entry := index[key]

		if parent, ok := entry.ParentKey(); ok && !index.Has(parent) {
			result.OrphanParents = append(result.OrphanParents, domain.OrphanParent{Key: key, Parent: parent})
		}

		path := domain.ResolveEntryPath(root, index, key)
		exists, err := scanner.DirExists(path)
		if err != nil {
			return domain.CheckResult{}, err
		}
		if !exists {
			result.MissingOnDisk = append(result.MissingOnDisk, key)
		}
	}

	err := scanner.Walk(root, func(f domain.Folder) error {
		if !index.Has(f.Key) {
			result.MissingInIndex = append(result.MissingInIndex, domain.MissingFolder{
				Key:  f.Key,
				Name: f.Name,
				Type: f.Type,
			})
		}
		return nil
	})
	if err != nil {
		return domain.CheckResult{}, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	return result, nil
}

// CheckCommand reports drift between the index file and the directory tree
type CheckCommand struct {
	ws *application.Workspace

	// Structural validates the raw file and is on by default
	Structural bool
}

// NewCheckCommand creates a new CheckCommand with structural validation on
func NewCheckCommand(ws *application.Workspace) *CheckCommand {
	return &CheckCommand{ws: ws, Structural: true}
}

// Execute loads the index file and runs Check. With Structural set the file
// is read raw so malformed entries become findings instead of a read error.
func (c *CheckCommand) Execute(ctx context.Context) (*domain.CheckResult, error) {
	if err := c.ws.Validate(); err != nil {
		return nil, err
	}

	var index domain.Index
	var raw any
	if c.Structural {
		exists, err := c.ws.Store.Exists(c.ws.IndexPath)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("%w at %s (run rebuild first)", application.ErrNoIndex, c.ws.IndexPath)
		}
		raw, err = c.ws.Store.ReadRaw(c.ws.IndexPath)
		if err != nil {
			return nil, err
		}
		index = domain.IndexFromRaw(raw)
	} else {
		var err error
		if index, err = LoadIndex(c.ws); err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result, err := Check(c.ws.Scanner, c.ws.Root, index, raw)
	if err != nil {
		return nil, err
	}

	c.ws.Log().Info("index checked",
		"path", c.ws.IndexPath,
		"consistent", result.IsConsistent(),
		"invalid", len(result.InvalidEntries),
		"orphans", len(result.OrphanParents),
		"missingOnDisk", len(result.MissingOnDisk),
		"missingInIndex", len(result.MissingInIndex))

	return &result, nil
}
