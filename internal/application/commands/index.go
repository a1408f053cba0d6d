package commands

import (
	"errors"
	"fmt"

	"jdex/internal/application"
	"jdex/internal/domain"
)

// LoadIndex reads the workspace index leniently, accepting both file shapes
func LoadIndex(ws *application.Workspace) (domain.Index, error) {
	if err := ws.Validate(); err != nil {
		return nil, err
	}

	exists, err := ws.Store.Exists(ws.IndexPath)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w at %s (run rebuild first)", application.ErrNoIndex, ws.IndexPath)
	}

	index, err := ws.Store.Read(ws.IndexPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load index: %w", err)
	}
	return index, nil
}

// lookupEntry returns the entry for key or a KeyError wrapping ErrNotFound
func lookupEntry(index domain.Index, key string) (domain.Entry, error) {
	entry, ok := index[key]
	if !ok {
		return domain.Entry{}, &application.KeyError{Key: key, Reason: application.ErrNotFound}
	}
	return entry, nil
}

// IsNotFound reports whether err means a key or index file was not found
func IsNotFound(err error) bool {
	return errors.Is(err, application.ErrNotFound) || errors.Is(err, application.ErrNoIndex)
}
