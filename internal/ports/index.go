package ports

import (
	"time"

	"jdex/internal/domain"
)

// IndexStore persists an index together with its provenance timestamps.
// Implementations are single-writer: concurrent writers race and the last
// one wins.
type IndexStore interface {
	// Write replaces the file at path. A zero created stamps a first write.
	Write(path string, entries domain.Index, created time.Time) (*domain.IndexFile, error)

	// Read accepts both the envelope and the legacy flat shape
	Read(path string) (domain.Index, error)

	// ReadFile is the strict read: envelope required, schema enforced
	ReadFile(path string) (*domain.IndexFile, error)

	// ReadRaw decodes the file without interpreting it, for structural checks
	ReadRaw(path string) (any, error)

	// UpdateDescription sets or clears (empty string) one entry's description.
	// It reports false without writing when key is not indexed.
	UpdateDescription(path, key, description string) (bool, error)

	// Exists reports whether an index file is present at path
	Exists(path string) (bool, error)
}

// Journal keeps a history of index writes
type Journal interface {
	Record(event domain.JournalEvent) error
	Recent(limit int) ([]domain.JournalEvent, error)
	Close() error
}
