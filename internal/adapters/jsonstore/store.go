package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/tidwall/jsonc"

	"jdex/internal/domain"
	"jdex/internal/ports"
)

// Store implements ports.IndexStore on a single JSON file
type Store struct {
	logger *slog.Logger
	now    func() time.Time
}

var _ ports.IndexStore = (*Store)(nil)

// NewStore creates a JSON index store; a nil logger uses slog.Default
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{logger: logger, now: time.Now}
}

// Write stamps and atomically replaces the index file at path
func (s *Store) Write(path string, entries domain.Index, created time.Time) (*domain.IndexFile, error) {
	now := s.now().UTC().Truncate(time.Millisecond)
	if created.IsZero() {
		created = now
	}
	updated := now
	if updated.Before(created) {
		updated = created
	}

	file := &domain.IndexFile{Created: created, Updated: updated, Entries: entries}
	data, err := Marshal(file)
	if err != nil {
		return nil, err
	}
	if err := writeAtomic(path, data); err != nil {
		return nil, err
	}

	s.logger.Debug("wrote index", "path", path, "entries", len(entries))
	return file, nil
}

// Read loads the entries of either file shape
func (s *Store) Read(path string) (domain.Index, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	decoded, err := decode(data)
	if err != nil {
		return nil, malformed(path, err)
	}
	if decoded.legacy {
		s.logger.Debug("read legacy index file", "path", path)
	}
	return decoded.file.Entries, nil
}

// ReadFile loads the full envelope. A legacy file fails with
// domain.ErrLegacyFormat and schema violations with *domain.MalformedIndexError.
func (s *Store) ReadFile(path string) (*domain.IndexFile, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, malformed(path, err)
	}
	if obj, ok := raw.(map[string]any); ok {
		if _, wrapped := obj[domain.EnvelopeField]; !wrapped {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrLegacyFormat)
		}
	}
	if issues := domain.ValidateRaw(raw); len(issues) > 0 {
		return nil, &domain.MalformedIndexError{Path: path, Issues: issues}
	}

	decoded, err := decode(data)
	if err != nil {
		return nil, malformed(path, err)
	}
	return &decoded.file, nil
}

// ReadRaw decodes the file into plain maps and slices
func (s *Store) ReadRaw(path string) (any, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, malformed(path, err)
	}
	return raw, nil
}

// UpdateDescription rewrites one entry's description, preserving created
func (s *Store) UpdateDescription(path, key, description string) (bool, error) {
	file, err := s.ReadFile(path)
	if err != nil {
		return false, err
	}

	entry, ok := file.Entries[key]
	if !ok {
		return false, nil
	}
	entry.Description = description
	file.Entries[key] = entry

	if _, err := s.Write(path, file.Entries, file.Created); err != nil {
		return false, err
	}
	return true, nil
}

// Exists reports whether a regular file is present at path
func (s *Store) Exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return info.Mode().IsRegular(), nil
}

// readFile returns the file content with comments and trailing commas removed
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	}
	return jsonc.ToJSON(data), nil
}

func malformed(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrMalformedIndex, path, err)
}

// decodedFile is the tagged union of the two persisted shapes
type decodedFile struct {
	legacy bool
	file   domain.IndexFile
}

func decode(data []byte) (decodedFile, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return decodedFile{}, err
	}

	if _, wrapped := top[domain.EnvelopeField]; wrapped {
		var envelope struct {
			Created json.RawMessage `json:"created"`
			Updated json.RawMessage `json:"updated"`
			Entries domain.Index    `json:"entries"`
		}
		if err := json.Unmarshal(data, &envelope); err != nil {
			return decodedFile{}, err
		}
		if envelope.Entries == nil {
			envelope.Entries = make(domain.Index)
		}
		return decodedFile{file: domain.IndexFile{
			Created: parseStamp(envelope.Created),
			Updated: parseStamp(envelope.Updated),
			Entries: envelope.Entries,
		}}, nil
	}

	entries := make(domain.Index)
	if err := json.Unmarshal(data, &entries); err != nil {
		return decodedFile{}, err
	}
	return decodedFile{legacy: true, file: domain.IndexFile{Entries: entries}}, nil
}

// parseStamp returns the zero time for a missing or malformed timestamp.
// Strict reads have already rejected those.
func parseStamp(raw json.RawMessage) time.Time {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Marshal renders file in its persisted form with entries in natural key order
func Marshal(file *domain.IndexFile) ([]byte, error) {
	envelope := struct {
		Created time.Time    `json:"created"`
		Updated time.Time    `json:"updated"`
		Entries orderedIndex `json:"entries"`
	}{file.Created, file.Updated, orderedIndex(file.Entries)}

	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode index: %w", err)
	}
	return append(data, '\n'), nil
}

// orderedIndex marshals its keys in natural order instead of byte order
type orderedIndex domain.Index

func (o orderedIndex) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range domain.Index(o).Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(o[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeAtomic writes data to a hidden temp file next to path and renames it
// over path
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	f, err := os.CreateTemp(dir, ".jdex-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := f.Name()

	success := false
	defer func() {
		if !success {
			f.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync index: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to set index permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace index: %w", err)
	}

	success = true
	return nil
}
