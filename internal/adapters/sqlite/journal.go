package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"jdex/internal/domain"
	"jdex/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// DefaultRetention is how many events are kept before the oldest are pruned
const DefaultRetention = 1000

// Journal implements ports.Journal using SQLite
type Journal struct {
	db        *sql.DB
	dbPath    string
	retention int
}

// Ensure Journal implements ports.Journal
var _ ports.Journal = (*Journal)(nil)

// NewJournal creates a journal; call Open before use
func NewJournal() *Journal {
	return &Journal{retention: DefaultRetention}
}

// Open initializes the database at dbPath, or at DefaultPath when empty
func (j *Journal) Open(dbPath string) error {
	if dbPath == "" {
		dbPath = DefaultPath()
	}
	j.dbPath = dbPath

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	j.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			root TEXT NOT NULL,
			index_path TEXT NOT NULL,
			entry_key TEXT NOT NULL DEFAULT '',
			entries INTEGER NOT NULL DEFAULT 0,
			added INTEGER NOT NULL DEFAULT 0,
			removed INTEGER NOT NULL DEFAULT 0,
			changed INTEGER NOT NULL DEFAULT 0,
			at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_events_at ON events(at);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup journal: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Path returns the database file in use
func (j *Journal) Path() string {
	return j.dbPath
}

// Close closes the database connection
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// Record appends an event and prunes the oldest beyond the retention limit
func (j *Journal) Record(event domain.JournalEvent) error {
	if event.At.IsZero() {
		event.At = time.Now()
	}

	tx, err := j.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin journal transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO events (kind, root, index_path, entry_key, entries, added, removed, changed, at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, string(event.Kind), event.Root, event.IndexPath, event.Key,
		event.Entries, event.Added, event.Removed, event.Changed, event.At.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}

	_, err = tx.Exec(`
		DELETE FROM events WHERE id NOT IN (
			SELECT id FROM events ORDER BY id DESC LIMIT ?
		)
	`, j.retention)
	if err != nil {
		return fmt.Errorf("failed to prune journal: %w", err)
	}

	return tx.Commit()
}

// Recent returns up to limit events, newest first
func (j *Journal) Recent(limit int) ([]domain.JournalEvent, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := j.db.Query(`
		SELECT id, kind, root, index_path, entry_key, entries, added, removed, changed, at
		FROM events ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query journal: %w", err)
	}
	defer rows.Close()

	var events []domain.JournalEvent
	for rows.Next() {
		var e domain.JournalEvent
		var kind string
		var at int64
		if err := rows.Scan(&e.ID, &kind, &e.Root, &e.IndexPath, &e.Key,
			&e.Entries, &e.Added, &e.Removed, &e.Changed, &at); err != nil {
			return nil, err
		}
		e.Kind = domain.EventKind(kind)
		e.At = time.UnixMilli(at)
		events = append(events, e)
	}

	return events, rows.Err()
}

// DefaultPath returns the journal location under the XDG data directory
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "jdex", "journal.db")
}
