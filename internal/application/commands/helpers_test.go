package commands

import (
	"os"
	"path/filepath"
	"testing"

	"jdex/internal/adapters/filesystem"
	"jdex/internal/adapters/jsonstore"
	"jdex/internal/application"
	"jdex/internal/domain"
)

// memJournal records events in memory
type memJournal struct {
	events []domain.JournalEvent
}

func (j *memJournal) Record(e domain.JournalEvent) error {
	j.events = append([]domain.JournalEvent{e}, j.events...)
	return nil
}

func (j *memJournal) Recent(limit int) ([]domain.JournalEvent, error) {
	if limit > 0 && len(j.events) > limit {
		return j.events[:limit], nil
	}
	return j.events, nil
}

func (j *memJournal) Close() error { return nil }

func mkdirs(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		if err := os.MkdirAll(filepath.Join(root, p), 0755); err != nil {
			t.Fatalf("failed to create %s: %v", p, err)
		}
	}
}

// newTestWorkspace builds a workspace over a fresh JD tree containing
// 10-19 Finance/11 Tax/11.01 Returns
func newTestWorkspace(t *testing.T) (*application.Workspace, *memJournal) {
	t.Helper()
	root := t.TempDir()
	mkdirs(t, root, filepath.Join("10-19 Finance", "11 Tax", "11.01 Returns"))

	journal := &memJournal{}
	return &application.Workspace{
		Root:      root,
		IndexPath: filepath.Join(root, ".jdex.json"),
		Store:     jsonstore.NewStore(nil),
		Scanner:   filesystem.NewScanner(nil),
		Journal:   journal,
	}, journal
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func sameKeys(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
