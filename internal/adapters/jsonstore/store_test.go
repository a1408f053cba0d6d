package jsonstore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"jdex/internal/domain"
)

func testIndex() domain.Index {
	returns := domain.NewEntry(domain.EntryTypeID, "Returns", "11")
	returns.Description = "filed yearly"
	return domain.Index{
		"10-19": domain.NewEntry(domain.EntryTypeArea, "Finance", ""),
		"11":    domain.NewEntry(domain.EntryTypeCategory, "Tax", "10-19"),
		"11.01": returns,
		"2-9":   domain.NewEntry(domain.EntryTypeArea, "Odd", ""),
		"11.10": domain.NewEntry(domain.EntryTypeID, "Later", "11"),
		"11.02": domain.NewEntry(domain.EntryTypeID, "Receipts", "11"),
	}
}

func fixedStore(now time.Time) *Store {
	s := NewStore(nil)
	s.now = func() time.Time { return now }
	return s
}

func assertSameIndex(t *testing.T, want, got domain.Index) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for key, w := range want {
		g, ok := got[key]
		if !ok {
			t.Errorf("missing key %s", key)
			continue
		}
		wp, _ := w.ParentKey()
		gp, _ := g.ParentKey()
		if g.Type != w.Type || g.Name != w.Name || gp != wp || g.Description != w.Description {
			t.Errorf("entry %s: expected %+v, got %+v", key, w, g)
		}
		if (w.Parent == nil) != (g.Parent == nil) {
			t.Errorf("entry %s: parent nullness differs", key)
		}
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".jdex.json")
	store := NewStore(nil)

	file, err := store.Write(path, testIndex(), time.Time{})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if file.Updated.Before(file.Created) {
		t.Errorf("updated %v precedes created %v", file.Updated, file.Created)
	}

	got, err := store.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	assertSameIndex(t, testIndex(), got)

	strict, err := store.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strict.Created.Equal(file.Created) || !strict.Updated.Equal(file.Updated) {
		t.Errorf("timestamps changed: wrote %v/%v, read %v/%v",
			file.Created, file.Updated, strict.Created, strict.Updated)
	}
}

func TestWrite_PreservesCreated(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".jdex.json")
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := fixedStore(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	file, err := store.Write(path, testIndex(), created)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !file.Created.Equal(created) {
		t.Errorf("expected created %v, got %v", created, file.Created)
	}

	t.Run("updated never precedes created", func(t *testing.T) {
		future := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		file, err := store.Write(path, testIndex(), future)
		if err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		if !file.Updated.Equal(future) {
			t.Errorf("expected updated to be clamped to %v, got %v", future, file.Updated)
		}
	})
}

func TestWrite_NaturalKeyOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".jdex.json")
	index := testIndex()
	index["00-09"] = domain.NewEntry(domain.EntryTypeArea, "System", "")
	index["00.00"] = domain.NewEntry(domain.EntryTypeID, "Index", "00")
	if _, err := NewStore(nil).Write(path, index, time.Time{}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	order := []string{`"00-09"`, `"00.00"`, `"2-9"`, `"10-19"`, `"11"`, `"11.01"`, `"11.02"`, `"11.10"`}
	last := -1
	for _, key := range order {
		pos := strings.Index(content, key+":")
		if pos < 0 {
			t.Fatalf("key %s not found in\n%s", key, content)
		}
		if pos < last {
			t.Errorf("key %s written out of order", key)
		}
		last = pos
	}
	if !strings.Contains(content, `"parent": null`) {
		t.Error("expected area parent written as null")
	}
}

func TestWrite_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".jdex.json")
	store := NewStore(nil)

	for range 3 {
		if _, err := store.Write(path, testIndex(), time.Time{}); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the index file, got %d entries", len(entries))
	}
}

func TestRead_Legacy(t *testing.T) {
	dir := t.TempDir()
	legacy := filepath.Join(dir, "legacy.json")
	wrapped := filepath.Join(dir, "wrapped.json")

	content := `{
		"10-19": {"type": "area", "name": "Finance", "parent": null},
		"11": {"type": "category", "name": "Tax", "parent": "10-19", "description": "yearly"}
	}`
	if err := os.WriteFile(legacy, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	wrappedContent := `{"created":"2026-01-01T00:00:00.000Z","updated":"2026-01-01T00:00:00.000Z","entries":` + content + `}`
	if err := os.WriteFile(wrapped, []byte(wrappedContent), 0644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(nil)
	fromLegacy, err := store.Read(legacy)
	if err != nil {
		t.Fatalf("Read legacy failed: %v", err)
	}
	fromWrapped, err := store.Read(wrapped)
	if err != nil {
		t.Fatalf("Read wrapped failed: %v", err)
	}
	assertSameIndex(t, fromWrapped, fromLegacy)

	if _, err := store.ReadFile(legacy); !errors.Is(err, domain.ErrLegacyFormat) {
		t.Errorf("expected ErrLegacyFormat from strict read, got %v", err)
	}
}

func TestRead_ToleratesComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".jdex.json")
	content := `{
		// edited by hand
		"created": "2026-01-01T00:00:00.000Z",
		"updated": "2026-01-02T00:00:00.000Z",
		"entries": {
			"10-19": {"type": "area", "name": "Finance", "parent": null,},
		},
	}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	file, err := NewStore(nil).ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !file.Entries.Has("10-19") {
		t.Error("expected entry 10-19")
	}
}

func TestReadFile_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid json", `{"entries": `},
		{"missing name", `{"created":"2026-01-01T00:00:00Z","updated":"2026-01-01T00:00:00Z","entries":{"11":{"type":"category","parent":null}}}`},
		{"bad timestamp", `{"created":"soon","updated":"2026-01-01T00:00:00Z","entries":{}}`},
		{"offset timestamp", `{"created":"2026-01-01T02:00:00+02:00","updated":"2026-01-01T00:00:00Z","entries":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ".jdex.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := NewStore(nil).ReadFile(path)
			if !errors.Is(err, domain.ErrMalformedIndex) {
				t.Errorf("expected ErrMalformedIndex, got %v", err)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	_, err := NewStore(nil).Read(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestUpdateDescription(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".jdex.json")
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore(nil)
	if _, err := store.Write(path, testIndex(), created); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	t.Run("sets description", func(t *testing.T) {
		ok, err := store.UpdateDescription(path, "11", "all tax paperwork")
		if err != nil || !ok {
			t.Fatalf("UpdateDescription = (%v, %v)", ok, err)
		}
		file, err := store.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if file.Entries["11"].Description != "all tax paperwork" {
			t.Errorf("expected description set, got %q", file.Entries["11"].Description)
		}
		if !file.Created.Equal(created) {
			t.Errorf("expected created preserved, got %v", file.Created)
		}
	})

	t.Run("empty clears field", func(t *testing.T) {
		if _, err := store.UpdateDescription(path, "11.01", ""); err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(string(data), "filed yearly") {
			t.Error("expected description to be removed from file")
		}
	})

	t.Run("unknown key is a no-op", func(t *testing.T) {
		before, _ := os.ReadFile(path)
		ok, err := store.UpdateDescription(path, "99.99", "ghost")
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Error("expected false for unknown key")
		}
		after, _ := os.ReadFile(path)
		if string(before) != string(after) {
			t.Error("expected file untouched")
		}
	})
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".jdex.json")
	store := NewStore(nil)

	if ok, err := store.Exists(path); err != nil || ok {
		t.Errorf("expected (false, nil) before write, got (%v, %v)", ok, err)
	}
	if _, err := store.Write(path, domain.Index{}, time.Time{}); err != nil {
		t.Fatal(err)
	}
	if ok, err := store.Exists(path); err != nil || !ok {
		t.Errorf("expected (true, nil) after write, got (%v, %v)", ok, err)
	}
	if ok, _ := store.Exists(dir); ok {
		t.Error("expected a directory not to count as an index file")
	}
}
