package jsonstore

import (
	"strings"
	"testing"
	"time"

	"jdex/internal/domain"
)

func TestDiff(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	before := &domain.IndexFile{
		Created: created,
		Updated: created,
		Entries: domain.Index{
			"10-19": domain.NewEntry(domain.EntryTypeArea, "Finance", ""),
			"11":    domain.NewEntry(domain.EntryTypeCategory, "Tax", "10-19"),
		},
	}
	current, err := Marshal(before)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	after := &domain.IndexFile{
		Created: created,
		Updated: created,
		Entries: domain.Index{
			"10-19": domain.NewEntry(domain.EntryTypeArea, "Finance", ""),
			"11":    domain.NewEntry(domain.EntryTypeCategory, "Taxes", "10-19"),
		},
	}

	diff, err := Diff(current, after, "a/.jdex.json", "b/.jdex.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"--- a/.jdex.json", "+++ b/.jdex.json", `-      "name": "Tax",`, `+      "name": "Taxes",`} {
		if !strings.Contains(diff, want) {
			t.Errorf("expected diff to contain %q, got:\n%s", want, diff)
		}
	}
}

func TestDiff_Unchanged(t *testing.T) {
	file := &domain.IndexFile{Entries: domain.Index{}}
	current, _ := Marshal(file)

	diff, err := Diff(current, file, "a", "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff != "" {
		t.Errorf("expected empty diff, got:\n%s", diff)
	}
}

func TestDiff_NewFile(t *testing.T) {
	diff, err := Diff(nil, &domain.IndexFile{Entries: domain.Index{}}, "a", "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(diff, "--- /dev/null") {
		t.Errorf("expected diff from /dev/null, got:\n%s", diff)
	}
}
