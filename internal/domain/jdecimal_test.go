package domain

import (
	"encoding/json"
	"testing"
)

func TestIsValidKey(t *testing.T) {
	tests := []struct {
		key   string
		level int
		want  bool
	}{
		// Areas
		{"10-19", 0, true},
		{"10-19", 1, false},
		{"10-19", 2, false},
		{"00-09", 0, true},
		{"1-19", 0, false},

		// Categories
		{"11", 1, true},
		{"11", 0, false},
		{"11", 2, false},
		{"1", 1, false},
		{"111", 1, false},

		// IDs
		{"11.01", 2, true},
		{"11.01+A3", 2, true},
		{"22.00+0001", 2, true},
		{"11.01", 0, false},
		{"11.01", 1, false},
		{"11.01+A3", 1, false},
		{"22.00+0001", 0, false},
		{"11.01+", 2, false},
		{"11.01+A-3", 2, false},

		// Single-digit sequence is invalid everywhere
		{"11.1", 0, false},
		{"11.1", 1, false},
		{"11.1", 2, false},

		// Unknown levels
		{"11", -1, false},
		{"11.01", 3, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := IsValidKey(tt.key, tt.level); got != tt.want {
				t.Errorf("IsValidKey(%q, %d) = %v, expected %v", tt.key, tt.level, got, tt.want)
			}
		})
	}
}

func TestParseFolderName(t *testing.T) {
	tests := []struct {
		folder   string
		wantKey  string
		wantName string
	}{
		{"10-19 Finance", "10-19", "Finance"},
		{"11 Tax", "11", "Tax"},
		{"11.01 Tax Returns 2024", "11.01", "Tax Returns 2024"},
		{"11.01  Double", "11.01", " Double"},
		{"11", "11", "11"},
		{"10-19 ", "10-19", "10-19"},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.folder, func(t *testing.T) {
			key, name := ParseFolderName(tt.folder)
			if key != tt.wantKey || name != tt.wantName {
				t.Errorf("ParseFolderName(%q) = (%q, %q), expected (%q, %q)",
					tt.folder, key, name, tt.wantKey, tt.wantName)
			}
		})
	}
}

func TestParseFolderName_RoundTrip(t *testing.T) {
	folders := []string{"10-19 Finance", "11 Tax", "11.01 Returns", "11.01+A3 Scans of receipts"}

	for _, folder := range folders {
		key, name := ParseFolderName(folder)
		if got := FormatFolderName(key, name); got != folder {
			t.Errorf("round trip of %q gave %q", folder, got)
		}
	}
}

func TestTypeForLevel(t *testing.T) {
	for level, want := range []EntryType{EntryTypeArea, EntryTypeCategory, EntryTypeID} {
		got, ok := TypeForLevel(level)
		if !ok || got != want {
			t.Errorf("TypeForLevel(%d) = (%q, %v), expected %q", level, got, ok, want)
		}
		if got.Level() != level {
			t.Errorf("%q.Level() = %d, expected %d", got, got.Level(), level)
		}
	}

	if _, ok := TypeForLevel(3); ok {
		t.Error("expected level 3 to have no type")
	}
}

func TestKeyType(t *testing.T) {
	tests := []struct {
		key    string
		want   EntryType
		wantOK bool
	}{
		{"10-19", EntryTypeArea, true},
		{"11", EntryTypeCategory, true},
		{"11.01+A3", EntryTypeID, true},
		{"not-a-key", "", false},
	}

	for _, tt := range tests {
		got, ok := KeyType(tt.key)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("KeyType(%q) = (%q, %v), expected (%q, %v)", tt.key, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseEntryType(t *testing.T) {
	if got, err := ParseEntryType(" Category "); err != nil || got != EntryTypeCategory {
		t.Errorf("expected category, got %q (err %v)", got, err)
	}
	if _, err := ParseEntryType("scope"); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestEntryType_UnmarshalJSON(t *testing.T) {
	var e Entry
	if err := json.Unmarshal([]byte(`{"type":"id","name":"Returns","parent":"11"}`), &e); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.Type != EntryTypeID {
		t.Errorf("expected id, got %q", e.Type)
	}

	if err := json.Unmarshal([]byte(`{"type":"folder","name":"x","parent":null}`), &e); err == nil {
		t.Error("expected error for unknown entry type")
	}
}
