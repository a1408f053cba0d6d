package domain

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// EntryType represents the level of a Johnny Decimal node
type EntryType string

const (
	EntryTypeArea     EntryType = "area"     // 10-19
	EntryTypeCategory EntryType = "category" // 11
	EntryTypeID       EntryType = "id"       // 11.01, 11.01+A3
)

// MaxDepth is the number of directory levels below the root that are indexed
const MaxDepth = 3

var (
	areaRegex     = regexp.MustCompile(`^[0-9]{2}-[0-9]{2}$`)
	categoryRegex = regexp.MustCompile(`^[0-9]{2}$`)
	idRegex       = regexp.MustCompile(`^[0-9]{2}\.[0-9]{2}(\+[A-Za-z0-9]+)?$`)
)

var levelTypes = [MaxDepth]EntryType{EntryTypeArea, EntryTypeCategory, EntryTypeID}

var levelPatterns = [MaxDepth]*regexp.Regexp{areaRegex, categoryRegex, idRegex}

// Valid reports whether t is one of the three known entry types
func (t EntryType) Valid() bool {
	return t.Level() >= 0
}

// Level returns the tree depth of t (0 for areas), or -1 if t is unknown
func (t EntryType) Level() int {
	for level, lt := range levelTypes {
		if lt == t {
			return level
		}
	}
	return -1
}

// UnmarshalJSON rejects type values outside the known set
func (t *EntryType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("entry type must be a string: %w", err)
	}
	parsed, err := ParseEntryType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseEntryType converts user input ("area", "category", "id") to an EntryType
func ParseEntryType(s string) (EntryType, error) {
	t := EntryType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("invalid entry type %q (expected area, category or id)", s)
	}
	return t, nil
}

// TypeForLevel returns the entry type indexed at the given tree depth
func TypeForLevel(level int) (EntryType, bool) {
	if level < 0 || level >= MaxDepth {
		return "", false
	}
	return levelTypes[level], true
}

// ParseFolderName splits a folder name at its first space. A name with
// nothing after the key uses the key as its display name.
// e.g., "10-19 Finance" -> ("10-19", "Finance"); "11" and "11 " -> ("11", "11")
func ParseFolderName(name string) (key, displayName string) {
	key, displayName, _ = strings.Cut(name, " ")
	if displayName == "" {
		return key, key
	}
	return key, displayName
}

// IsValidKey reports whether key matches the pattern for the given tree depth.
// Unknown levels never match.
func IsValidKey(key string, level int) bool {
	if level < 0 || level >= MaxDepth {
		return false
	}
	return levelPatterns[level].MatchString(key)
}

// KeyType returns the entry type whose pattern key matches, if any
func KeyType(key string) (EntryType, bool) {
	for level, t := range levelTypes {
		if IsValidKey(key, level) {
			return t, true
		}
	}
	return "", false
}

// FormatFolderName creates a folder name from key and display name
func FormatFolderName(key, name string) string {
	return fmt.Sprintf("%s %s", key, name)
}
