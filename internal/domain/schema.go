package domain

import (
	"fmt"
	"strings"
	"time"
)

// IssueScope tells whether a structural issue concerns the whole file or one entry
type IssueScope int

const (
	IssueScopeFile IssueScope = iota
	IssueScopeEntry
)

func (s IssueScope) String() string {
	if s == IssueScopeEntry {
		return "entry"
	}
	return "file"
}

// FileIssueKey is the key reported for file-level issues
const FileIssueKey = "(file)"

// InvalidEntry is one structural violation found in a raw index file
type InvalidEntry struct {
	Scope   IssueScope `json:"-"`
	Key     string     `json:"key"`
	Message string     `json:"error"`
}

// EnvelopeField is the field whose presence marks the wrapped file shape
const EnvelopeField = "entries"

// entryFields is the closed set of fields an entry object may carry
var entryFields = map[string]bool{"type": true, "name": true, "parent": true, "description": true}

// ValidateRaw checks a decoded JSON value (as produced by json.Unmarshal into
// an any) against the index file schema and returns every violation found.
// A file without the envelope is read as the legacy flat shape: its entries
// are still validated and one file-level issue asks for a rebuild.
func ValidateRaw(raw any) []InvalidEntry {
	var issues issueList

	root, ok := raw.(map[string]any)
	if !ok {
		issues.file("index file must be a JSON object")
		return issues.items
	}

	entries := root
	if value, wrapped := root[EnvelopeField]; wrapped {
		created := validateTimestamp(&issues, root, "created")
		updated := validateTimestamp(&issues, root, "updated")
		if !created.IsZero() && !updated.IsZero() && updated.Before(created) {
			issues.file("'updated' timestamp precedes 'created'")
		}

		entries, ok = value.(map[string]any)
		if !ok {
			issues.file("field 'entries' must be an object")
			return issues.items
		}
	} else {
		issues.file("missing envelope (legacy format), rebuild to upgrade")
	}

	for _, key := range sortedRawKeys(entries) {
		validateEntry(&issues, key, entries[key])
	}
	return issues.items
}

func validateTimestamp(issues *issueList, root map[string]any, field string) time.Time {
	s, ok := root[field].(string)
	if !ok {
		issues.file("invalid '%s' timestamp", field)
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		issues.file("invalid '%s' timestamp", field)
		return time.Time{}
	}
	if !strings.HasSuffix(s, "Z") {
		issues.file("'%s' timestamp must be UTC with a Z suffix", field)
		return time.Time{}
	}
	return ts
}

func validateEntry(issues *issueList, key string, value any) {
	obj, ok := value.(map[string]any)
	if !ok {
		issues.entry(key, "entry must be an object")
		return
	}

	switch t, present := obj["type"]; {
	case !present:
		issues.entry(key, "missing required field 'type'")
	default:
		s, isString := t.(string)
		if !isString || !EntryType(s).Valid() {
			issues.entry(key, "invalid type '%v'", t)
		}
	}

	switch n, present := obj["name"]; {
	case !present:
		issues.entry(key, "missing required field 'name'")
	default:
		s, isString := n.(string)
		if !isString {
			issues.entry(key, "field 'name' must be a string")
		} else if s == "" {
			issues.entry(key, "field 'name' must not be empty")
		}
	}

	switch p, present := obj["parent"]; {
	case !present:
		issues.entry(key, "missing required field 'parent'")
	case p == nil:
	default:
		if _, isString := p.(string); !isString {
			issues.entry(key, "field 'parent' must be a string or null")
		}
	}

	if d, present := obj["description"]; present {
		if _, isString := d.(string); !isString {
			issues.entry(key, "field 'description' must be a string")
		}
	}

	for _, field := range sortedRawKeys(obj) {
		if !entryFields[field] {
			issues.entry(key, "unrecognized field '%s'", field)
		}
	}
}

// InvalidKeys returns the set of entry keys with at least one structural issue
func InvalidKeys(issues []InvalidEntry) map[string]bool {
	keys := make(map[string]bool)
	for _, issue := range issues {
		if issue.Scope == IssueScopeEntry {
			keys[issue.Key] = true
		}
	}
	return keys
}

// IndexFromRaw extracts an Index from a decoded raw file without failing on
// malformed entries. Fields with the wrong JSON type are left empty; every key
// is kept so that membership tests still see it.
func IndexFromRaw(raw any) Index {
	index := make(Index)
	root, ok := raw.(map[string]any)
	if !ok {
		return index
	}

	entries := root
	if value, wrapped := root[EnvelopeField]; wrapped {
		if entries, ok = value.(map[string]any); !ok {
			return index
		}
	}

	for key, value := range entries {
		var entry Entry
		if obj, ok := value.(map[string]any); ok {
			if s, ok := obj["type"].(string); ok {
				entry.Type = EntryType(s)
			}
			if s, ok := obj["name"].(string); ok {
				entry.Name = s
			}
			if s, ok := obj["parent"].(string); ok {
				entry.Parent = &s
			}
			if s, ok := obj["description"].(string); ok {
				entry.Description = s
			}
		}
		index[key] = entry
	}
	return index
}

func sortedRawKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	SortKeys(keys)
	return keys
}

// issueList accumulates structural issues in discovery order
type issueList struct {
	items []InvalidEntry
}

func (l *issueList) file(format string, args ...any) {
	l.items = append(l.items, InvalidEntry{
		Scope:   IssueScopeFile,
		Key:     FileIssueKey,
		Message: fmt.Sprintf(format, args...),
	})
}

func (l *issueList) entry(key, format string, args ...any) {
	l.items = append(l.items, InvalidEntry{
		Scope:   IssueScopeEntry,
		Key:     key,
		Message: fmt.Sprintf(format, args...),
	})
}
