package domain

import (
	"time"
)

// Entry is one indexed Johnny Decimal node.
// Description is user-authored and is the only field not derived from the
// directory tree.
type Entry struct {
	Type        EntryType `json:"type"`
	Name        string    `json:"name"`
	Parent      *string   `json:"parent"`
	Description string    `json:"description,omitempty"`
}

// NewEntry builds an entry; an empty parent means a top-level area
func NewEntry(t EntryType, name, parent string) Entry {
	e := Entry{Type: t, Name: name}
	if parent != "" {
		e.Parent = &parent
	}
	return e
}

// ParentKey returns the parent key and whether one is set
func (e Entry) ParentKey() (string, bool) {
	if e.Parent == nil {
		return "", false
	}
	return *e.Parent, true
}

// Index maps a JD key to its entry
type Index map[string]Entry

// Keys returns all keys in natural order
func (idx Index) Keys() []string {
	keys := make([]string, 0, len(idx))
	for k := range idx {
		keys = append(keys, k)
	}
	SortKeys(keys)
	return keys
}

// Has reports whether key is indexed
func (idx Index) Has(key string) bool {
	_, ok := idx[key]
	return ok
}

// Clone returns a copy that shares no parent pointers with idx
func (idx Index) Clone() Index {
	out := make(Index, len(idx))
	for k, e := range idx {
		if e.Parent != nil {
			p := *e.Parent
			e.Parent = &p
		}
		out[k] = e
	}
	return out
}

// IndexFile is the persisted envelope around an Index
type IndexFile struct {
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
	Entries Index     `json:"entries"`
}

// MergeDescriptions returns a copy of next where every key that also exists in
// prior with a non-empty description carries that description forward. Keys
// only present in prior are dropped.
func MergeDescriptions(next, prior Index) Index {
	merged := next.Clone()
	for key, entry := range merged {
		old, ok := prior[key]
		if !ok || old.Description == "" {
			continue
		}
		entry.Description = old.Description
		merged[key] = entry
	}
	return merged
}

// IndexDiff lists the structural differences between two indexes
type IndexDiff struct {
	Added   []string // keys only in the new index
	Removed []string // keys only in the old index
	Changed []string // keys whose type, name or parent differ
}

// Empty reports whether the two indexes are structurally identical
func (d IndexDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// DiffIndexes compares prior and next by key. Descriptions are ignored.
func DiffIndexes(prior, next Index) IndexDiff {
	var diff IndexDiff
	for _, key := range next.Keys() {
		old, ok := prior[key]
		if !ok {
			diff.Added = append(diff.Added, key)
			continue
		}
		if !sameStructure(old, next[key]) {
			diff.Changed = append(diff.Changed, key)
		}
	}
	for _, key := range prior.Keys() {
		if !next.Has(key) {
			diff.Removed = append(diff.Removed, key)
		}
	}
	return diff
}

func sameStructure(a, b Entry) bool {
	if a.Type != b.Type || a.Name != b.Name {
		return false
	}
	ap, aok := a.ParentKey()
	bp, bok := b.ParentKey()
	return aok == bok && ap == bp
}

// Folder is a valid JD directory found while walking the live tree
type Folder struct {
	Key    string
	Name   string
	Type   EntryType
	Parent string // empty for areas
	Path   string
	Level  int
}

// Entry converts the folder to its index entry
func (f Folder) Entry() Entry {
	return NewEntry(f.Type, f.Name, f.Parent)
}
