package domain

import "strings"

// SearchResult is a flattened index entry, the unit every lookup returns
type SearchResult struct {
	Key         string    `json:"key"`
	Type        EntryType `json:"type"`
	Name        string    `json:"name"`
	Parent      string    `json:"parent,omitempty"`
	Description string    `json:"description,omitempty"`
}

func newSearchResult(key string, e Entry) SearchResult {
	parent, _ := e.ParentKey()
	return SearchResult{
		Key:         key,
		Type:        e.Type,
		Name:        e.Name,
		Parent:      parent,
		Description: e.Description,
	}
}

// AllEntries returns every entry of the index in natural key order
func AllEntries(index Index) []SearchResult {
	keys := index.Keys()
	results := make([]SearchResult, 0, len(keys))
	for _, key := range keys {
		results = append(results, newSearchResult(key, index[key]))
	}
	return results
}

// SearchIndex returns the entries of type t whose key or name contains term,
// case-insensitively, in natural key order. An empty term matches every entry
// of that type.
func SearchIndex(index Index, t EntryType, term string) []SearchResult {
	lowerTerm := strings.ToLower(term)

	var results []SearchResult
	for _, key := range index.Keys() {
		entry := index[key]
		if entry.Type != t {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(key), lowerTerm) &&
			!strings.Contains(strings.ToLower(entry.Name), lowerTerm) {
			continue
		}
		results = append(results, newSearchResult(key, entry))
	}
	return results
}

// Children returns the entries whose parent is key, in natural key order
func Children(index Index, key string) []SearchResult {
	var results []SearchResult
	for _, k := range index.Keys() {
		if parent, ok := index[k].ParentKey(); ok && parent == key {
			results = append(results, newSearchResult(k, index[k]))
		}
	}
	return results
}

// Roots returns the entries that have no parent in the index: areas and
// orphans
func Roots(index Index) []SearchResult {
	var results []SearchResult
	for _, k := range index.Keys() {
		if parent, ok := index[k].ParentKey(); !ok || !index.Has(parent) {
			results = append(results, newSearchResult(k, index[k]))
		}
	}
	return results
}
