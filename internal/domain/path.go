package domain

import (
	"path/filepath"
	"slices"
)

// ResolveEntryPath rebuilds the folder path of key by walking its parent
// chain, one "<key> <name>" segment per level. The walk stops silently at the
// first key missing from the index (or at a repeated key), so orphaned and
// stale references yield a truncated path rather than an error.
func ResolveEntryPath(root string, index Index, key string) string {
	var segments []string
	seen := make(map[string]bool)

	current := key
	for {
		entry, ok := index[current]
		if !ok || seen[current] {
			break
		}
		seen[current] = true
		segments = append(segments, FormatFolderName(current, entry.Name))

		parent, ok := entry.ParentKey()
		if !ok {
			break
		}
		current = parent
	}

	slices.Reverse(segments)
	return filepath.Join(append([]string{root}, segments...)...)
}
