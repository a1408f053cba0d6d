package cmd

import (
	"fmt"
	"io"

	"jdex/internal/domain"
)

// printKeys prints one line per key, with the entry name when index has it
func printKeys(w io.Writer, prefix string, keys []string, index domain.Index) {
	for _, key := range keys {
		if entry, ok := index[key]; ok {
			fmt.Fprintf(w, "  %s %s %s\n", prefix, key, entry.Name)
			continue
		}
		fmt.Fprintf(w, "  %s %s\n", prefix, key)
	}
}

func printResult(w io.Writer, r domain.SearchResult) {
	fmt.Fprintf(w, "[%s] %s %s", r.Type, r.Key, r.Name)
	if r.Description != "" {
		fmt.Fprintf(w, " - %s", r.Description)
	}
	fmt.Fprintln(w)
}
