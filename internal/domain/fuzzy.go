package domain

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// DefaultFuzzyThreshold accepts matches whose characters are at least 60%
// contiguous in the matched field
const DefaultFuzzyThreshold = 0.4

// Field weights applied when ranking a match
const (
	keyWeight         = 0.6
	nameWeight        = 0.4
	descriptionWeight = 0.2
)

// FuzzyOptions tunes FuzzySearch
type FuzzyOptions struct {
	// Threshold in [0,1]: 0 keeps only contiguous matches, 1 keeps any
	// in-order subsequence match.
	Threshold float64
	// Type restricts results to one entry type when set.
	Type EntryType
}

// FuzzyMatch is a search result with its relevance
type FuzzyMatch struct {
	SearchResult
	Score float64 `json:"score"`
}

type fuzzyField struct {
	weight float64
	text   func(SearchResult) string
}

var fuzzyFields = []fuzzyField{
	{keyWeight, func(r SearchResult) string { return r.Key }},
	{nameWeight, func(r SearchResult) string { return r.Name }},
	{descriptionWeight, func(r SearchResult) string { return r.Description }},
}

// FuzzySearch ranks every entry against query across key, name and
// description. An empty query returns all entries in key order.
func FuzzySearch(index Index, query string, opts FuzzyOptions) []FuzzyMatch {
	var entries []SearchResult
	for _, e := range AllEntries(index) {
		if opts.Type == "" || e.Type == opts.Type {
			entries = append(entries, e)
		}
	}

	query = strings.TrimSpace(query)
	if query == "" {
		matches := make([]FuzzyMatch, len(entries))
		for i, e := range entries {
			matches[i] = FuzzyMatch{SearchResult: e}
		}
		return matches
	}

	minRatio := 1 - min(max(opts.Threshold, 0), 1)
	patternLen := utf8.RuneCountInString(query)

	scores := make([]float64, len(entries))
	accepted := make([]bool, len(entries))
	for _, field := range fuzzyFields {
		texts := make([]string, len(entries))
		for i, e := range entries {
			texts[i] = field.text(e)
		}
		for _, m := range fuzzy.FindNoSort(query, texts) {
			ratio := compactness(m, patternLen)
			if ratio < minRatio {
				continue
			}
			accepted[m.Index] = true
			scores[m.Index] = max(scores[m.Index], ratio*field.weight)
		}
	}

	var matches []FuzzyMatch
	for i, e := range entries {
		if accepted[i] {
			matches = append(matches, FuzzyMatch{SearchResult: e, Score: scores[i]})
		}
	}

	// entries are already in key order, a stable sort keeps it for ties
	slices.SortStableFunc(matches, func(a, b FuzzyMatch) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})
	return matches
}

// compactness is the share of the matched span taken by pattern characters:
// 1 for a contiguous run, lower the more the match is scattered.
func compactness(m fuzzy.Match, patternLen int) float64 {
	if len(m.MatchedIndexes) == 0 {
		return 0
	}
	first := m.MatchedIndexes[0]
	last := m.MatchedIndexes[len(m.MatchedIndexes)-1]
	span := utf8.RuneCountInString(m.Str[first:]) - utf8.RuneCountInString(m.Str[last:]) + 1
	return min(float64(patternLen)/float64(span), 1)
}
