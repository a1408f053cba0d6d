package domain

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// NaturalCompare orders strings the way a file browser does: digit runs
// compare by numeric value ("2" < "10", "00" < "10") and the text between
// them compares case-insensitively. Strings that compare equal fall back to
// byte order so the result is total.
func NaturalCompare(a, b string) int {
	if c := compareRuns(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// SortKeys sorts keys in place using NaturalCompare
func SortKeys(keys []string) {
	slices.SortFunc(keys, NaturalCompare)
}

func compareRuns(a, b string) int {
	// a Caser keeps state between calls and must not be shared
	fold := cases.Fold()

	for a != "" && b != "" {
		ra, restA := nextRun(a)
		rb, restB := nextRun(b)
		a, b = restA, restB

		var c int
		if isDigit(ra[0]) && isDigit(rb[0]) {
			c = compareNumbers(ra, rb)
		} else if ra != rb {
			c = strings.Compare(fold.String(ra), fold.String(rb))
		}
		if c != 0 {
			return c
		}
	}

	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

// nextRun splits off the leading run of digits or of non-digits
func nextRun(s string) (run, rest string) {
	digits := isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == digits {
		i++
	}
	return s[:i], s[i:]
}

// compareNumbers compares two digit runs by value, then by length so that
// "01" sorts after "1".
func compareNumbers(a, b string) int {
	ta, tb := strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")
	if c := len(ta) - len(tb); c != 0 {
		return sign(c)
	}
	if c := strings.Compare(ta, tb); c != 0 {
		return c
	}
	return sign(len(a) - len(b))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
