package layout

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// EndsWithSingleDot reports whether text, after trimming, ends in one full
// stop: "Summary." is true while "Summary..." and "Summary.." are not. A
// lone "." counts as single-dot terminated.
func EndsWithSingleDot(text string) bool {
	t := strings.TrimSpace(text)
	if !strings.HasSuffix(t, ".") || strings.HasSuffix(t, "...") {
		return false
	}
	if len(t) < 2 {
		return true
	}
	return t[len(t)-2] != '.'
}

// textLength counts characters, not bytes
func textLength(s string) int {
	return utf8.RuneCountInString(s)
}

// blacklist matches case-insensitive substrings
type blacklist []string

// newBlacklist folds every word once so matching only folds the input
func newBlacklist(words []string) blacklist {
	fold := cases.Fold()
	var bl blacklist
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		bl = append(bl, fold.String(w))
	}
	return bl
}

// matches reports whether any word occurs anywhere in text
func (bl blacklist) matches(text string) bool {
	if len(bl) == 0 {
		return false
	}
	folded := cases.Fold().String(text)
	for _, w := range bl {
		if strings.Contains(folded, w) {
			return true
		}
	}
	return false
}
