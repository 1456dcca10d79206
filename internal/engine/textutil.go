package engine

import (
	"strings"
	"unicode"

	"github.com/anatolykoptev/go-kit/strutil"
)

// Truncate caps s at n runes. Safe for UTF-8 (Cyrillic, CJK, emoji).
func Truncate(s string, n int) string {
	return strutil.TruncateWith(s, n, "")
}

// Snippet caps s at n runes and marks the cut with an ellipsis. Existing
// trailing dots are absorbed so stacked truncation never doubles them.
func Snippet(s string, n int) string {
	return strutil.TruncateWith(strings.TrimRight(s, "."), n, "") + "..."
}

// ContainsWord reports whether term occurs in text on its own, not as part of
// a longer token. Boundaries are letter/digit neighbors, so terms like "c++"
// and "node.js" match where a plain \b regex would not. Case-insensitive.
func ContainsWord(text, term string) bool {
	if term == "" {
		return false
	}
	text = strings.ToLower(text)
	term = strings.ToLower(term)
	for i := 0; ; {
		idx := strings.Index(text[i:], term)
		if idx < 0 {
			return false
		}
		start := i + idx
		end := start + len(term)
		if !wordChar(runeBefore(text, start)) && !wordChar(runeAt(text, end)) {
			return true
		}
		i = start + 1
	}
}

// ContainsAny reports whether any of the terms occurs in text as a whole word.
func ContainsAny(text string, terms []string) bool {
	for _, t := range terms {
		if ContainsWord(text, t) {
			return true
		}
	}
	return false
}

func wordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func runeBefore(s string, i int) rune {
	if i <= 0 {
		return ' '
	}
	rs := []rune(s[max(0, i-4):i])
	if len(rs) == 0 {
		return ' '
	}
	return rs[len(rs)-1]
}

func runeAt(s string, i int) rune {
	if i >= len(s) {
		return ' '
	}
	for _, c := range s[i:] {
		return c
	}
	return ' '
}
