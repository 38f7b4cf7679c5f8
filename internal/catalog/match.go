package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// matcher performs case-insensitive substring checks by lowercasing both
// sides. Lowercasing never expands a rune ("ß" stays "ß"), so "strasse" does
// not match "Straße".
// A cases.Caser is stateful, so each query builds its own matcher.
type matcher struct {
	caser cases.Caser
}

func newMatcher() *matcher {
	return &matcher{caser: cases.Lower(language.Und)}
}

func (m *matcher) fold(s string) string {
	return m.caser.String(s)
}

// contains reports whether s contains the already-folded needle.
// An empty needle matches everything.
func (m *matcher) contains(s, foldedNeedle string) bool {
	if foldedNeedle == "" {
		return true
	}
	return strings.Contains(m.fold(s), foldedNeedle)
}
