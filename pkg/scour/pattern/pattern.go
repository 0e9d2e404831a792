// Package pattern compiles user-supplied wildcard expressions into
// case-insensitive file name matchers. The wildcard grammar is minimal:
// '*' matches any run of characters (including the empty run), '?' matches
// exactly one character, and every other character is literal.
package pattern

import (
	"strings"

	"github.com/gobwas/glob"
)

// Matcher evaluates a compiled wildcard pattern against bare file names.
// The zero value matches nothing; use Compile to construct one.
type Matcher struct {
	g        glob.Glob
	matchAll bool
}

// Compile builds a Matcher from a wildcard pattern. An empty pattern matches
// every name. Compile never fails: a pattern that cannot be compiled yields a
// matcher that matches nothing, so a malformed pattern degrades to "no
// matches" instead of aborting a search.
func Compile(wildcard string) *Matcher {
	if wildcard == "" {
		return &Matcher{matchAll: true}
	}

	g, err := glob.Compile(translate(wildcard))
	if err != nil {
		return &Matcher{}
	}
	return &Matcher{g: g}
}

// translate converts a wildcard into glob syntax: '*' and '?' pass through,
// everything else is quoted so characters like '[' or '{' stay literal.
func translate(wildcard string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(wildcard) {
		switch r {
		case '*', '?':
			b.WriteRune(r)
		default:
			b.WriteString(glob.QuoteMeta(string(r)))
		}
	}
	return b.String()
}

// Match reports whether name matches the pattern. Matching is
// case-insensitive and anchored to the full name. Any internal matching
// failure is treated as a non-match.
func (m *Matcher) Match(name string) (matched bool) {
	if m.matchAll {
		return true
	}
	if m.g == nil {
		return false
	}

	defer func() {
		if recover() != nil {
			matched = false
		}
	}()

	return m.g.Match(strings.ToLower(name))
}
