// Package charset builds the set of target characters for the charcount CLI tool.
//
// Characters are Unicode scalar values (runes). A set is built by flattening
// every rune of every user-supplied token, so the tokens "ab" and "c" produce
// the same set as "a", "b", "c" or "cba". Order and repetition never matter.
//
// Usage Example:
//
//	set := charset.FromTokens([]string{"ab", "c"})
//	set.Contains('b') // true
package charset

import (
	"slices"
	"strconv"
	"strings"
)

// Set is an immutable set of runes.
// The zero value is an empty set. A Set is safe for concurrent reads,
// which is what the parallel counter relies on.
type Set struct {
	members map[rune]struct{}
}

// FromTokens flattens all runes of the given tokens into a single set.
func FromTokens(tokens []string) Set {
	members := make(map[rune]struct{})
	for _, token := range tokens {
		for _, r := range token {
			members[r] = struct{}{}
		}
	}
	return Set{members: members}
}

// Of builds a set from individual runes.
func Of(runes ...rune) Set {
	members := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		members[r] = struct{}{}
	}
	return Set{members: members}
}

// Contains reports whether r is a member of the set.
// Comparison is by exact scalar value: no case folding or normalization.
func (s Set) Contains(r rune) bool {
	_, ok := s.members[r]
	return ok
}

// Len returns the number of distinct runes in the set.
func (s Set) Len() int {
	return len(s.members)
}

// IsEmpty reports whether the set has no members.
func (s Set) IsEmpty() bool {
	return len(s.members) == 0
}

// Runes returns the members in ascending code point order.
func (s Set) Runes() []rune {
	runes := make([]rune, 0, len(s.members))
	for r := range s.members {
		runes = append(runes, r)
	}
	slices.Sort(runes)
	return runes
}

// String renders the set for logs, e.g. {' ', ',', 'a'}.
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, r := range s.Runes() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.QuoteRune(r))
	}
	b.WriteByte('}')
	return b.String()
}
