package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/tourvista/tourism-backend/internal/common"
)

const (
	minSearchTermLength = 2
	maxSearchTermLength = 100

	// likeEscape is the ESCAPE character of generated LIKE patterns.
	// '!' behaves the same in MySQL and SQLite, unlike backslash.
	likeEscape = '!'
)

// SearchTerm is a trimmed, ASCII lower-cased UTF-8 query of 2..100 characters.
// The zero value is not a valid term; build one with ParseSearchTerm.
type SearchTerm struct {
	value string
}

// ParseSearchTerm validates and normalizes a raw user query
func ParseSearchTerm(raw string) (SearchTerm, error) {
	if !utf8.ValidString(raw) {
		return SearchTerm{}, common.ErrQueryInvalid
	}
	term := asciiLower(strings.TrimSpace(raw))

	n := utf8.RuneCountInString(term)
	if n < minSearchTermLength {
		return SearchTerm{}, common.ErrQueryTooShort
	}
	if n > maxSearchTermLength {
		return SearchTerm{}, common.ErrQueryTooLong
	}
	return SearchTerm{value: term}, nil
}

// Value returns the normalized term
func (t SearchTerm) Value() string {
	return t.value
}

// String implements fmt.Stringer
func (t SearchTerm) String() string {
	return t.value
}

// LikePattern returns "%<escaped term>%" for `LIKE ? ESCAPE '!'`
func (t SearchTerm) LikePattern() string {
	return "%" + EscapeLike(t.value) + "%"
}

// MatchesTitle reports whether the term is a case-insensitive substring of title
func (t SearchTerm) MatchesTitle(title string) bool {
	return t.Index(title) >= 0
}

// EscapeLike escapes LIKE wildcards so they match literally
func EscapeLike(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '%', '_', likeEscape:
			b.WriteRune(likeEscape)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// LikeEscapeClause is the SQL fragment that pairs with LikePattern
const LikeEscapeClause = "ESCAPE '!'"

// asciiLower lower-cases A-Z only; other runes are left untouched
func asciiLower(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Index returns the byte offset of the first case-insensitive occurrence
// of the term in text, or -1. ASCII lower-casing keeps byte offsets intact.
func (t SearchTerm) Index(text string) int {
	if t.value == "" {
		return -1
	}
	return strings.Index(asciiLower(text), t.value)
}
