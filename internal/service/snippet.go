package service

import (
	"strings"
	"unicode/utf8"

	"github.com/tourvista/tourism-backend/internal/domain"
)

const (
	snippetLength   = 160
	snippetLeadIn   = 40
	snippetEllipsis = "…"
)

// buildSnippet turns a descriptive/body field into a short plain-text excerpt.
// When the term is not in the title the excerpt is positioned around the
// first body match so the result shows why it matched. A term found only
// inside markup (a link target, an attribute) excerpts the raw body instead.
func buildSnippet(body, title string, term domain.SearchTerm) string {
	text := collapseSpace(stripHTML(body))
	if !term.MatchesTitle(title) && term.Index(text) < 0 && term.Index(body) >= 0 {
		text = collapseSpace(body)
	}
	if utf8.RuneCountInString(text) <= snippetLength {
		return text
	}

	start := 0
	if !term.MatchesTitle(title) {
		if idx := term.Index(text); idx > 0 {
			lead := utf8.RuneCountInString(text[:idx])
			if lead > snippetLeadIn {
				start = lead - snippetLeadIn
			}
		}
	}

	runes := []rune(text)
	end := start + snippetLength
	if end > len(runes) {
		end = len(runes)
		start = end - snippetLength
	}

	excerpt := strings.TrimSpace(string(runes[start:end]))
	if start > 0 {
		excerpt = snippetEllipsis + excerpt
	}
	if end < len(runes) {
		excerpt += snippetEllipsis
	}
	return excerpt
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// stripHTML removes HTML tags (simple version)
func stripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}
	var result strings.Builder
	inTag := false
	for _, r := range s {
		if r == '<' {
			inTag = true
			continue
		}
		if r == '>' {
			inTag = false
			result.WriteRune(' ')
			continue
		}
		if !inTag {
			result.WriteRune(r)
		}
	}
	return result.String()
}
