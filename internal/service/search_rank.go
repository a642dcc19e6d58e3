package service

import (
	"sort"

	"github.com/tourvista/tourism-backend/internal/domain"
)

type rankedResult struct {
	result     domain.SearchResult
	titleMatch bool
}

// RankResults orders results by relevance: title matches first, then
// newest first. The sort is stable so equal keys keep fan-in order.
//
// Recency as the secondary key is a product policy, not derived from
// match quality.
func RankResults(term domain.SearchTerm, results []domain.SearchResult) []domain.SearchResult {
	ranked := make([]rankedResult, len(results))
	for i, r := range results {
		ranked[i] = rankedResult{result: r, titleMatch: term.MatchesTitle(r.Title)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return moreRelevant(ranked[i], ranked[j])
	})

	out := make([]domain.SearchResult, len(ranked))
	for i, r := range ranked {
		out[i] = r.result
	}
	return out
}

func moreRelevant(a, b rankedResult) bool {
	if a.titleMatch != b.titleMatch {
		return a.titleMatch
	}
	return a.result.CreatedAt.After(b.result.CreatedAt)
}
