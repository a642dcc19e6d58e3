package service

import (
	"context"
	"fmt"

	"github.com/tourvista/tourism-backend/internal/common"
	"github.com/tourvista/tourism-backend/internal/domain"
	"github.com/tourvista/tourism-backend/internal/repository"
)

// DefaultPerSourceLimit is the per-source result cap
const DefaultPerSourceLimit = 5

// SearchSource queries a single content store for substring matches.
// Implementations are read-only and safe for concurrent use.
type SearchSource interface {
	Kind() domain.SourceKind
	Search(ctx context.Context, term domain.SearchTerm) ([]domain.SearchResult, error)
}

// repoSource adapts a repository FindBySubstring method of any row type
// to SearchSource. Adding a content type only needs a new mapper.
type repoSource[T any] struct {
	kind     domain.SourceKind
	find     func(ctx context.Context, pattern string, limit int) ([]T, error)
	toResult func(row T, term domain.SearchTerm) domain.SearchResult
	limit    int
}

func (s *repoSource[T]) Kind() domain.SourceKind { return s.kind }

func (s *repoSource[T]) Search(ctx context.Context, term domain.SearchTerm) ([]domain.SearchResult, error) {
	rows, err := s.find(ctx, term.LikePattern(), s.limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", s.kind, common.ErrSourceUnavailable, err)
	}
	if len(rows) > s.limit {
		rows = rows[:s.limit]
	}

	results := make([]domain.SearchResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, s.toResult(row, term))
	}
	return results, nil
}

func normalizeLimit(limit int) int {
	if limit < 1 {
		return DefaultPerSourceLimit
	}
	return limit
}

// NewTourSource creates the tour search adapter
func NewTourSource(repo repository.TourRepository, limit int) SearchSource {
	return &repoSource[*domain.Tour]{
		kind:  domain.SourceKindTour,
		find:  repo.FindBySubstring,
		limit: normalizeLimit(limit),
		toResult: func(t *domain.Tour, term domain.SearchTerm) domain.SearchResult {
			return domain.SearchResult{
				ID:         t.ID,
				Title:      t.Title,
				Snippet:    buildSnippet(t.Description, t.Title, term),
				ImageURL:   nonEmpty(t.ImageURL),
				CreatedAt:  t.CreatedAt,
				SourceKind: domain.SourceKindTour,
				Category:   nonEmpty(t.Category),
			}
		},
	}
}

// NewBlogPostSource creates the blog post search adapter
func NewBlogPostSource(repo repository.BlogPostRepository, limit int) SearchSource {
	return &repoSource[*domain.BlogPost]{
		kind:  domain.SourceKindBlogPost,
		find:  repo.FindBySubstring,
		limit: normalizeLimit(limit),
		toResult: func(p *domain.BlogPost, term domain.SearchTerm) domain.SearchResult {
			return domain.SearchResult{
				ID:         p.ID,
				Title:      p.Title,
				Snippet:    buildSnippet(p.Content, p.Title, term),
				ImageURL:   nonEmpty(p.CoverImageURL),
				CreatedAt:  p.CreatedAt,
				SourceKind: domain.SourceKindBlogPost,
			}
		},
	}
}

// NewProjectSource creates the project search adapter
func NewProjectSource(repo repository.ProjectRepository, limit int) SearchSource {
	return &repoSource[*domain.Project]{
		kind:  domain.SourceKindProject,
		find:  repo.FindBySubstring,
		limit: normalizeLimit(limit),
		toResult: func(p *domain.Project, term domain.SearchTerm) domain.SearchResult {
			return domain.SearchResult{
				ID:         p.ID,
				Title:      p.Title,
				Snippet:    buildSnippet(p.Description, p.Title, term),
				ImageURL:   nonEmpty(p.ImageURL),
				CreatedAt:  p.CreatedAt,
				SourceKind: domain.SourceKindProject,
			}
		},
	}
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
