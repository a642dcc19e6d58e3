package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tourvista/tourism-backend/internal/common"
	"github.com/tourvista/tourism-backend/internal/domain"
)

// MockTourRepository is a mock implementation of TourRepository
type MockTourRepository struct {
	mock.Mock
}

func (m *MockTourRepository) FindBySubstring(ctx context.Context, pattern string, limit int) ([]*domain.Tour, error) {
	args := m.Called(ctx, pattern, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Tour), args.Error(1)
}

// MockBlogPostRepository is a mock implementation of BlogPostRepository
type MockBlogPostRepository struct {
	mock.Mock
}

func (m *MockBlogPostRepository) FindBySubstring(ctx context.Context, pattern string, limit int) ([]*domain.BlogPost, error) {
	args := m.Called(ctx, pattern, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BlogPost), args.Error(1)
}

// MockProjectRepository is a mock implementation of ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindBySubstring(ctx context.Context, pattern string, limit int) ([]*domain.Project, error) {
	args := m.Called(ctx, pattern, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Project), args.Error(1)
}

func strRef(s string) *string { return &s }

func TestTourSource_MapsRows(t *testing.T) {
	repo := new(MockTourRepository)
	created := at(2024, 5, 12)
	repo.On("FindBySubstring", mock.Anything, "%shahdag%", DefaultPerSourceLimit).Return([]*domain.Tour{
		{
			ID:          42,
			Title:       "Shahdag Day Hike",
			Description: "A guided <b>day hike</b>.",
			Category:    strRef("hiking"),
			ImageURL:    strRef(""),
			CreatedAt:   created,
		},
	}, nil)

	src := NewTourSource(repo, 0)
	results, err := src.Search(context.Background(), mustTerm(t, "Shahdag"))
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, domain.SourceKindTour, src.Kind())
	assert.Equal(t, uint64(42), r.ID)
	assert.Equal(t, "Shahdag Day Hike", r.Title)
	assert.Equal(t, "A guided day hike .", r.Snippet)
	assert.Nil(t, r.ImageURL)
	require.NotNil(t, r.Category)
	assert.Equal(t, "hiking", *r.Category)
	assert.Equal(t, created, r.CreatedAt)
	assert.Equal(t, domain.SourceKindTour, r.SourceKind)
	repo.AssertExpectations(t)
}

func TestBlogPostSource_MapsRows(t *testing.T) {
	repo := new(MockBlogPostRepository)
	repo.On("FindBySubstring", mock.Anything, "%pack%", 3).Return([]*domain.BlogPost{
		{ID: 7, Title: "What to pack", Content: "<p>Layers</p>", CoverImageURL: strRef("/img/pack.jpg")},
	}, nil)

	results, err := NewBlogPostSource(repo, 3).Search(context.Background(), mustTerm(t, "pack"))
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, domain.SourceKindBlogPost, results[0].SourceKind)
	assert.Equal(t, "Layers", results[0].Snippet)
	require.NotNil(t, results[0].ImageURL)
	assert.Equal(t, "/img/pack.jpg", *results[0].ImageURL)
	assert.Nil(t, results[0].Category)
	repo.AssertExpectations(t)
}

func TestProjectSource_TruncatesToLimit(t *testing.T) {
	repo := new(MockProjectRepository)
	repo.On("FindBySubstring", mock.Anything, "%trail%", 2).Return([]*domain.Project{
		{ID: 3, Title: "Trail 3"},
		{ID: 2, Title: "Trail 2"},
		{ID: 1, Title: "Trail 1"},
	}, nil)

	results, err := NewProjectSource(repo, 2).Search(context.Background(), mustTerm(t, "trail"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Trail 3", "Trail 2"}, titles(results))
	assert.Equal(t, domain.SourceKindProject, results[0].SourceKind)
}

func TestRepoSource_WrapsErrors(t *testing.T) {
	repo := new(MockProjectRepository)
	dbErr := errors.New("dial tcp: connection refused")
	repo.On("FindBySubstring", mock.Anything, mock.Anything, mock.Anything).Return(nil, dbErr)

	results, err := NewProjectSource(repo, 5).Search(context.Background(), mustTerm(t, "trail"))

	assert.Nil(t, results)
	assert.ErrorIs(t, err, common.ErrSourceUnavailable)
	assert.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "project")
}

func TestRepoSource_EscapesWildcards(t *testing.T) {
	repo := new(MockTourRepository)
	repo.On("FindBySubstring", mock.Anything, "%50!%!_off%", 5).Return([]*domain.Tour{}, nil)

	results, err := NewTourSource(repo, 5).Search(context.Background(), mustTerm(t, "50%_off"))
	require.NoError(t, err)

	assert.Empty(t, results)
	repo.AssertExpectations(t)
}
