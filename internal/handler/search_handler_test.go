package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tourvista/tourism-backend/internal/common"
	"github.com/tourvista/tourism-backend/internal/domain"
)

// MockSearcher is a mock implementation of Searcher
type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Search(ctx context.Context, term domain.SearchTerm) (*domain.RankedResultSet, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RankedResultSet), args.Error(1)
}

type searchBody struct {
	Success bool                  `json:"success"`
	Data    []domain.SearchResult `json:"data"`
	Query   string                `json:"query"`
	Total   int                   `json:"total"`
}

func setupSearchRouter(searcher Searcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSearchHandler(searcher)
	r.GET("/search", h.Search)
	return r
}

func doGet(r http.Handler, rawQuery string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/search?"+rawQuery, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestSearch_RejectsShortQueryWithoutSearching(t *testing.T) {
	for _, q := range []string{"", "q=", "q=a", "q=%20%20a%20"} {
		t.Run(q, func(t *testing.T) {
			searcher := new(MockSearcher)
			w := doGet(setupSearchRouter(searcher), q)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"Search query must be at least 2 characters long"}`, w.Body.String())
			searcher.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
		})
	}
}

func TestSearch_RejectsLongQuery(t *testing.T) {
	searcher := new(MockSearcher)
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'x'
	}

	w := doGet(setupSearchRouter(searcher), "q="+string(long))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, common.MsgQueryTooLong), w.Body.String())
	searcher.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestSearch_RejectsInvalidUTF8(t *testing.T) {
	searcher := new(MockSearcher)

	w := doGet(setupSearchRouter(searcher), "q=%FF%FE")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Search query must be valid UTF-8 text"}`, w.Body.String())
	searcher.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestSearch_Success(t *testing.T) {
	searcher := new(MockSearcher)
	created := time.Date(2024, 5, 12, 9, 0, 0, 0, time.UTC)
	category := "hiking"
	searcher.On("Search", mock.Anything, mock.MatchedBy(func(term domain.SearchTerm) bool {
		return term.Value() == "shahdag"
	})).Return(&domain.RankedResultSet{
		Results: []domain.SearchResult{
			{ID: 1, Title: "Shahdag Day Hike", Snippet: "A guided day hike", CreatedAt: created, SourceKind: domain.SourceKindTour, Category: &category},
		},
	}, nil)

	w := doGet(setupSearchRouter(searcher), "q="+url.QueryEscape("  Shahdag "))

	require.Equal(t, http.StatusOK, w.Code)
	var body searchBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "  Shahdag ", body.Query)
	assert.Equal(t, 1, body.Total)
	require.Len(t, body.Data, 1)
	assert.Equal(t, domain.SourceKindTour, body.Data[0].SourceKind)
	assert.Empty(t, w.Header().Get(DegradedHeader))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	item := raw["data"].([]any)[0].(map[string]any)
	assert.Equal(t, "hiking", item["category"])
	assert.Equal(t, "2024-05-12T09:00:00Z", item["createdAt"])
	assert.NotContains(t, item, "imageUrl")
	searcher.AssertExpectations(t)
}

func TestSearch_EmptyResultIsArray(t *testing.T) {
	searcher := new(MockSearcher)
	searcher.On("Search", mock.Anything, mock.Anything).Return(&domain.RankedResultSet{}, nil)

	w := doGet(setupSearchRouter(searcher), "q=zzzz")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[],"query":"zzzz","total":0}`, w.Body.String())
}

func TestSearch_DegradedHeader(t *testing.T) {
	searcher := new(MockSearcher)
	searcher.On("Search", mock.Anything, mock.Anything).Return(&domain.RankedResultSet{
		Results: []domain.SearchResult{{ID: 1, Title: "River", SourceKind: domain.SourceKindTour}},
		Outcomes: []domain.SourceOutcome{
			{Kind: domain.SourceKindTour, Status: domain.SourceStatusOK},
			{Kind: domain.SourceKindBlogPost, Status: domain.SourceStatusFailed, Err: common.ErrSourceUnavailable},
			{Kind: domain.SourceKindProject, Status: domain.SourceStatusTimedOut, Err: common.ErrSourceTimeout},
		},
	}, nil)

	w := doGet(setupSearchRouter(searcher), "q=river")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "blogPost,project", w.Header().Get(DegradedHeader))
}

func TestSearch_InternalError(t *testing.T) {
	searcher := new(MockSearcher)
	searcher.On("Search", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: %w", common.ErrAllSourcesFailed, errors.New("db down")))

	w := doGet(setupSearchRouter(searcher), "q=river")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body common.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Failed to search", body.Error)
	assert.Equal(t, "all search sources failed: db down", body.Details)
}

func TestMethodNotAllowedAndNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoMethod(MethodNotAllowed)
	r.NoRoute(NotFound)
	r.GET("/search", NewSearchHandler(new(MockSearcher)).Search)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/search?q=river", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
}
