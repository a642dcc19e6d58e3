package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tourvista/tourism-backend/internal/common"
	"github.com/tourvista/tourism-backend/internal/domain"
	"github.com/tourvista/tourism-backend/internal/middleware"
	pkglogger "github.com/tourvista/tourism-backend/pkg/logger"
)

// DegradedHeader lists the source kinds that failed for this response
const DegradedHeader = "X-Search-Degraded"

// Searcher runs a validated term against the content sources
type Searcher interface {
	Search(ctx context.Context, term domain.SearchTerm) (*domain.RankedResultSet, error)
}

// SearchHandler handles the federated content search endpoint
type SearchHandler struct {
	searcher Searcher
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(searcher Searcher) *SearchHandler {
	return &SearchHandler{searcher: searcher}
}

// Search performs a federated search across tours, blog posts and projects
// @Summary Federated content search
// @Description Searches tours, blog posts and projects by title or body substring. Title matches rank first, then newest first.
// @Tags search
// @Produce json
// @Param q query string true "Search term (2-100 characters)"
// @Success 200 {object} common.SearchResponse
// @Header 200 {string} X-Search-Degraded "Comma-separated source kinds that failed or timed out"
// @Failure 400 {object} common.ErrorBody
// @Failure 405 {object} common.ErrorBody
// @Failure 500 {object} common.ErrorBody
// @Router /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	raw := c.Query("q")

	term, err := domain.ParseSearchTerm(raw)
	if err != nil {
		msg := common.MsgQueryTooShort
		switch {
		case errors.Is(err, common.ErrQueryTooLong):
			msg = common.MsgQueryTooLong
		case errors.Is(err, common.ErrQueryInvalid):
			msg = common.MsgQueryInvalid
		}
		common.ErrorResponse(c, http.StatusBadRequest, msg, nil)
		return
	}

	log := pkglogger.WithRequestID(middleware.GetRequestID(c))

	set, err := h.searcher.Search(c.Request.Context(), term)
	if err != nil {
		log.Error().Err(err).Str("query", term.Value()).Msg("search failed")
		common.ErrorResponse(c, http.StatusInternalServerError, common.MsgSearchFailed, err)
		return
	}

	if degraded := set.DegradedKinds(); len(degraded) > 0 {
		kinds := make([]string, len(degraded))
		for i, k := range degraded {
			kinds[i] = string(k)
		}
		c.Header(DegradedHeader, strings.Join(kinds, ","))
	}

	data := set.Results
	if data == nil {
		data = []domain.SearchResult{}
	}

	log.Debug().
		Str("query", term.Value()).
		Int("total", len(data)).
		Msg("search completed")

	c.JSON(http.StatusOK, common.SearchResponse{
		Success: true,
		Data:    data,
		Query:   raw,
		Total:   len(data),
	})
}

// MethodNotAllowed answers requests whose path exists under another method
func MethodNotAllowed(c *gin.Context) {
	common.ErrorResponse(c, http.StatusMethodNotAllowed, common.MsgMethodNotAllowed, nil)
}

// NotFound answers unknown routes
func NotFound(c *gin.Context) {
	common.ErrorResponse(c, http.StatusNotFound, common.MsgNotFound, nil)
}
