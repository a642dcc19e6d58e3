package common

import (
	"github.com/gin-gonic/gin"
)

// Messages of the public search contract
const (
	MsgQueryTooShort    = "Search query must be at least 2 characters long"
	MsgQueryTooLong     = "Search query must be at most 100 characters long"
	MsgQueryInvalid     = "Search query must be valid UTF-8 text"
	MsgSearchFailed     = "Failed to search"
	MsgMethodNotAllowed = "Method not allowed"
	MsgNotFound         = "Not found"
)

// SearchResponse success envelope of GET /search
type SearchResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Query   string      `json:"query"`
	Total   int         `json:"total"`
}

// ErrorBody flat error envelope: { "error": "...", "details": "..." }
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ErrorResponse returns an error JSON response. details is only
// exposed when err is non-nil.
func ErrorResponse(c *gin.Context, status int, message string, err error) {
	body := ErrorBody{Error: message}
	if err != nil {
		body.Details = err.Error()
	}
	c.JSON(status, body)
}

// AbortWithError writes the error envelope and stops the middleware chain
func AbortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: message})
}
