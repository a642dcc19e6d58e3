package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveHealth(checks map[string]Pinger) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", NewHealthHandler(checks).Health)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	return w
}

func TestHealth_AllHealthy(t *testing.T) {
	w := serveHealth(map[string]Pinger{
		"database": PingerFunc(func(context.Context) error { return nil }),
		"redis":    nil,
	})

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Status   string                   `json:"status"`
		Services map[string]ServiceHealth `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "healthy", body.Services["database"].Status)
	assert.NotContains(t, body.Services, "redis")
}

func TestHealth_Degraded(t *testing.T) {
	w := serveHealth(map[string]Pinger{
		"database": PingerFunc(func(context.Context) error { return nil }),
		"redis":    PingerFunc(func(context.Context) error { return errors.New("connection refused") }),
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
	assert.Contains(t, w.Body.String(), "connection refused")
}
