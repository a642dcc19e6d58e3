package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is any dependency that can report its reachability
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to Pinger
type PingerFunc func(ctx context.Context) error

// Ping implements Pinger
func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// ServiceHealth is the status of one dependency
type ServiceHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
	Error        string `json:"error,omitempty"`
}

// HealthHandler reports process and dependency health
type HealthHandler struct {
	checks  map[string]Pinger
	timeout time.Duration
}

// NewHealthHandler creates a HealthHandler. nil checks are skipped.
func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	active := make(map[string]Pinger, len(checks))
	for name, p := range checks {
		if p != nil {
			active[name] = p
		}
	}
	return &HealthHandler{checks: active, timeout: 3 * time.Second}
}

// Health returns 200 when every dependency answers, 503 otherwise
// @Summary Health check
// @Description Pings the database and, when enabled, Redis
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	status := "ok"
	services := make(map[string]ServiceHealth, len(h.checks))
	for name, p := range h.checks {
		start := time.Now()
		err := p.Ping(ctx)
		sh := ServiceHealth{Status: "healthy", ResponseTime: time.Since(start).Milliseconds()}
		if err != nil {
			sh.Status = "unhealthy"
			sh.Error = err.Error()
			status = "degraded"
		}
		services[name] = sh
	}

	code := http.StatusOK
	if status != "ok" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":   status,
		"service":  "tourism-backend",
		"time":     time.Now().Unix(),
		"services": services,
	})
}
