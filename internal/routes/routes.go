package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tourvista/tourism-backend/internal/handler"
)

// Setup configures all routes. searchMiddleware runs in front of the
// search endpoints only (rate limiting).
func Setup(
	router *gin.Engine,
	searchHandler *handler.SearchHandler,
	healthHandler *handler.HealthHandler,
	searchMiddleware ...gin.HandlerFunc,
) {
	router.HandleMethodNotAllowed = true
	router.NoMethod(handler.MethodNotAllowed)
	router.NoRoute(handler.NotFound)

	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	search := append(append([]gin.HandlerFunc{}, searchMiddleware...), searchHandler.Search)
	router.GET("/search", search...)

	api := router.Group("/api/v1")
	api.GET("/search", search...)
}
