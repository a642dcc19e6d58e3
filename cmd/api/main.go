package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/tourvista/tourism-backend/internal/config"
	"github.com/tourvista/tourism-backend/internal/database"
	"github.com/tourvista/tourism-backend/internal/handler"
	"github.com/tourvista/tourism-backend/internal/middleware"
	"github.com/tourvista/tourism-backend/internal/repository"
	"github.com/tourvista/tourism-backend/internal/routes"
	"github.com/tourvista/tourism-backend/internal/service"
	pkglogger "github.com/tourvista/tourism-backend/pkg/logger"
	pkgredis "github.com/tourvista/tourism-backend/pkg/redis"
	"gorm.io/gorm"
)

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath(env string) string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	dotenvFiles := config.LoadDotEnv(env)

	pkglogger.InitStructured(env, os.Getenv("LOG_LEVEL"), config.IsDevelopmentEnv(env))
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	configPath := getConfigPath(env)
	pkglogger.Info("Loading config from: %s", configPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		pkglogger.GetLogger().Fatal().Err(err).Msg("failed to load config")
	}
	pkglogger.InitStructured(cfg.Server.Env, cfg.Log.Level, cfg.IsDevelopment())
	config.LogResolved(cfg)

	db, err := database.Open(cfg.Database, cfg.Log.Level == "debug")
	if err != nil {
		pkglogger.GetLogger().Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			pkglogger.Warn("closing database: %v", err)
		}
	}()
	pkglogger.Info("Connected to MySQL")

	var redisClient *goredis.Client
	if cfg.Redis.Enabled {
		redisClient, err = pkgredis.NewClient(
			cfg.Redis.Host,
			cfg.Redis.Port,
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.Redis.PoolSize,
		)
		if err != nil {
			pkglogger.Warn("Failed to connect to Redis: %v (continuing without Redis)", err)
			redisClient = nil
		} else {
			pkglogger.Info("Connected to Redis")
			defer redisClient.Close()
		}
	}

	searchService := service.NewSearchService(
		[]service.SearchSource{
			service.NewTourSource(repository.NewTourRepository(db), cfg.Search.PerSourceLimit),
			service.NewBlogPostSource(repository.NewBlogPostRepository(db), cfg.Search.PerSourceLimit),
			service.NewProjectSource(repository.NewProjectRepository(db), cfg.Search.PerSourceLimit),
		},
		service.SearchOptions{
			SourceTimeout: cfg.Search.SourceTimeout,
			MaxResults:    cfg.Search.MaxResults,
		},
	)

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(cfg.CORS.AllowOrigins)))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	var searchMiddleware []gin.HandlerFunc
	if redisClient != nil && cfg.RateLimit.Enabled {
		rlCfg := middleware.DefaultRateLimitConfig()
		rlCfg.RequestsPerMinute = cfg.RateLimit.RequestsPerMinute
		searchMiddleware = append(searchMiddleware, middleware.RateLimit(redisClient, rlCfg))
	}

	routes.Setup(
		router,
		handler.NewSearchHandler(searchService),
		handler.NewHealthHandler(healthChecks(db, redisClient)),
		searchMiddleware...,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		pkglogger.Info("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			pkglogger.GetLogger().Fatal().Err(err).Msg("failed to start server")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	pkglogger.Info("Received %s, shutting down", sig)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		pkglogger.GetLogger().Error().Err(err).Msg("graceful shutdown failed")
	}
}

func corsConfig(allowOrigins string) cors.Config {
	origins := splitAndTrim(allowOrigins, ",")
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	return cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID", "X-RateLimit-Remaining", handler.DegradedHeader},
		MaxAge:        86400,
	}
}

func healthChecks(db *gorm.DB, redisClient *goredis.Client) map[string]handler.Pinger {
	checks := map[string]handler.Pinger{
		"database": handler.PingerFunc(func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}),
	}
	if redisClient != nil {
		checks["redis"] = handler.PingerFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})
	}
	return checks
}

// splitAndTrim splits s by sep and drops empty parts
func splitAndTrim(s, sep string) []string {
	var parts []string
	for _, part := range strings.Split(s, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
