package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/zenfocus/server/internal/auth"
	"codeberg.org/zenfocus/server/internal/config"
	"codeberg.org/zenfocus/server/internal/logger"
	"codeberg.org/zenfocus/server/internal/migrations"
	"codeberg.org/zenfocus/server/zenfocus/activities"
	"codeberg.org/zenfocus/server/zenfocus/blogs"
	"codeberg.org/zenfocus/server/zenfocus/challenges"
	"codeberg.org/zenfocus/server/zenfocus/questions"
	"codeberg.org/zenfocus/server/zenfocus/users"
)

// cached leaderboards go stale after this long at the latest
const leaderboardCacheTTL = 30 * time.Second

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	if err := migrations.Up(ctx, cfg.DatabaseURL); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	codec, err := auth.NewCodec(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create token codec: %w", err)
	}

	// the leaderboard cache is optional; without Redis every read goes
	// straight to Postgres
	var leaderboardCache *challenges.LeaderboardCache
	if cfg.RedisURL != "" {
		leaderboardCache, err = challenges.NewLeaderboardCache(cfg.RedisURL, leaderboardCacheTTL)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to connect leaderboard cache: %w", err)
		}
		logger.Info("leaderboard cache enabled", "ttl", leaderboardCacheTTL)
	} else {
		logger.Warn("REDIS_URL not set, leaderboard cache disabled")
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	server := &Server{
		db:               db,
		config:           cfg,
		codec:            codec,
		userRepo:         users.NewRepository(db),
		activityRepo:     activities.NewRepository(db),
		challengeRepo:    challenges.NewRepository(db),
		questionRepo:     questions.NewRepository(db),
		blogRepo:         blogs.NewRepository(db),
		leaderboardCache: leaderboardCache,
		router:           router,
	}

	if err := RegisterRoutes(router, server); err != nil {
		server.Close()
		return nil, fmt.Errorf("failed to register routes: %w", err)
	}

	return server, nil
}

// releases the server's connections
func (s *Server) Close() {
	if s.leaderboardCache != nil {
		s.leaderboardCache.Close() //nolint:errcheck,gosec // best-effort cleanup on shutdown
	}

	s.db.Close()
}
