package main

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"codeberg.org/zenfocus/server/api/rest/activities"
	"codeberg.org/zenfocus/server/api/rest/auth"
	"codeberg.org/zenfocus/server/api/rest/blogs"
	"codeberg.org/zenfocus/server/api/rest/challenges"
	"codeberg.org/zenfocus/server/api/rest/health"
	"codeberg.org/zenfocus/server/api/rest/questions"
	"codeberg.org/zenfocus/server/internal/ratelimit"
)

// per-IP budget for the credential endpoints
const credentialRateLimit = "10-M"

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) error {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/health", health.Handler)

	credentialLimit, err := ratelimit.Middleware(credentialRateLimit)
	if err != nil {
		return fmt.Errorf("failed to build rate limiter: %w", err)
	}

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		auth.RegisterRoutes(v1, server.userRepo, server.codec, credentialLimit)
		activities.RegisterRoutes(v1, server.activityRepo, server.codec)
		challenges.RegisterRoutes(v1, server.challengeRepo, server.leaderboardCache, server.codec)
		questions.RegisterRoutes(v1, server.questionRepo, server.codec)
		blogs.RegisterRoutes(v1, server.blogRepo, server.codec)
	}

	return nil
}
