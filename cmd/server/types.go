package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/zenfocus/server/internal/auth"
	"codeberg.org/zenfocus/server/internal/config"
	"codeberg.org/zenfocus/server/zenfocus/activities"
	"codeberg.org/zenfocus/server/zenfocus/blogs"
	"codeberg.org/zenfocus/server/zenfocus/challenges"
	"codeberg.org/zenfocus/server/zenfocus/questions"
	"codeberg.org/zenfocus/server/zenfocus/users"
)

// holds all dependencies and state for the API server
type Server struct {
	db               *pgxpool.Pool
	config           *config.Config
	codec            *auth.Codec
	userRepo         *users.Repository
	activityRepo     *activities.Repository
	challengeRepo    *challenges.Repository
	questionRepo     *questions.Repository
	blogRepo         *blogs.Repository
	leaderboardCache *challenges.LeaderboardCache
	router           *gin.Engine
}
