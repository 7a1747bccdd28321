package challenges

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/zenfocus/server/internal/auth"
	"codeberg.org/zenfocus/server/zenfocus/challenges"
)

// registers the challenge routes, all behind authentication
func RegisterRoutes(router *gin.RouterGroup, store challenges.Store, cache *challenges.LeaderboardCache, codec *auth.Codec) {
	group := router.Group("/challenges")
	group.Use(auth.Middleware(codec))
	{
		group.POST("", CreateChallengeHandler(store))
		group.POST("/:id/join", JoinChallengeHandler(store, cache))
		group.GET("/:id/leaderboard", LeaderboardHandler(store, cache))
		group.PUT("/:id/score", UpdateScoreHandler(store, cache))
	}
}
