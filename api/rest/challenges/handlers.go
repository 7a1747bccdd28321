package challenges

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/zenfocus/server/internal/auth"
	"codeberg.org/zenfocus/server/internal/errors"
	"codeberg.org/zenfocus/server/internal/logger"
	"codeberg.org/zenfocus/server/zenfocus/challenges"
)

// CreateChallengeHandler creates a challenge owned by the caller
func CreateChallengeHandler(store challenges.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		var req challenges.CreateChallengeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		challenge, err := store.Create(c.Request.Context(), userID, req)
		if err != nil {
			errors.InternalError(c, "failed to create challenge", err)
			return
		}

		c.JSON(http.StatusCreated, challenge)
	}
}

// JoinChallengeHandler adds the caller as a participant with score 0
func JoinChallengeHandler(store challenges.Store, cache *challenges.LeaderboardCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		challengeID := c.Param("id")

		err := store.Join(c.Request.Context(), challengeID, userID)
		if err != nil {
			switch {
			case stderrors.Is(err, challenges.ErrAlreadyJoined):
				errors.BadRequest(c, "already joined")
			case stderrors.Is(err, challenges.ErrNotFound):
				errors.NotFound(c, "challenge")
			default:
				errors.InternalError(c, "failed to join challenge", err)
			}
			return
		}

		invalidateLeaderboard(c, cache, challengeID)

		c.JSON(http.StatusOK, MessageResponse{Message: "joined challenge successfully"})
	}
}

// LeaderboardHandler returns participants ranked by score. Warm reads
// come from the Redis cache; misses fall back to Postgres and
// repopulate it.
func LeaderboardHandler(store challenges.Store, cache *challenges.LeaderboardCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		challengeID := c.Param("id")
		ctx := c.Request.Context()

		if cache != nil {
			leaderboard, err := cache.Get(ctx, challengeID)
			if err == nil {
				c.JSON(http.StatusOK, LeaderboardResponse{Leaderboard: leaderboard})
				return
			}
			if !stderrors.Is(err, challenges.ErrCacheMiss) {
				// degraded, not broken: fall through to Postgres
				logger.ErrorErr(err, "leaderboard cache read failed", "challenge_id", challengeID)
			}
		}

		if _, err := store.Get(ctx, challengeID); err != nil {
			if stderrors.Is(err, challenges.ErrNotFound) {
				errors.NotFound(c, "challenge")
				return
			}
			errors.InternalError(c, "failed to load challenge", err)
			return
		}

		participants, err := store.Participants(ctx, challengeID)
		if err != nil {
			errors.InternalError(c, "failed to load leaderboard", err)
			return
		}

		if cache != nil {
			if err := cache.Set(ctx, challengeID, participants); err != nil {
				logger.ErrorErr(err, "leaderboard cache write failed", "challenge_id", challengeID)
			}
		}

		c.JSON(http.StatusOK, LeaderboardResponse{Leaderboard: challenges.Rank(participants)})
	}
}

// UpdateScoreHandler sets the caller's score within a challenge
func UpdateScoreHandler(store challenges.Store, cache *challenges.LeaderboardCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		challengeID := c.Param("id")

		var req UpdateScoreRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		err := store.UpdateScore(c.Request.Context(), challengeID, userID, req.Score)
		if err != nil {
			switch {
			case stderrors.Is(err, challenges.ErrNotJoined):
				errors.BadRequest(c, "not a participant in this challenge")
			case stderrors.Is(err, challenges.ErrNotFound):
				errors.NotFound(c, "challenge")
			default:
				errors.InternalError(c, "failed to update score", err)
			}
			return
		}

		invalidateLeaderboard(c, cache, challengeID)

		c.JSON(http.StatusOK, MessageResponse{Message: "score updated"})
	}
}

func invalidateLeaderboard(c *gin.Context, cache *challenges.LeaderboardCache, challengeID string) {
	if cache == nil {
		return
	}

	if err := cache.Invalidate(c.Request.Context(), challengeID); err != nil {
		logger.ErrorErr(err, "leaderboard cache invalidation failed", "challenge_id", challengeID)
	}
}
