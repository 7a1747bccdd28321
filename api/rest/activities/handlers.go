package activities

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/zenfocus/server/internal/auth"
	"codeberg.org/zenfocus/server/internal/errors"
	"codeberg.org/zenfocus/server/zenfocus/activities"
)

// LogActivityHandler records one activity for the authenticated user
func LogActivityHandler(store activities.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		var req activities.LogActivityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		activity, err := store.Log(c.Request.Context(), userID, req)
		if err != nil {
			errors.InternalError(c, "failed to log activity", err)
			return
		}

		c.JSON(http.StatusCreated, LogActivityResponse{
			Message:  "activity logged successfully",
			Activity: activity,
		})
	}
}

// ListActivitiesHandler lists the authenticated user's activities,
// newest first
func ListActivitiesHandler(store activities.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		list, err := store.ListByUser(c.Request.Context(), userID)
		if err != nil {
			errors.InternalError(c, "failed to list activities", err)
			return
		}

		c.JSON(http.StatusOK, ActivitiesResponse{Activities: list})
	}
}
