package activities

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/zenfocus/server/internal/auth"
	"codeberg.org/zenfocus/server/zenfocus/activities"
)

// registers the activity routes, all behind authentication
func RegisterRoutes(router *gin.RouterGroup, store activities.Store, codec *auth.Codec) {
	group := router.Group("/activity")
	group.Use(auth.Middleware(codec))
	{
		group.POST("", LogActivityHandler(store))
		group.GET("", ListActivitiesHandler(store))
	}
}
