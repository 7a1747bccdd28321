package auth

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/zenfocus/server/internal/auth"
	"codeberg.org/zenfocus/server/zenfocus/users"
)

// registers the authentication routes. The rate limit middleware, when
// provided, covers only the credential endpoints.
func RegisterRoutes(router *gin.RouterGroup, userStore users.Store, codec *auth.Codec, limit gin.HandlerFunc) {
	authGroup := router.Group("/auth")
	{
		credentials := authGroup.Group("")
		if limit != nil {
			credentials.Use(limit)
		}
		credentials.POST("/register", RegisterHandler(userStore))
		credentials.POST("/login", LoginHandler(userStore, codec))

		authGroup.POST("/logout", LogoutHandler())
		authGroup.GET("/me", auth.Middleware(codec), MeHandler(userStore))
	}
}
