package blogs

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/zenfocus/server/internal/auth"
	"codeberg.org/zenfocus/server/zenfocus/blogs"
)

// registers the blog routes. Reads are public; writes require
// authentication and update/delete are owner-only.
func RegisterRoutes(router *gin.RouterGroup, store blogs.Store, codec *auth.Codec) {
	group := router.Group("/blogs")
	{
		group.GET("", ListBlogsHandler(store))
		group.GET("/:id", GetBlogHandler(store))

		group.POST("", auth.Middleware(codec), CreateBlogHandler(store))
		group.PUT("/:id", auth.Middleware(codec), UpdateBlogHandler(store))
		group.DELETE("/:id", auth.Middleware(codec), DeleteBlogHandler(store))
	}
}
