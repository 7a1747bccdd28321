package blogs

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/zenfocus/server/internal/auth"
	"codeberg.org/zenfocus/server/internal/errors"
	"codeberg.org/zenfocus/server/zenfocus/blogs"
)

// ListBlogsHandler lists all blogs, newest first
func ListBlogsHandler(store blogs.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := store.List(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to list blogs", err)
			return
		}

		c.JSON(http.StatusOK, BlogsResponse{Blogs: list})
	}
}

// GetBlogHandler returns one blog by ID
func GetBlogHandler(store blogs.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		blog, err := store.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if stderrors.Is(err, blogs.ErrNotFound) {
				errors.NotFound(c, "blog")
				return
			}
			errors.InternalError(c, "failed to load blog", err)
			return
		}

		c.JSON(http.StatusOK, blog)
	}
}

// CreateBlogHandler publishes a blog authored by the caller
func CreateBlogHandler(store blogs.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		var req blogs.CreateBlogRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		blog, err := store.Create(c.Request.Context(), userID, req)
		if err != nil {
			errors.InternalError(c, "failed to create blog", err)
			return
		}

		c.JSON(http.StatusCreated, blog)
	}
}

// UpdateBlogHandler edits a blog; only the owner may update it
func UpdateBlogHandler(store blogs.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		blogID := c.Param("id")
		ctx := c.Request.Context()

		existing, err := store.Get(ctx, blogID)
		if err != nil {
			if stderrors.Is(err, blogs.ErrNotFound) {
				errors.NotFound(c, "blog")
				return
			}
			errors.InternalError(c, "failed to load blog", err)
			return
		}

		if existing.UserID != userID {
			errors.Forbidden(c, "only the author can update this blog")
			return
		}

		var req blogs.UpdateBlogRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		blog, err := store.Update(ctx, blogID, req)
		if err != nil {
			errors.InternalError(c, "failed to update blog", err)
			return
		}

		c.JSON(http.StatusOK, blog)
	}
}

// DeleteBlogHandler removes a blog; only the owner may delete it
func DeleteBlogHandler(store blogs.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.UserID(c)
		if !ok {
			errors.Unauthorized(c, "")
			return
		}

		blogID := c.Param("id")
		ctx := c.Request.Context()

		existing, err := store.Get(ctx, blogID)
		if err != nil {
			if stderrors.Is(err, blogs.ErrNotFound) {
				errors.NotFound(c, "blog")
				return
			}
			errors.InternalError(c, "failed to load blog", err)
			return
		}

		if existing.UserID != userID {
			errors.Forbidden(c, "only the author can delete this blog")
			return
		}

		if err := store.Delete(ctx, blogID); err != nil {
			errors.InternalError(c, "failed to delete blog", err)
			return
		}

		c.JSON(http.StatusOK, MessageResponse{Message: "blog deleted successfully"})
	}
}
