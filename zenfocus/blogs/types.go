package blogs

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// returned when no blog matches the lookup
var ErrNotFound = errors.New("blog not found")

// represents one blog post
type Blog struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	AuthorUsername string    `json:"author_username"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Image          string    `json:"image"`
	Tags           string    `json:"tags"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// contains the fields a client submits when publishing a blog
type CreateBlogRequest struct {
	Title   string `json:"title" binding:"required,max=300"`
	Content string `json:"content" binding:"required"`
	Image   string `json:"image"`
	Tags    string `json:"tags"`
}

// contains the fields a client may change on an existing blog.
// Nil fields keep their current value.
type UpdateBlogRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Image   *string `json:"image"`
	Tags    *string `json:"tags"`
}

// persistence operations for blogs
type Store interface {
	List(ctx context.Context) ([]Blog, error)
	Get(ctx context.Context, id string) (*Blog, error)
	Create(ctx context.Context, userID string, req CreateBlogRequest) (*Blog, error)
	Update(ctx context.Context, id string, req UpdateBlogRequest) (*Blog, error)
	Delete(ctx context.Context, id string) error
}

// handles blog database operations
type Repository struct {
	db *pgxpool.Pool
}
