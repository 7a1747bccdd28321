package activities

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// represents one logged slice of app or website usage
type Activity struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	AppName         string    `json:"app_name"`
	WebsiteURL      string    `json:"website_url"`
	Category        string    `json:"category"`
	DurationMinutes int       `json:"duration_minutes"`
	Date            time.Time `json:"date"`
}

// contains the fields a client submits when logging an activity
type LogActivityRequest struct {
	AppName         string `json:"app_name"`
	WebsiteURL      string `json:"website_url"`
	Category        string `json:"category"`
	DurationMinutes int    `json:"duration_minutes" binding:"min=0"`
}

// persistence operations for activities
type Store interface {
	Log(ctx context.Context, userID string, req LogActivityRequest) (*Activity, error)
	ListByUser(ctx context.Context, userID string) ([]Activity, error)
}

// handles activity database operations
type Repository struct {
	db *pgxpool.Pool
}
