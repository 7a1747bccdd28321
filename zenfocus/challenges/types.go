package challenges

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// returned when no challenge matches the lookup
	ErrNotFound = errors.New("challenge not found")
	// returned when a user joins a challenge they already participate in
	ErrAlreadyJoined = errors.New("already joined")
	// returned when a user acts on a challenge they have not joined
	ErrNotJoined = errors.New("not a participant")
)

// represents one coding challenge
type Challenge struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Platform    string    `json:"platform"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Difficulty  string    `json:"difficulty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// contains the fields a client submits when creating a challenge
type CreateChallengeRequest struct {
	Title       string    `json:"title" binding:"required,max=200"`
	Description string    `json:"description"`
	Platform    string    `json:"platform"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Difficulty  string    `json:"difficulty"`
}

// one participant's standing within a challenge
type Participant struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Status   string `json:"status"`
	Score    int    `json:"score"`
}

// one row of a ranked leaderboard
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// persistence operations for challenges
type Store interface {
	Create(ctx context.Context, createdBy string, req CreateChallengeRequest) (*Challenge, error)
	Get(ctx context.Context, id string) (*Challenge, error)
	Join(ctx context.Context, challengeID, userID string) error
	Participants(ctx context.Context, challengeID string) ([]Participant, error)
	UpdateScore(ctx context.Context, challengeID, userID string, score int) error
}

// handles challenge database operations
type Repository struct {
	db *pgxpool.Pool
}
