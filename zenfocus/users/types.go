package users

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// returned when no user matches the lookup
	ErrNotFound = errors.New("user not found")
	// returned when a registration collides with an existing email or username
	ErrDuplicate = errors.New("user already exists")
)

// represents one registered account
type User struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"-"`
	ProductivityScore int       `json:"productivity_score"`
	SkillScore        int       `json:"skill_score"`
	XP                int       `json:"xp"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// the public view of a user, safe to return to any client
type PublicProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// returns the client-safe view of the user
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// persistence operations for users. Handlers depend on this interface
// so tests can substitute an in-memory store.
type Store interface {
	Create(ctx context.Context, username, email, passwordHash string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	AddXP(ctx context.Context, id string, delta int) (*User, error)
	UpdateScores(ctx context.Context, id string, productivityScore, skillScore int) (*User, error)
}

// handles user database operations
type Repository struct {
	db *pgxpool.Pool
}
