package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// postgres unique_violation
const uniqueViolationCode = "23505"

// creates a new user repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// inserts a new user with default counters. Uniqueness of email and
// username is enforced by the store's constraints, so two concurrent
// registrations with the same email cannot both succeed.
func (r *Repository) Create(ctx context.Context, username, email, passwordHash string) (*User, error) {
	var user User

	err := r.db.QueryRow(ctx, queryCreate, username, email, passwordHash).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.ProductivityScore,
		&user.SkillScore,
		&user.XP,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	return &user, nil
}

// finds a user by email
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.scanOne(r.db.QueryRow(ctx, queryFindByEmail, email))
}

// finds a user by their ID
func (r *Repository) FindByID(ctx context.Context, id string) (*User, error) {
	return r.scanOne(r.db.QueryRow(ctx, queryFindByID, id))
}

// adds XP to a user's running total
func (r *Repository) AddXP(ctx context.Context, id string, delta int) (*User, error) {
	return r.scanOne(r.db.QueryRow(ctx, queryAddXP, delta, id))
}

// replaces a user's productivity and skill scores
func (r *Repository) UpdateScores(ctx context.Context, id string, productivityScore, skillScore int) (*User, error) {
	return r.scanOne(r.db.QueryRow(ctx, queryUpdateScores, productivityScore, skillScore, id))
}

func (r *Repository) scanOne(row pgx.Row) (*User, error) {
	var user User

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.ProductivityScore,
		&user.SkillScore,
		&user.XP,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

// compile-time interface check
var _ Store = (*Repository)(nil)
