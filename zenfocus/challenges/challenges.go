package challenges

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// creates a new challenge repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// creates a challenge owned by the given user
func (r *Repository) Create(ctx context.Context, createdBy string, req CreateChallengeRequest) (*Challenge, error) {
	var challenge Challenge

	err := r.db.QueryRow(
		ctx,
		queryCreate,
		req.Title,
		req.Description,
		req.Platform,
		req.StartDate,
		req.EndDate,
		req.Difficulty,
		createdBy,
	).Scan(
		&challenge.ID,
		&challenge.Title,
		&challenge.Description,
		&challenge.Platform,
		&challenge.StartDate,
		&challenge.EndDate,
		&challenge.Difficulty,
		&challenge.CreatedBy,
		&challenge.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &challenge, nil
}

// fetches one challenge by ID
func (r *Repository) Get(ctx context.Context, id string) (*Challenge, error) {
	var challenge Challenge

	err := r.db.QueryRow(ctx, queryGet, id).Scan(
		&challenge.ID,
		&challenge.Title,
		&challenge.Description,
		&challenge.Platform,
		&challenge.StartDate,
		&challenge.EndDate,
		&challenge.Difficulty,
		&challenge.CreatedBy,
		&challenge.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &challenge, nil
}

// adds the user as a participant with a zero score. The unique
// constraint on (challenge_id, user_id) makes double joins impossible
// even under concurrent requests.
func (r *Repository) Join(ctx context.Context, challengeID, userID string) error {
	_, err := r.db.Exec(ctx, queryJoin, challengeID, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case uniqueViolationCode:
				return ErrAlreadyJoined
			case foreignKeyViolationCode:
				return ErrNotFound
			}
		}
		return err
	}

	return nil
}

// lists participants with usernames, best score first
func (r *Repository) Participants(ctx context.Context, challengeID string) ([]Participant, error) {
	rows, err := r.db.Query(ctx, queryParticipants, challengeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := []Participant{}

	for rows.Next() {
		var p Participant

		if err := rows.Scan(&p.UserID, &p.Username, &p.Status, &p.Score); err != nil {
			return nil, err
		}

		participants = append(participants, p)
	}

	return participants, rows.Err()
}

// sets the participant's score within a challenge
func (r *Repository) UpdateScore(ctx context.Context, challengeID, userID string, score int) error {
	tag, err := r.db.Exec(ctx, queryUpdateScore, score, challengeID, userID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNotJoined
	}

	return nil
}

var _ Store = (*Repository)(nil)
