package questions

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const foreignKeyViolationCode = "23503"

// creates a new question repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// lists all questions, newest first, with author usernames
func (r *Repository) List(ctx context.Context) ([]Question, error) {
	rows, err := r.db.Query(ctx, queryList)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions := []Question{}

	for rows.Next() {
		var q Question

		err := rows.Scan(&q.ID, &q.UserID, &q.AuthorUsername, &q.Title, &q.Content, &q.CreatedAt)
		if err != nil {
			return nil, err
		}

		questions = append(questions, q)
	}

	return questions, rows.Err()
}

// fetches one question with its answers, oldest answer first
func (r *Repository) Get(ctx context.Context, id string) (*QuestionWithAnswers, error) {
	var result QuestionWithAnswers

	err := r.db.QueryRow(ctx, queryGet, id).Scan(
		&result.ID,
		&result.UserID,
		&result.AuthorUsername,
		&result.Title,
		&result.Content,
		&result.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rows, err := r.db.Query(ctx, queryListAnswers, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result.Answers = []Answer{}

	for rows.Next() {
		var a Answer

		err := rows.Scan(&a.ID, &a.QuestionID, &a.UserID, &a.AuthorUsername, &a.Content, &a.CreatedAt)
		if err != nil {
			return nil, err
		}

		result.Answers = append(result.Answers, a)
	}

	return &result, rows.Err()
}

// creates a question authored by the given user
func (r *Repository) Create(ctx context.Context, userID string, req CreateQuestionRequest) (*Question, error) {
	var q Question

	err := r.db.QueryRow(ctx, queryCreate, userID, req.Title, req.Content).Scan(
		&q.ID,
		&q.UserID,
		&q.Title,
		&q.Content,
		&q.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &q, nil
}

// creates an answer on a question. An unknown question surfaces as
// ErrNotFound via the foreign key constraint.
func (r *Repository) CreateAnswer(ctx context.Context, questionID, userID string, req CreateAnswerRequest) (*Answer, error) {
	var a Answer

	err := r.db.QueryRow(ctx, queryCreateAnswer, questionID, userID, req.Content).Scan(
		&a.ID,
		&a.QuestionID,
		&a.UserID,
		&a.Content,
		&a.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &a, nil
}

var _ Store = (*Repository)(nil)
