package questions

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// returned when no question matches the lookup
var ErrNotFound = errors.New("question not found")

// represents one question on the community board
type Question struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	AuthorUsername string    `json:"author_username"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

// represents one answer to a question
type Answer struct {
	ID             string    `json:"id"`
	QuestionID     string    `json:"question_id"`
	UserID         string    `json:"user_id"`
	AuthorUsername string    `json:"author_username"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

// a question together with its answers
type QuestionWithAnswers struct {
	Question
	Answers []Answer `json:"answers"`
}

// contains the fields a client submits when asking a question
type CreateQuestionRequest struct {
	Title   string `json:"title" binding:"required,max=300"`
	Content string `json:"content" binding:"required"`
}

// contains the fields a client submits when answering a question
type CreateAnswerRequest struct {
	Content string `json:"content" binding:"required"`
}

// persistence operations for questions and their answers
type Store interface {
	List(ctx context.Context) ([]Question, error)
	Get(ctx context.Context, id string) (*QuestionWithAnswers, error)
	Create(ctx context.Context, userID string, req CreateQuestionRequest) (*Question, error)
	CreateAnswer(ctx context.Context, questionID, userID string, req CreateAnswerRequest) (*Answer, error)
}

// handles question and answer database operations
type Repository struct {
	db *pgxpool.Pool
}
