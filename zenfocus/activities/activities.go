package activities

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new activity repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// records one activity for the user
func (r *Repository) Log(ctx context.Context, userID string, req LogActivityRequest) (*Activity, error) {
	var activity Activity

	err := r.db.QueryRow(
		ctx,
		queryLog,
		userID,
		req.AppName,
		req.WebsiteURL,
		req.Category,
		req.DurationMinutes,
	).Scan(
		&activity.ID,
		&activity.UserID,
		&activity.AppName,
		&activity.WebsiteURL,
		&activity.Category,
		&activity.DurationMinutes,
		&activity.Date,
	)

	if err != nil {
		return nil, err
	}

	return &activity, nil
}

// lists the user's activities, newest first
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Activity, error) {
	rows, err := r.db.Query(ctx, queryListByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []Activity{}

	for rows.Next() {
		var activity Activity

		err := rows.Scan(
			&activity.ID,
			&activity.UserID,
			&activity.AppName,
			&activity.WebsiteURL,
			&activity.Category,
			&activity.DurationMinutes,
			&activity.Date,
		)
		if err != nil {
			return nil, err
		}

		activities = append(activities, activity)
	}

	return activities, rows.Err()
}

var _ Store = (*Repository)(nil)
