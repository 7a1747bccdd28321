package blogs

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new blog repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// lists all blogs, newest first, with author usernames
func (r *Repository) List(ctx context.Context) ([]Blog, error) {
	rows, err := r.db.Query(ctx, queryList)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []Blog{}

	for rows.Next() {
		var b Blog

		err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.AuthorUsername,
			&b.Title,
			&b.Content,
			&b.Image,
			&b.Tags,
			&b.CreatedAt,
			&b.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		blogs = append(blogs, b)
	}

	return blogs, rows.Err()
}

// fetches one blog by ID
func (r *Repository) Get(ctx context.Context, id string) (*Blog, error) {
	var b Blog

	err := r.db.QueryRow(ctx, queryGet, id).Scan(
		&b.ID,
		&b.UserID,
		&b.AuthorUsername,
		&b.Title,
		&b.Content,
		&b.Image,
		&b.Tags,
		&b.CreatedAt,
		&b.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &b, nil
}

// creates a blog authored by the given user
func (r *Repository) Create(ctx context.Context, userID string, req CreateBlogRequest) (*Blog, error) {
	var b Blog

	err := r.db.QueryRow(ctx, queryCreate, userID, req.Title, req.Content, req.Image, req.Tags).Scan(
		&b.ID,
		&b.UserID,
		&b.Title,
		&b.Content,
		&b.Image,
		&b.Tags,
		&b.CreatedAt,
		&b.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	return &b, nil
}

// updates a blog, keeping any field the request leaves nil
func (r *Repository) Update(ctx context.Context, id string, req UpdateBlogRequest) (*Blog, error) {
	var b Blog

	err := r.db.QueryRow(ctx, queryUpdate, req.Title, req.Content, req.Image, req.Tags, id).Scan(
		&b.ID,
		&b.UserID,
		&b.Title,
		&b.Content,
		&b.Image,
		&b.Tags,
		&b.CreatedAt,
		&b.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &b, nil
}

// deletes a blog by ID
func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, queryDelete, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

var _ Store = (*Repository)(nil)
