package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"artfeed/internal/errs"
	"artfeed/internal/model"
)

// UserRepo implements UserRepository using PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo constructs a user repository.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

// Register upserts a user row. An empty display name never overwrites a
// stored one, so repeated /start contacts are safe.
func (r *UserRepo) Register(ctx context.Context, u *model.User) error {
	const q = `
INSERT INTO users (id, display_name)
VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE
SET display_name = excluded.display_name
WHERE excluded.display_name <> ''`
	_, err := r.db.Pool.Exec(ctx, q, u.ID, u.DisplayName)
	return err
}

// Get selects a user by id.
func (r *UserRepo) Get(ctx context.Context, id int64) (*model.User, error) {
	const q = `
SELECT id, display_name, created_at
FROM users WHERE id=$1`
	row := r.db.Pool.QueryRow(ctx, q, id)
	var u model.User
	if err := row.Scan(&u.ID, &u.DisplayName, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
