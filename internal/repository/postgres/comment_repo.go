package postgres

import (
	"context"

	"artfeed/internal/errs"
	"artfeed/internal/model"
)

// CommentRepo implements CommentRepository using PostgreSQL.
type CommentRepo struct{ db *DB }

// NewCommentRepo constructs a comment repository.
func NewCommentRepo(db *DB) *CommentRepo { return &CommentRepo{db: db} }

// Create inserts a comment row.
func (r *CommentRepo) Create(ctx context.Context, c *model.Comment) error {
	const q = `
INSERT INTO comments (id, author_id, art_id, body)
VALUES ($1, $2, $3, $4)`
	_, err := r.db.Pool.Exec(ctx, q, c.ID, c.AuthorID, c.ArtID, c.Body)
	if isForeignKeyViolation(err) {
		return errs.ErrNotFound
	}
	return err
}

// ListByArt returns the art's comments, oldest first.
func (r *CommentRepo) ListByArt(ctx context.Context, artID int64) ([]model.Comment, error) {
	const q = `
SELECT id, author_id, art_id, body, created_at
FROM comments
WHERE art_id=$1
ORDER BY created_at ASC, id ASC`
	rows, err := r.db.Pool.Query(ctx, q, artID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Comment
	for rows.Next() {
		var c model.Comment
		if err = rows.Scan(&c.ID, &c.AuthorID, &c.ArtID, &c.Body, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
