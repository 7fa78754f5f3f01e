package repository

import (
	"context"

	"artfeed/internal/model"
)

// CommentRepository stores free-text remarks on arts. Append-only.
type CommentRepository interface {
	// Create inserts a comment. Returns errs.ErrNotFound if the art or
	// author is unknown.
	Create(ctx context.Context, c *model.Comment) error

	// ListByArt returns an art's comments, oldest first.
	ListByArt(ctx context.Context, artID int64) ([]model.Comment, error)
}
