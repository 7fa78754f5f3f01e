package repository

import (
	"context"

	"artfeed/internal/model"
)

// ReactionRepository is the at-most-once reaction ledger.
type ReactionRepository interface {
	// Record inserts the reaction and bumps the matching counter on the
	// art as a single transaction. Returns errs.ErrAlreadyReacted if a
	// reaction for (UserID, ArtID) exists (the unique constraint is the
	// race guard) and errs.ErrNotFound if the art or user is unknown.
	Record(ctx context.Context, r model.Reaction) error

	// Exists reports whether the viewer has already reacted to the art.
	Exists(ctx context.Context, userID, artID int64) (bool, error)
}
