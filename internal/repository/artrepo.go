package repository

import (
	"context"

	"artfeed/internal/model"
)

// ArtRepository provides access to uploaded arts and gallery aggregates.
type ArtRepository interface {
	// Create inserts an art for a known owner and returns its new id.
	// Returns errs.ErrNotFound if the owner is not registered.
	Create(ctx context.Context, ownerID int64, fileID, caption string) (int64, error)

	// Get returns a single art by id.
	Get(ctx context.Context, id int64) (*model.Art, error)

	// ListByOwner returns the owner's arts, newest first.
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Art, error)

	// OwnerStats aggregates count and total likes/dislikes over the
	// owner's arts. An empty gallery yields zeros, not an error.
	OwnerStats(ctx context.Context, ownerID int64) (model.OwnerStats, error)

	// RandomUnseen picks, uniformly at random, an art the viewer does not
	// own and has not reacted to. Returns errs.ErrFeedExhausted when no
	// candidate remains.
	RandomUnseen(ctx context.Context, viewerID int64) (*model.Art, error)
}
