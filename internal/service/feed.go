package service

import (
	"context"
	"errors"

	"artfeed/internal/model"
	"artfeed/internal/repository"
)

// FeedService serves each viewer a stream of other users' unrated arts.
type FeedService interface {
	// Next picks the next unseen art for the viewer, uniformly at random.
	// Returns errs.ErrFeedExhausted when nothing is left to rate.
	Next(ctx context.Context, viewerID int64) (*model.Art, error)
}

type FeedServiceImpl struct {
	arts repository.ArtRepository
}

// NewFeedService constructs FeedService.
func NewFeedService(arts repository.ArtRepository) *FeedServiceImpl {
	return &FeedServiceImpl{arts: arts}
}

// Next validates the viewer and delegates selection to the repository.
// Self-owned and already-reacted arts are excluded there; an art shown but
// never reacted to stays eligible and may come back.
func (s *FeedServiceImpl) Next(ctx context.Context, viewerID int64) (*model.Art, error) {
	if viewerID == 0 {
		return nil, errors.New("validation: empty viewerID")
	}
	return s.arts.RandomUnseen(ctx, viewerID)
}
