package service

import (
	"context"
	"errors"

	"artfeed/internal/model"
	"artfeed/internal/repository"
)

// ProfilePage is one page of an owner's gallery: aggregate stats, the art
// at the (clamped) requested index and that art's comments.
type ProfilePage struct {
	Stats    model.OwnerStats
	Art      *model.Art // nil when the gallery is empty
	Comments []model.Comment
	Index    int
	Total    int
}

// ProfileService lets an owner browse their own gallery one art at a time.
type ProfileService interface {
	// Page loads the owner's gallery page at index. The index is clamped
	// to [0, total-1]; navigation past either end stays on the boundary
	// page. An empty gallery yields a page with Total 0 and a nil Art.
	Page(ctx context.Context, ownerID int64, index int) (*ProfilePage, error)
}

type ProfileServiceImpl struct {
	arts     repository.ArtRepository
	comments repository.CommentRepository
}

// NewProfileService constructs ProfileService.
func NewProfileService(arts repository.ArtRepository, comments repository.CommentRepository) *ProfileServiceImpl {
	return &ProfileServiceImpl{arts: arts, comments: comments}
}

// Page assembles stats, the indexed art and its comments.
func (s *ProfileServiceImpl) Page(ctx context.Context, ownerID int64, index int) (*ProfilePage, error) {
	if ownerID == 0 {
		return nil, errors.New("validation: empty ownerID")
	}

	stats, err := s.arts.OwnerStats(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	owned, err := s.arts.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(owned) == 0 {
		return &ProfilePage{Stats: stats}, nil
	}

	if index < 0 {
		index = 0
	}
	if index > len(owned)-1 {
		index = len(owned) - 1
	}
	art := owned[index]

	comments, err := s.comments.ListByArt(ctx, art.ID)
	if err != nil {
		return nil, err
	}
	return &ProfilePage{
		Stats:    stats,
		Art:      &art,
		Comments: comments,
		Index:    index,
		Total:    len(owned),
	}, nil
}
