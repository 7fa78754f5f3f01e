// Package service contains application services over the content store:
// gallery writes, feed selection, the reaction ledger and profile paging.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"

	"artfeed/internal/errs"
	"artfeed/internal/model"
	"artfeed/internal/repository"
)

// GalleryService covers user registration, uploads and comments.
type GalleryService interface {
	// RegisterUser upserts an account; safe to call on every contact.
	RegisterUser(ctx context.Context, userID int64, displayName string) error
	// Upload stores a new art and returns its id.
	Upload(ctx context.Context, ownerID int64, fileID, caption string) (int64, error)
	// Comment appends a free-text remark to an art.
	Comment(ctx context.Context, authorID, artID int64, body string) error
	// GetArt returns a single art.
	GetArt(ctx context.Context, artID int64) (*model.Art, error)
}

type GalleryServiceImpl struct {
	users    repository.UserRepository
	arts     repository.ArtRepository
	comments repository.CommentRepository
}

// NewGalleryService constructs GalleryService with required repositories.
func NewGalleryService(users repository.UserRepository, arts repository.ArtRepository, comments repository.CommentRepository) *GalleryServiceImpl {
	return &GalleryServiceImpl{users: users, arts: arts, comments: comments}
}

// RegisterUser validates the id and delegates the idempotent upsert.
func (s *GalleryServiceImpl) RegisterUser(ctx context.Context, userID int64, displayName string) error {
	if userID == 0 {
		return errors.New("validation: empty userID")
	}
	return s.users.Register(ctx, &model.User{ID: userID, DisplayName: strings.TrimSpace(displayName)})
}

// Upload validates input and stores the art with zeroed counters.
func (s *GalleryServiceImpl) Upload(ctx context.Context, ownerID int64, fileID, caption string) (int64, error) {
	if ownerID == 0 {
		return 0, errors.New("validation: empty ownerID")
	}
	if fileID == "" {
		return 0, errors.New("validation: empty fileID")
	}
	return s.arts.Create(ctx, ownerID, fileID, strings.TrimSpace(caption))
}

// Comment validates input and appends the comment.
func (s *GalleryServiceImpl) Comment(ctx context.Context, authorID, artID int64, body string) error {
	if authorID == 0 || artID == 0 {
		return errors.New("validation: empty authorID/artID")
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return fmt.Errorf("empty comment body: %w", errs.ErrInvalidInput)
	}
	id, err := uuid.NewV4()
	if err != nil {
		return err
	}
	return s.comments.Create(ctx, &model.Comment{ID: id, AuthorID: authorID, ArtID: artID, Body: body})
}

// GetArt fetches a single art by id.
func (s *GalleryServiceImpl) GetArt(ctx context.Context, artID int64) (*model.Art, error) {
	if artID == 0 {
		return nil, errors.New("validation: empty artID")
	}
	return s.arts.Get(ctx, artID)
}
