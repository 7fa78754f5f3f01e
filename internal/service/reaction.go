package service

import (
	"context"
	"errors"
	"fmt"

	"artfeed/internal/errs"
	"artfeed/internal/model"
	"artfeed/internal/repository"
)

// ReactionService records approvals and disapprovals at most once
// per (viewer, art) pair.
type ReactionService interface {
	// Record stores the reaction and updates the art's counters.
	// Returns errs.ErrAlreadyReacted on a duplicate and errs.ErrNotFound
	// for an unknown art.
	Record(ctx context.Context, viewerID, artID int64, kind model.ReactionKind) error
}

type ReactionServiceImpl struct {
	reactions repository.ReactionRepository
}

// NewReactionService constructs ReactionService.
func NewReactionService(reactions repository.ReactionRepository) *ReactionServiceImpl {
	return &ReactionServiceImpl{reactions: reactions}
}

// Record checks for an existing reaction first for a cheap rejection, then
// lets the ledger's unique constraint settle any race: two concurrent calls
// for the same pair may both pass the check, but only one insert commits.
func (s *ReactionServiceImpl) Record(ctx context.Context, viewerID, artID int64, kind model.ReactionKind) error {
	if viewerID == 0 || artID == 0 {
		return errors.New("validation: empty viewerID/artID")
	}
	if !kind.Valid() {
		return fmt.Errorf("validation: unknown reaction kind %q", kind)
	}

	seen, err := s.reactions.Exists(ctx, viewerID, artID)
	if err != nil {
		return err
	}
	if seen {
		return errs.ErrAlreadyReacted
	}
	return s.reactions.Record(ctx, model.Reaction{UserID: viewerID, ArtID: artID, Kind: kind})
}
