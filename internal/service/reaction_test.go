package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"artfeed/internal/errs"
	"artfeed/internal/model"
)

func TestReactionService_Record(t *testing.T) {
	ctx := context.Background()
	repo := &fakeReactionRepo{}
	s := NewReactionService(repo)

	require.NoError(t, s.Record(ctx, 2, 10, model.KindApprove))
	require.Len(t, repo.recorded, 1)
	require.Equal(t, model.Reaction{UserID: 2, ArtID: 10, Kind: model.KindApprove}, repo.recorded[0])
}

func TestReactionService_Record_AlreadyReacted_FastPath(t *testing.T) {
	ctx := context.Background()
	repo := &fakeReactionRepo{existsOut: true}
	s := NewReactionService(repo)

	err := s.Record(ctx, 2, 10, model.KindDisapprove)
	require.ErrorIs(t, err, errs.ErrAlreadyReacted)
	// The ledger was never touched.
	require.Empty(t, repo.recorded)
}

func TestReactionService_Record_RaceLoserGetsAlreadyReacted(t *testing.T) {
	// Both callers pass the existence check; the constraint decides.
	ctx := context.Background()
	repo := &fakeReactionRepo{recordErr: errs.ErrAlreadyReacted}
	s := NewReactionService(repo)

	err := s.Record(ctx, 2, 10, model.KindApprove)
	require.ErrorIs(t, err, errs.ErrAlreadyReacted)
}

func TestReactionService_Record_Validation(t *testing.T) {
	ctx := context.Background()
	s := NewReactionService(&fakeReactionRepo{})

	require.Error(t, s.Record(ctx, 0, 10, model.KindApprove))
	require.Error(t, s.Record(ctx, 2, 0, model.KindApprove))
	require.Error(t, s.Record(ctx, 2, 10, model.ReactionKind("meh")))
}
