package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"artfeed/internal/model"
)

func threeArts() []model.Art {
	return []model.Art{
		{ID: 12, OwnerID: 1, FileID: "f3"},
		{ID: 11, OwnerID: 1, FileID: "f2"},
		{ID: 10, OwnerID: 1, FileID: "f1"},
	}
}

func TestProfileService_Page(t *testing.T) {
	ctx := context.Background()
	arts := &fakeArtRepo{
		listOut:  threeArts(),
		statsOut: model.OwnerStats{Arts: 3, Likes: 5, Dislikes: 2},
	}
	s := NewProfileService(arts, &fakeCommentRepo{})

	p, err := s.Page(ctx, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 1, p.Index)
	require.Equal(t, 3, p.Total)
	require.Equal(t, int64(11), p.Art.ID)
	require.Equal(t, int64(5), p.Stats.Likes)
}

func TestProfileService_Page_ClampsAtEnds(t *testing.T) {
	ctx := context.Background()
	arts := &fakeArtRepo{listOut: threeArts()}
	s := NewProfileService(arts, &fakeCommentRepo{})

	// Advancing past the last index stays on the last page, no wrap.
	p, err := s.Page(ctx, 1, 3)
	require.NoError(t, err)
	require.Equal(t, 2, p.Index)
	require.Equal(t, int64(10), p.Art.ID)

	p, err = s.Page(ctx, 1, -1)
	require.NoError(t, err)
	require.Equal(t, 0, p.Index)
	require.Equal(t, int64(12), p.Art.ID)
}

func TestProfileService_Page_EmptyGallery(t *testing.T) {
	ctx := context.Background()
	s := NewProfileService(&fakeArtRepo{}, &fakeCommentRepo{})

	p, err := s.Page(ctx, 1, 0)
	require.NoError(t, err)
	require.Zero(t, p.Total)
	require.Nil(t, p.Art)
	require.Zero(t, p.Stats.Arts)
}

func TestProfileService_Page_IncludesComments(t *testing.T) {
	ctx := context.Background()
	comments := &fakeCommentRepo{listOut: []model.Comment{{Body: "nice"}}}
	s := NewProfileService(&fakeArtRepo{listOut: threeArts()}, comments)

	p, err := s.Page(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, p.Comments, 1)
}
