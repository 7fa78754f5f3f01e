package service

import (
	"context"

	"artfeed/internal/errs"
	"artfeed/internal/model"
	"artfeed/internal/repository"
)

// fakeUserRepo records registrations keyed by id.
type fakeUserRepo struct {
	users map[int64]*model.User
	err   error
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*model.User)}
}

func (f *fakeUserRepo) Register(_ context.Context, u *model.User) error {
	if f.err != nil {
		return f.err
	}
	if cur, ok := f.users[u.ID]; ok {
		if u.DisplayName != "" {
			cur.DisplayName = u.DisplayName
		}
		return nil
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Get(_ context.Context, id int64) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return u, nil
}

// fakeArtRepo serves canned arts and captures Create input.
type fakeArtRepo struct {
	createdOwner   int64
	createdFileID  string
	createdCaption string
	createID       int64
	createErr      error

	getOut *model.Art
	getErr error

	listOut []model.Art
	listErr error

	statsOut model.OwnerStats
	statsErr error

	unseenOut *model.Art
	unseenErr error
}

var _ repository.ArtRepository = (*fakeArtRepo)(nil)

func (f *fakeArtRepo) Create(_ context.Context, ownerID int64, fileID, caption string) (int64, error) {
	f.createdOwner, f.createdFileID, f.createdCaption = ownerID, fileID, caption
	return f.createID, f.createErr
}

func (f *fakeArtRepo) Get(_ context.Context, _ int64) (*model.Art, error) { return f.getOut, f.getErr }

func (f *fakeArtRepo) ListByOwner(_ context.Context, _ int64) ([]model.Art, error) {
	return append([]model.Art(nil), f.listOut...), f.listErr
}

func (f *fakeArtRepo) OwnerStats(_ context.Context, _ int64) (model.OwnerStats, error) {
	return f.statsOut, f.statsErr
}

func (f *fakeArtRepo) RandomUnseen(_ context.Context, _ int64) (*model.Art, error) {
	return f.unseenOut, f.unseenErr
}

// fakeReactionRepo captures the recorded reaction.
type fakeReactionRepo struct {
	existsOut bool
	existsErr error

	recorded  []model.Reaction
	recordErr error
}

var _ repository.ReactionRepository = (*fakeReactionRepo)(nil)

func (f *fakeReactionRepo) Record(_ context.Context, r model.Reaction) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.recorded = append(f.recorded, r)
	return nil
}

func (f *fakeReactionRepo) Exists(_ context.Context, _, _ int64) (bool, error) {
	return f.existsOut, f.existsErr
}

// fakeCommentRepo captures created comments.
type fakeCommentRepo struct {
	created   []model.Comment
	createErr error

	listOut []model.Comment
	listErr error
}

var _ repository.CommentRepository = (*fakeCommentRepo)(nil)

func (f *fakeCommentRepo) Create(_ context.Context, c *model.Comment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, *c)
	return nil
}

func (f *fakeCommentRepo) ListByArt(_ context.Context, _ int64) ([]model.Comment, error) {
	return append([]model.Comment(nil), f.listOut...), f.listErr
}
