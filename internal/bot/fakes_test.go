package bot

import (
	"context"
	"fmt"

	"artfeed/internal/errs"
	"artfeed/internal/model"
	"artfeed/internal/service"
)

// fakeTransport records every outbound render.
type sentMessage struct {
	kind   string // "text", "photo", "edit", "toast"
	chatID int64
	text   string // text, caption or toast text
	fileID string
	kb     Keyboard
	alert  bool
}

type fakeTransport struct {
	sent    []sentMessage
	editErr error
}

var _ Transport = (*fakeTransport)(nil)

func (f *fakeTransport) SendText(_ context.Context, chatID int64, text string, kb Keyboard) error {
	f.sent = append(f.sent, sentMessage{kind: "text", chatID: chatID, text: text, kb: kb})
	return nil
}

func (f *fakeTransport) SendPhoto(_ context.Context, chatID int64, fileID, caption string, kb Keyboard) error {
	f.sent = append(f.sent, sentMessage{kind: "photo", chatID: chatID, text: caption, fileID: fileID, kb: kb})
	return nil
}

func (f *fakeTransport) EditText(_ context.Context, chatID int64, _ int, text string, kb Keyboard) error {
	if f.editErr != nil {
		return f.editErr
	}
	f.sent = append(f.sent, sentMessage{kind: "edit", chatID: chatID, text: text, kb: kb})
	return nil
}

func (f *fakeTransport) Delete(_ context.Context, chatID int64, _ int) error {
	f.sent = append(f.sent, sentMessage{kind: "delete", chatID: chatID})
	return nil
}

func (f *fakeTransport) Toast(_ context.Context, _ string, text string, alert bool) error {
	f.sent = append(f.sent, sentMessage{kind: "toast", text: text, alert: alert})
	return nil
}

func (f *fakeTransport) last() sentMessage {
	if len(f.sent) == 0 {
		return sentMessage{}
	}
	return f.sent[len(f.sent)-1]
}

// fakeGallery implements service.GalleryService.
type fakeGallery struct {
	registered map[int64]string

	uploadID  int64
	uploadErr error
	uploads   []string // file ids

	comments   []string
	commentIDs []int64
	commentErr error

	getArtErr error
}

var _ service.GalleryService = (*fakeGallery)(nil)

func newFakeGallery() *fakeGallery {
	return &fakeGallery{registered: make(map[int64]string), uploadID: 1}
}

func (f *fakeGallery) RegisterUser(_ context.Context, userID int64, displayName string) error {
	f.registered[userID] = displayName
	return nil
}

func (f *fakeGallery) Upload(_ context.Context, _ int64, fileID, _ string) (int64, error) {
	if f.uploadErr != nil {
		return 0, f.uploadErr
	}
	f.uploads = append(f.uploads, fileID)
	return f.uploadID, nil
}

func (f *fakeGallery) Comment(_ context.Context, _, artID int64, body string) error {
	if f.commentErr != nil {
		return f.commentErr
	}
	f.comments = append(f.comments, body)
	f.commentIDs = append(f.commentIDs, artID)
	return nil
}

func (f *fakeGallery) GetArt(_ context.Context, artID int64) (*model.Art, error) {
	if f.getArtErr != nil {
		return nil, f.getArtErr
	}
	return &model.Art{ID: artID}, nil
}

// fakeFeed serves a queue of arts, then exhaustion.
type fakeFeed struct {
	queue []*model.Art
	err   error
	calls int
}

var _ service.FeedService = (*fakeFeed)(nil)

func (f *fakeFeed) Next(_ context.Context, _ int64) (*model.Art, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.queue) == 0 {
		return nil, errs.ErrFeedExhausted
	}
	a := f.queue[0]
	f.queue = f.queue[1:]
	return a, nil
}

// fakeReactions records reactions and rejects duplicates.
type fakeReactions struct {
	recorded map[string]model.ReactionKind
	err      error
}

var _ service.ReactionService = (*fakeReactions)(nil)

func newFakeReactions() *fakeReactions {
	return &fakeReactions{recorded: make(map[string]model.ReactionKind)}
}

func (f *fakeReactions) Record(_ context.Context, viewerID, artID int64, kind model.ReactionKind) error {
	if f.err != nil {
		return f.err
	}
	key := fmt.Sprintf("%d:%d", viewerID, artID)
	if _, ok := f.recorded[key]; ok {
		return errs.ErrAlreadyReacted
	}
	f.recorded[key] = kind
	return nil
}

// fakeProfile pages over a fixed gallery with clamping, like the real one.
type fakeProfile struct {
	arts  []model.Art
	stats model.OwnerStats
	err   error
}

var _ service.ProfileService = (*fakeProfile)(nil)

func (f *fakeProfile) Page(_ context.Context, _ int64, index int) (*service.ProfilePage, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.arts) == 0 {
		return &service.ProfilePage{Stats: f.stats}, nil
	}
	if index < 0 {
		index = 0
	}
	if index > len(f.arts)-1 {
		index = len(f.arts) - 1
	}
	return &service.ProfilePage{
		Stats: f.stats,
		Art:   &f.arts[index],
		Index: index,
		Total: len(f.arts),
	}, nil
}
