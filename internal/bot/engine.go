package bot

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"artfeed/internal/errs"
	"artfeed/internal/model"
	"artfeed/internal/service"
)

// Event carries the envelope of one inbound chat update: who sent it and
// where to answer. MessageID and CallbackID are set for button presses.
type Event struct {
	UserID      int64
	ChatID      int64
	DisplayName string
	MessageID   int
	CallbackID  string
}

// Options tune engine behavior.
type Options struct {
	// AutoAdvance sends the next unseen art right after a recorded
	// reaction or a saved comment instead of waiting for another View.
	AutoAdvance bool
}

// Engine dispatches inbound events through the per-user state machine onto
// the application services. One event is processed to completion under its
// user's session lock; no event blocks another user's.
type Engine struct {
	gallery   service.GalleryService
	feed      service.FeedService
	reactions service.ReactionService
	profile   service.ProfileService
	tr        Transport
	sessions  *Sessions
	opts      Options
	log       *zap.Logger
}

// NewEngine constructs the engine with injected services and transport.
func NewEngine(
	gallery service.GalleryService,
	feed service.FeedService,
	reactions service.ReactionService,
	profile service.ProfileService,
	tr Transport,
	opts Options,
	log *zap.Logger,
) *Engine {
	return &Engine{
		gallery:   gallery,
		feed:      feed,
		reactions: reactions,
		profile:   profile,
		tr:        tr,
		sessions:  NewSessions(),
		opts:      opts,
		log:       log,
	}
}

// OnCommand handles slash commands. /start registers the user, clears the
// conversation state and shows the main menu; anything else falls back to
// the menu.
func (e *Engine) OnCommand(ctx context.Context, name string, ev Event) error {
	s := e.sessions.Get(ev.UserID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "start" {
		if err := e.gallery.RegisterUser(ctx, ev.UserID, ev.DisplayName); err != nil {
			return e.storeFailure(ctx, ev, err)
		}
		s.reset()
		s.currentArtID = 0
		s.profileIndex = 0
	}
	return e.tr.SendText(ctx, ev.ChatID, msgWelcome, menuKeyboard())
}

// OnButton handles inline button presses.
func (e *Engine) OnButton(ctx context.Context, tag string, ev Event) error {
	s := e.sessions.Get(ev.UserID)
	s.mu.Lock()
	defer s.mu.Unlock()

	switch tag {
	case TagMenu:
		// Unconditional reset; the current-art pointer survives.
		s.reset()
		return e.editOrSend(ctx, ev, msgWelcome, menuKeyboard())

	case TagUpload:
		s.state = convState{kind: stateAwaitingUpload}
		return e.editOrSend(ctx, ev, msgUploadPrompt, nil)

	case TagView:
		return e.showNextArt(ctx, s, ev)

	case TagApprove, TagDisapprove:
		return e.react(ctx, s, ev, tag)

	case TagCommentBegin:
		if s.currentArtID == 0 {
			return e.tr.Toast(ctx, ev.CallbackID, msgNothingShown, true)
		}
		art, err := e.gallery.GetArt(ctx, s.currentArtID)
		if errors.Is(err, errs.ErrNotFound) {
			return e.tr.Toast(ctx, ev.CallbackID, msgArtGone, true)
		}
		if err != nil {
			return e.storeFailure(ctx, ev, err)
		}
		s.state = convState{kind: stateAwaitingComment, commentArtID: art.ID}
		return e.editOrSend(ctx, ev, msgCommentPrompt, nil)

	case TagProfile:
		return e.showProfile(ctx, s, ev, 0)
	case TagProfileNext:
		return e.showProfile(ctx, s, ev, s.profileIndex+1)
	case TagProfilePrev:
		return e.showProfile(ctx, s, ev, s.profileIndex-1)
	}

	e.log.Warn("unknown button tag", zap.String("tag", tag), zap.Int64("user", ev.UserID))
	return nil
}

// OnText handles free-form text. Its meaning depends on the conversation
// state: a comment body, a rejected upload, or nothing in particular.
func (e *Engine) OnText(ctx context.Context, text string, ev Event) error {
	s := e.sessions.Get(ev.UserID)
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state.kind {
	case stateAwaitingComment:
		err := e.gallery.Comment(ctx, ev.UserID, s.state.commentArtID, text)
		switch {
		case err == nil:
			s.reset()
			if err := e.tr.SendText(ctx, ev.ChatID, msgCommentSaved, nil); err != nil {
				return err
			}
			return e.showNextArt(ctx, s, ev)
		case errors.Is(err, errs.ErrInvalidInput):
			// Recoverable: still awaiting the comment.
			return e.tr.SendText(ctx, ev.ChatID, msgCommentEmpty, nil)
		case errors.Is(err, errs.ErrNotFound):
			s.reset()
			return e.tr.SendText(ctx, ev.ChatID, msgArtGone, menuOnlyKeyboard())
		default:
			// State untouched so the same text can be retried.
			return e.storeFailure(ctx, ev, err)
		}

	case stateAwaitingUpload:
		// Recoverable user error: keep waiting for the photo.
		return e.tr.SendText(ctx, ev.ChatID, msgUploadNotPhoto, nil)
	}

	return e.tr.SendText(ctx, ev.ChatID, msgWelcome, menuKeyboard())
}

// OnMedia handles an uploaded image.
func (e *Engine) OnMedia(ctx context.Context, fileID, caption string, ev Event) error {
	s := e.sessions.Get(ev.UserID)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.kind != stateAwaitingUpload {
		return e.tr.SendText(ctx, ev.ChatID, msgWelcome, menuKeyboard())
	}

	artID, err := e.gallery.Upload(ctx, ev.UserID, fileID, caption)
	switch {
	case errors.Is(err, errs.ErrNotFound):
		// Unregistered sender; state kept so the photo can be resent.
		return e.tr.SendText(ctx, ev.ChatID, msgNeedStart, nil)
	case err != nil:
		return e.storeFailure(ctx, ev, err)
	}

	s.reset()
	return e.tr.SendText(ctx, ev.ChatID, uploadConfirmation(artID), menuOnlyKeyboard())
}

// react records a reaction against the art currently shown to the user.
func (e *Engine) react(ctx context.Context, s *Session, ev Event, tag string) error {
	if s.currentArtID == 0 {
		return e.tr.Toast(ctx, ev.CallbackID, msgNothingShown, true)
	}

	kind := model.KindApprove
	toast := toastApproved
	if tag == TagDisapprove {
		kind = model.KindDisapprove
		toast = toastDisapproved
	}

	err := e.reactions.Record(ctx, ev.UserID, s.currentArtID, kind)
	switch {
	case errors.Is(err, errs.ErrAlreadyReacted):
		return e.tr.Toast(ctx, ev.CallbackID, msgAlreadyRated, true)
	case errors.Is(err, errs.ErrNotFound):
		return e.tr.Toast(ctx, ev.CallbackID, msgArtGone, true)
	case err != nil:
		return e.storeFailure(ctx, ev, err)
	}

	if err := e.tr.Toast(ctx, ev.CallbackID, toast, false); err != nil {
		return err
	}
	if e.opts.AutoAdvance {
		return e.showNextArt(ctx, s, ev)
	}
	return nil
}

// showNextArt picks the next unseen art and sends it as a new message,
// moving the current-art pointer. The rated message stays in the chat.
func (e *Engine) showNextArt(ctx context.Context, s *Session, ev Event) error {
	art, err := e.feed.Next(ctx, ev.UserID)
	if errors.Is(err, errs.ErrFeedExhausted) {
		return e.tr.SendText(ctx, ev.ChatID, msgFeedExhausted, menuOnlyKeyboard())
	}
	if err != nil {
		return e.storeFailure(ctx, ev, err)
	}

	if err := e.tr.SendPhoto(ctx, ev.ChatID, art.FileID, artCaption(art), artKeyboard()); err != nil {
		return err
	}
	s.currentArtID = art.ID
	return nil
}

// showProfile renders the owner's gallery page at the requested index,
// storing the clamped index back into the session.
func (e *Engine) showProfile(ctx context.Context, s *Session, ev Event, index int) error {
	page, err := e.profile.Page(ctx, ev.UserID, index)
	if err != nil {
		return e.storeFailure(ctx, ev, err)
	}

	if page.Total == 0 {
		s.profileIndex = 0
		return e.editOrSend(ctx, ev, msgNoUploads, Keyboard{
			{{Label: "🎨 Upload", Tag: TagUpload}},
			{{Label: "🔙 Menu", Tag: TagMenu}},
		})
	}

	// The page replaces the message it was requested from; a stale menu
	// or previous page left behind would just confuse navigation.
	if ev.MessageID != 0 {
		_ = e.tr.Delete(ctx, ev.ChatID, ev.MessageID)
	}
	if err := e.tr.SendPhoto(ctx, ev.ChatID, page.Art.FileID, profileCaption(page), profileKeyboard()); err != nil {
		return err
	}
	s.profileIndex = page.Index
	s.currentArtID = page.Art.ID
	return nil
}

// editOrSend edits the message the button lived on; when the event has no
// editable message (or the edit is rejected, e.g. the origin was a photo)
// it falls back to a fresh message.
func (e *Engine) editOrSend(ctx context.Context, ev Event, text string, kb Keyboard) error {
	if ev.MessageID != 0 {
		if err := e.tr.EditText(ctx, ev.ChatID, ev.MessageID, text, kb); err == nil {
			return nil
		}
	}
	return e.tr.SendText(ctx, ev.ChatID, text, kb)
}

// storeFailure logs a failed store operation and tells the user to retry.
// Callers must not have advanced any session state before reaching here.
func (e *Engine) storeFailure(ctx context.Context, ev Event, err error) error {
	e.log.Error("store operation failed", zap.Int64("user", ev.UserID), zap.Error(err))
	if sendErr := e.tr.SendText(ctx, ev.ChatID, msgRetry, nil); sendErr != nil {
		e.log.Error("retry notice failed", zap.Int64("user", ev.UserID), zap.Error(sendErr))
	}
	return errs.ErrUnavailable
}
