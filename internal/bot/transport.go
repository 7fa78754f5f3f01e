// Package bot implements the conversation engine: a per-user state machine
// that classifies inbound chat events and drives the feed, the reaction
// ledger and profile browsing. Rendering goes through the Transport
// interface; the engine knows nothing about the wire format.
package bot

import "context"

// Button is one inline action under a message. Tag comes back verbatim in
// the button-press event.
type Button struct {
	Label string
	Tag   string
}

// Keyboard is rows of inline buttons.
type Keyboard [][]Button

// Button tags the engine dispatches on.
const (
	TagUpload       = "upload"
	TagView         = "view"
	TagProfile      = "profile"
	TagApprove      = "react:approve"
	TagDisapprove   = "react:disapprove"
	TagCommentBegin = "comment:begin"
	TagProfileNext  = "profile:next"
	TagProfilePrev  = "profile:prev"
	TagMenu         = "menu"
)

// Transport renders outbound messages. Implementations talk to the chat
// platform; the engine only assumes at-least-once delivery of the inbound
// events that reference these sends.
type Transport interface {
	// SendText sends a plain text message with an optional keyboard.
	SendText(ctx context.Context, chatID int64, text string, kb Keyboard) error
	// SendPhoto sends a stored image by its platform file id.
	SendPhoto(ctx context.Context, chatID int64, fileID, caption string, kb Keyboard) error
	// EditText replaces the text and keyboard of a previously sent message.
	EditText(ctx context.Context, chatID int64, messageID int, text string, kb Keyboard) error
	// Delete removes a previously sent message.
	Delete(ctx context.Context, chatID int64, messageID int) error
	// Toast acknowledges a button press with a short notice; alert asks
	// the platform to make it prominent.
	Toast(ctx context.Context, callbackID, text string, alert bool) error
}
