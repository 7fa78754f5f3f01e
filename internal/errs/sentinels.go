// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service/bot layers.
var (
	// ErrNotFound indicates the referenced user or art does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyReacted indicates the viewer has already rated this art.
	ErrAlreadyReacted = errors.New("already reacted")

	// ErrFeedExhausted indicates no unseen arts remain for the viewer.
	// A normal terminal state of browsing, not a failure.
	ErrFeedExhausted = errors.New("feed exhausted")

	// ErrInvalidInput indicates input the current conversation state
	// cannot accept (e.g. text while an image is expected).
	ErrInvalidInput = errors.New("invalid input for state")

	// ErrUnavailable indicates the durable store failed; the in-flight
	// action is safe to retry because no state was advanced.
	ErrUnavailable = errors.New("store unavailable")
)
