package bot

import "sync"

// stateKind enumerates what the next inbound message from a user means.
type stateKind int

const (
	stateIdle stateKind = iota
	stateAwaitingUpload
	stateAwaitingComment
)

// convState is the tagged union of conversation states. commentArtID is
// meaningful only while kind is stateAwaitingComment.
type convState struct {
	kind         stateKind
	commentArtID int64
}

// Session is one user's transient conversation state. It does not survive
// process restart. currentArtID points at the art most recently shown to
// the user (feed or profile view); it is independent of the state enum and
// persists across Idle transitions until overwritten.
type Session struct {
	mu           sync.Mutex
	state        convState
	currentArtID int64
	profileIndex int
}

// reset returns the session to Idle without touching the current-art
// pointer.
func (s *Session) reset() { s.state = convState{kind: stateIdle} }

// Sessions owns the per-user conversation state. Every engine entry point
// runs the whole event under the user's lock, so two near-simultaneous
// events for one user (a double-tapped button, a platform retry) are
// serialized; events for different users never contend.
type Sessions struct {
	mu     sync.Mutex
	byUser map[int64]*Session
}

// NewSessions constructs an empty registry.
func NewSessions() *Sessions {
	return &Sessions{byUser: make(map[int64]*Session)}
}

// Get returns the user's session, creating it on first contact.
func (r *Sessions) Get(userID int64) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byUser[userID]
	if !ok {
		s = &Session{}
		r.byUser[userID] = s
	}
	return s
}
