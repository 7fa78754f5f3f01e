// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// User is a registered account. The ID is the stable id assigned by the
// chat platform; users are created on first contact and never deleted.
type User struct {
	ID          int64  // platform user id, PK
	DisplayName string // optional, may be empty
	CreatedAt   time.Time
}

// Art is a single uploaded image. FileID is an opaque storage token issued
// by the chat platform; the binary itself never passes through this service.
// Likes/Dislikes are derived counters maintained by the reaction ledger and
// always equal the number of reaction rows of the matching kind.
type Art struct {
	ID        int64 // monotonic PK
	OwnerID   int64 // FK -> users.id, set once at creation
	FileID    string
	Caption   string // optional
	Likes     int64
	Dislikes  int64
	CreatedAt time.Time
}

// ReactionKind is the rating a viewer gives an art.
type ReactionKind string

const (
	KindApprove    ReactionKind = "approve"
	KindDisapprove ReactionKind = "disapprove"
)

// Valid reports whether k is one of the two known kinds.
func (k ReactionKind) Valid() bool {
	return k == KindApprove || k == KindDisapprove
}

// Reaction records that a viewer rated an art. At most one row may exist
// per (UserID, ArtID); rows are immutable once written.
type Reaction struct {
	UserID int64
	ArtID  int64
	Kind   ReactionKind
}

// Comment is a free-text remark on an art. Append-only.
type Comment struct {
	ID        uuid.UUID // client-generated PK
	AuthorID  int64     // FK -> users.id
	ArtID     int64     // FK -> arts.id
	Body      string
	CreatedAt time.Time
}

// OwnerStats aggregates an owner's gallery. Sums over zero arts are zeros.
type OwnerStats struct {
	Arts     int64
	Likes    int64
	Dislikes int64
}
