// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"artfeed/internal/model"
)

// UserRepository provides access to registered accounts.
type UserRepository interface {
	// Register upserts a user. Re-registering is a no-op except that a
	// non-empty display name replaces the stored one; an empty display
	// name never clobbers an existing value.
	Register(ctx context.Context, u *model.User) error
	// Get loads a user by id.
	Get(ctx context.Context, id int64) (*model.User, error)
}
