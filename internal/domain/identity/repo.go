package identity

import "context"

// Repository persists the user collection and the active-session slot.
type Repository interface {
	// List returns all users, or nil when the collection has never
	// been written.
	List(ctx context.Context) ([]User, error)
	// FindByUsername returns the first user with the given username,
	// or nil when no user matches.
	FindByUsername(ctx context.Context, username string) (*User, error)
	// SaveAll replaces the whole user collection.
	SaveAll(ctx context.Context, users []User) error
	// CurrentUser returns the active session user, or nil when nobody
	// is signed in.
	CurrentUser(ctx context.Context) (*User, error)
	// SetCurrentUser records the active session user; nil clears it.
	SetCurrentUser(ctx context.Context, user *User) error
}
