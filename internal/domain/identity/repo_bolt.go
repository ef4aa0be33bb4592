package identity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/radreport/radreport/internal/platform/storage"
)

// BoltRepository stores the user collection and the session slot as JSON
// values in the key-value store.
type BoltRepository struct {
	store *storage.Store
}

func NewBoltRepository(store *storage.Store) *BoltRepository {
	return &BoltRepository{store: store}
}

func (r *BoltRepository) List(ctx context.Context) ([]User, error) {
	raw, err := r.store.Get(storage.KeyUsers)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var users []User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("decode user collection: %w", err)
	}
	return users, nil
}

func (r *BoltRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *BoltRepository) SaveAll(ctx context.Context, users []User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode user collection: %w", err)
	}
	return r.store.Put(storage.KeyUsers, raw)
}

func (r *BoltRepository) CurrentUser(ctx context.Context) (*User, error) {
	raw, err := r.store.Get(storage.KeyCurrentUser)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var user User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("decode session user: %w", err)
	}
	return &user, nil
}

func (r *BoltRepository) SetCurrentUser(ctx context.Context, user *User) error {
	if user == nil {
		return r.store.Delete(storage.KeyCurrentUser)
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}
	return r.store.Put(storage.KeyCurrentUser, raw)
}
