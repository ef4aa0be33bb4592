// Package storage provides the local key-value backing store for the
// report authoring service. All persisted state lives in a single bbolt
// file as four named slots holding JSON-serialized collections; domain
// repositories own serialization and mutate slots through read-modify-write
// transactions. No other component touches the file directly.
package storage

import (
	"crypto/rand"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Slot keys. The names are the persisted storage layout and must not change
// without a data migration.
const (
	KeyUsers       = "usg_users"
	KeyReports     = "usg_reports"
	KeyDrafts      = "usg_drafts"
	KeyCurrentUser = "current_user"
)

var bucketName = []byte("radreport")

// Store is a handle to the backing key-value file. It is safe for
// concurrent use; bbolt serializes writers, so every Update call sees the
// latest committed value.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if necessary) the store at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key, or nil when the slot is absent.
func (s *Store) Get(key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(key))
		if v != nil {
			out = make([]byte, len(v))
			copy(out, v)
		}
		return nil
	})
	return out, err
}

// Put overwrites the value stored under key.
func (s *Store) Put(key string, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), value)
	})
}

// Delete removes the slot. Deleting an absent slot is a no-op.
func (s *Store) Delete(key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
}

// Update applies fn to the current value of key inside a single write
// transaction. fn receives nil when the slot is absent; returning nil
// deletes the slot, any other value replaces it.
func (s *Store) Update(key string, fn func(current []byte) ([]byte, error)) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		next, err := fn(b.Get([]byte(key)))
		if err != nil {
			return err
		}
		if next == nil {
			return b.Delete([]byte(key))
		}
		return b.Put([]byte(key), next)
	})
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID generates a record identifier combining the current timestamp with
// a random base36 suffix. Uniqueness is probabilistic, not enforced.
func NewID() string {
	suffix := make([]byte, 9)
	if _, err := rand.Read(suffix); err != nil {
		panic(fmt.Sprintf("storage: read random bytes: %v", err))
	}
	for i, b := range suffix {
		suffix[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return fmt.Sprintf("id_%d_%s", time.Now().UnixMilli(), suffix)
}
