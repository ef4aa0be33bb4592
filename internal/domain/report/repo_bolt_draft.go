package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/radreport/radreport/internal/platform/storage"
)

// BoltDraftRepository stores the draft collection as one JSON array under
// the draft slot.
type BoltDraftRepository struct {
	store *storage.Store
	now   func() time.Time
}

func NewBoltDraftRepository(store *storage.Store) *BoltDraftRepository {
	return &BoltDraftRepository{store: store, now: time.Now}
}

func decodeDrafts(raw []byte) ([]Draft, error) {
	if raw == nil {
		return nil, nil
	}
	var drafts []Draft
	if err := json.Unmarshal(raw, &drafts); err != nil {
		return nil, fmt.Errorf("decode draft collection: %w", err)
	}
	return drafts, nil
}

func encodeDrafts(drafts []Draft) ([]byte, error) {
	if drafts == nil {
		drafts = []Draft{}
	}
	raw, err := json.Marshal(drafts)
	if err != nil {
		return nil, fmt.Errorf("encode draft collection: %w", err)
	}
	return raw, nil
}

// Save upserts the draft: an existing id replaces the stored record
// wholesale, an empty id gets a fresh one.
func (r *BoltDraftRepository) Save(ctx context.Context, d *Draft) (*Draft, error) {
	if d.ID == "" {
		d.ID = storage.NewID()
	}
	d.SavedAt = r.now().UTC()

	err := r.store.Update(storage.KeyDrafts, func(current []byte) ([]byte, error) {
		drafts, err := decodeDrafts(current)
		if err != nil {
			return nil, err
		}
		for i := range drafts {
			if drafts[i].ID == d.ID {
				drafts[i] = *d
				return encodeDrafts(drafts)
			}
		}
		return encodeDrafts(append(drafts, *d))
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *BoltDraftRepository) GetByID(ctx context.Context, id string) (*Draft, error) {
	drafts, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	for i := range drafts {
		if drafts[i].ID == id {
			return &drafts[i], nil
		}
	}
	return nil, nil
}

func (r *BoltDraftRepository) ListByDoctor(ctx context.Context, doctorName string) ([]Draft, error) {
	drafts, err := r.all(ctx)
	if err != nil {
		return nil, err
	}
	var out []Draft
	for _, d := range drafts {
		if d.DoctorName == doctorName {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *BoltDraftRepository) Delete(ctx context.Context, id string) error {
	return r.store.Update(storage.KeyDrafts, func(current []byte) ([]byte, error) {
		drafts, err := decodeDrafts(current)
		if err != nil {
			return nil, err
		}
		kept := drafts[:0]
		for _, d := range drafts {
			if d.ID != id {
				kept = append(kept, d)
			}
		}
		return encodeDrafts(kept)
	})
}

func (r *BoltDraftRepository) all(ctx context.Context) ([]Draft, error) {
	raw, err := r.store.Get(storage.KeyDrafts)
	if err != nil {
		return nil, err
	}
	return decodeDrafts(raw)
}
