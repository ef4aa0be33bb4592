package report

import "context"

// Repository persists the finished report collection.
type Repository interface {
	// Add assigns the report an id and creation timestamp and appends it.
	Add(ctx context.Context, r *Report) error
	// GetByID returns the report, or nil when no report matches.
	GetByID(ctx context.Context, id string) (*Report, error)
	// Update shallow-merges upd into the stored report and stamps
	// updatedAt. Returns ErrNotFound when the id is unknown.
	Update(ctx context.Context, id string, upd Update) (*Report, error)
	// Delete removes the report; absent ids are a silent no-op.
	Delete(ctx context.Context, id string) error
	// ListByDoctor returns the reports authored by the named doctor.
	ListByDoctor(ctx context.Context, doctorName string) ([]Report, error)
	// Search filters by doctor (when non-empty) and query, sorted by
	// creation time descending.
	Search(ctx context.Context, query, doctorName string) ([]Report, error)
	// All returns every report in stored order.
	All(ctx context.Context) ([]Report, error)
	// ReplaceAll overwrites the whole collection. Seed only.
	ReplaceAll(ctx context.Context, reports []Report) error
}

// DraftRepository persists the draft collection.
type DraftRepository interface {
	// Save upserts the draft, assigning an id when absent and stamping
	// savedAt. The stored record is replaced wholesale.
	Save(ctx context.Context, d *Draft) (*Draft, error)
	// GetByID returns the draft, or nil when no draft matches.
	GetByID(ctx context.Context, id string) (*Draft, error)
	// ListByDoctor returns the drafts authored by the named doctor.
	ListByDoctor(ctx context.Context, doctorName string) ([]Draft, error)
	// Delete removes the draft; absent ids are a silent no-op.
	Delete(ctx context.Context, id string) error
}
