package report

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/radreport/radreport/internal/platform/storage"
)

// BoltRepository stores the report collection as one JSON array under the
// report slot. Every mutation rewrites the collection inside a single
// store transaction.
type BoltRepository struct {
	store *storage.Store
	now   func() time.Time
}

func NewBoltRepository(store *storage.Store) *BoltRepository {
	return &BoltRepository{store: store, now: time.Now}
}

func decodeReports(raw []byte) ([]Report, error) {
	if raw == nil {
		return nil, nil
	}
	var reports []Report
	if err := json.Unmarshal(raw, &reports); err != nil {
		return nil, fmt.Errorf("decode report collection: %w", err)
	}
	return reports, nil
}

func encodeReports(reports []Report) ([]byte, error) {
	if reports == nil {
		reports = []Report{}
	}
	raw, err := json.Marshal(reports)
	if err != nil {
		return nil, fmt.Errorf("encode report collection: %w", err)
	}
	return raw, nil
}

func (r *BoltRepository) Add(ctx context.Context, rep *Report) error {
	rep.ID = storage.NewID()
	rep.CreatedAt = r.now().UTC()
	return r.store.Update(storage.KeyReports, func(current []byte) ([]byte, error) {
		reports, err := decodeReports(current)
		if err != nil {
			return nil, err
		}
		return encodeReports(append(reports, *rep))
	})
}

func (r *BoltRepository) GetByID(ctx context.Context, id string) (*Report, error) {
	reports, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range reports {
		if reports[i].ID == id {
			return &reports[i], nil
		}
	}
	return nil, nil
}

func (r *BoltRepository) Update(ctx context.Context, id string, upd Update) (*Report, error) {
	var updated *Report
	err := r.store.Update(storage.KeyReports, func(current []byte) ([]byte, error) {
		reports, err := decodeReports(current)
		if err != nil {
			return nil, err
		}
		for i := range reports {
			if reports[i].ID != id {
				continue
			}
			merge(&reports[i], upd)
			now := r.now().UTC()
			reports[i].UpdatedAt = &now
			updated = &reports[i]
			return encodeReports(reports)
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func merge(rep *Report, upd Update) {
	if upd.TemplateID != nil {
		rep.TemplateID = *upd.TemplateID
	}
	if upd.PatientData != nil {
		rep.PatientData = *upd.PatientData
	}
	if upd.Content != nil {
		rep.Content = *upd.Content
	}
	if upd.DoctorName != nil {
		rep.DoctorName = *upd.DoctorName
	}
	if upd.Status != nil {
		rep.Status = *upd.Status
	}
}

func (r *BoltRepository) Delete(ctx context.Context, id string) error {
	return r.store.Update(storage.KeyReports, func(current []byte) ([]byte, error) {
		reports, err := decodeReports(current)
		if err != nil {
			return nil, err
		}
		kept := reports[:0]
		for _, rep := range reports {
			if rep.ID != id {
				kept = append(kept, rep)
			}
		}
		return encodeReports(kept)
	})
}

func (r *BoltRepository) ListByDoctor(ctx context.Context, doctorName string) ([]Report, error) {
	reports, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	var out []Report
	for _, rep := range reports {
		if rep.DoctorName == doctorName {
			out = append(out, rep)
		}
	}
	return out, nil
}

// Search filters the collection and orders it newest first. The query is
// matched case-insensitively against the patient and doctor names; the
// exam date is matched as a plain substring of the lowercased query.
func (r *BoltRepository) Search(ctx context.Context, query, doctorName string) ([]Report, error) {
	reports, err := r.All(ctx)
	if err != nil {
		return nil, err
	}

	if doctorName != "" {
		var byDoctor []Report
		for _, rep := range reports {
			if rep.DoctorName == doctorName {
				byDoctor = append(byDoctor, rep)
			}
		}
		reports = byDoctor
	}

	if query != "" {
		q := strings.ToLower(query)
		var matched []Report
		for _, rep := range reports {
			patientName := rep.PatientData["patientName"]
			examDate := rep.PatientData["examDate"]
			if (patientName != "" && strings.Contains(strings.ToLower(patientName), q)) ||
				(rep.DoctorName != "" && strings.Contains(strings.ToLower(rep.DoctorName), q)) ||
				(examDate != "" && strings.Contains(examDate, q)) {
				matched = append(matched, rep)
			}
		}
		reports = matched
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
	return reports, nil
}

func (r *BoltRepository) All(ctx context.Context) ([]Report, error) {
	raw, err := r.store.Get(storage.KeyReports)
	if err != nil {
		return nil, err
	}
	return decodeReports(raw)
}

func (r *BoltRepository) ReplaceAll(ctx context.Context, reports []Report) error {
	raw, err := encodeReports(reports)
	if err != nil {
		return err
	}
	return r.store.Put(storage.KeyReports, raw)
}
