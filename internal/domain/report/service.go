package report

import (
	"context"

	"github.com/rs/zerolog"
)

// Service coordinates report and draft operations.
type Service struct {
	reports Repository
	drafts  DraftRepository
	logger  zerolog.Logger
}

func NewService(reports Repository, drafts DraftRepository, logger zerolog.Logger) *Service {
	return &Service{reports: reports, drafts: drafts, logger: logger}
}

// Create validates and stores a finished report.
func (s *Service) Create(ctx context.Context, r *Report) error {
	if r.Content == "" {
		return ErrEmptyContent
	}
	if err := r.PatientData.Validate(); err != nil {
		return err
	}
	if r.Status == "" {
		r.Status = StatusFinished
	}
	if err := s.reports.Add(ctx, r); err != nil {
		return err
	}
	s.logger.Info().Str("report_id", r.ID).Str("doctor", r.DoctorName).Msg("report created")
	return nil
}

// FinishInput describes a report being finalized from the editor.
type FinishInput struct {
	DraftID     string      `json:"draftId"`
	TemplateID  string      `json:"templateId"`
	PatientData PatientData `json:"patientData"`
	Content     string      `json:"content"`
}

// Finish stores the finished report and removes the originating draft,
// when one is named. The draft delete is a no-op for unknown ids.
func (s *Service) Finish(ctx context.Context, in FinishInput, doctorName string) (*Report, error) {
	r := &Report{
		TemplateID:  in.TemplateID,
		PatientData: in.PatientData,
		Content:     in.Content,
		DoctorName:  doctorName,
		Status:      StatusFinished,
	}
	if err := s.Create(ctx, r); err != nil {
		return nil, err
	}
	if in.DraftID != "" {
		if err := s.drafts.Delete(ctx, in.DraftID); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Report, error) {
	return s.reports.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, upd Update) (*Report, error) {
	return s.reports.Update(ctx, id, upd)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.reports.Delete(ctx, id)
}

// Search lists reports matching the query, restricted to the named
// doctor's when doctorName is non-empty.
func (s *Service) Search(ctx context.Context, query, doctorName string) ([]Report, error) {
	return s.reports.Search(ctx, query, doctorName)
}

// SaveDraft upserts a draft. Only non-empty content is required.
func (s *Service) SaveDraft(ctx context.Context, d *Draft) (*Draft, error) {
	if d.Content == "" {
		return nil, ErrEmptyContent
	}
	if d.PatientData == nil {
		d.PatientData = PatientData{}
	}
	return s.drafts.Save(ctx, d)
}

func (s *Service) GetDraft(ctx context.Context, id string) (*Draft, error) {
	return s.drafts.GetByID(ctx, id)
}

func (s *Service) ListDrafts(ctx context.Context, doctorName string) ([]Draft, error) {
	return s.drafts.ListByDoctor(ctx, doctorName)
}

func (s *Service) DeleteDraft(ctx context.Context, id string) error {
	return s.drafts.Delete(ctx, id)
}
