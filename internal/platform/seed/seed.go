// Package seed loads the default accounts and sample reports into an
// empty data file.
package seed

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/radreport/radreport/internal/domain/identity"
	"github.com/radreport/radreport/internal/domain/report"
	"github.com/radreport/radreport/internal/platform/storage"
)

// DefaultUsers are the accounts created on first start.
func DefaultUsers() []identity.User {
	return []identity.User{
		{Username: "admin", Password: "admin", Role: "admin", Name: "System Administrator"},
		{Username: "dr.smith", Password: "password123", Role: "doctor", Name: "Dr. John Smith"},
		{Username: "dr.jones", Password: "password123", Role: "doctor", Name: "Dr. Sarah Jones"},
	}
}

// SampleReports are the canned finished reports created on first start.
// IDs are assigned at seed time.
func SampleReports() []report.Report {
	return []report.Report{
		{
			ID:         storage.NewID(),
			TemplateID: "abdomen",
			PatientData: report.PatientData{
				"patientName":     "John Doe",
				"age":             "45 years",
				"gender":          "Male",
				"examDate":        "2026-01-10",
				"referringDoctor": "Dr. Williams",
				"clinicalHistory": "Abdominal pain, right upper quadrant",
			},
			Content:    "Sample abdomen USG report content...",
			DoctorName: "Dr. John Smith",
			Status:     report.StatusFinished,
			CreatedAt:  time.Date(2026, 1, 10, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:         storage.NewID(),
			TemplateID: "pelvis",
			PatientData: report.PatientData{
				"patientName":     "Jane Smith",
				"age":             "32 years",
				"gender":          "Female",
				"examDate":        "2026-01-12",
				"referringDoctor": "Dr. Brown",
				"clinicalHistory": "Lower abdominal pain",
			},
			Content:    "Sample pelvis USG report content...",
			DoctorName: "Dr. Sarah Jones",
			Status:     report.StatusFinished,
			CreatedAt:  time.Date(2026, 1, 12, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:         storage.NewID(),
			TemplateID: "thyroid",
			PatientData: report.PatientData{
				"patientName":     "Robert Johnson",
				"age":             "55 years",
				"gender":          "Male",
				"examDate":        "2026-01-13",
				"referringDoctor": "Dr. Davis",
				"clinicalHistory": "Thyroid swelling",
			},
			Content:    "Sample thyroid USG report content...",
			DoctorName: "Dr. John Smith",
			Status:     report.StatusFinished,
			CreatedAt:  time.Date(2026, 1, 13, 9, 15, 0, 0, time.UTC),
		},
	}
}

// Run seeds the user and report collections when they are empty. Safe to
// call on every start.
func Run(ctx context.Context, users identity.Repository, reports report.Repository, logger zerolog.Logger) error {
	existing, err := users.List(ctx)
	if err != nil {
		return err
	}
	if existing == nil {
		if err := users.SaveAll(ctx, DefaultUsers()); err != nil {
			return err
		}
		logger.Info().Msg("seeded default users")
	}

	stored, err := reports.All(ctx)
	if err != nil {
		return err
	}
	if len(stored) == 0 {
		if err := reports.ReplaceAll(ctx, SampleReports()); err != nil {
			return err
		}
		logger.Info().Msg("seeded sample reports")
	}

	return nil
}
