// Package report manages finished reports and work-in-progress drafts.
package report

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when an update targets an unknown report.
	ErrNotFound = errors.New("report not found")
	// ErrMissingPatientData is returned when required patient fields are
	// absent.
	ErrMissingPatientData = errors.New("Please fill all required patient data fields")
	// ErrEmptyContent is returned when a report or draft has no content.
	ErrEmptyContent = errors.New("report content is empty")
)

// PatientData is the free-form patient detail map captured with a report.
// Well-known keys: patientName, age, gender, examDate, referringDoctor,
// clinicalHistory.
type PatientData map[string]string

// RequiredFields must be present before a report is created or finished.
var RequiredFields = []string{"patientName", "age", "gender", "examDate"}

// Validate checks that the required patient fields are all non-empty.
func (p PatientData) Validate() error {
	for _, field := range RequiredFields {
		if p[field] == "" {
			return ErrMissingPatientData
		}
	}
	return nil
}

const (
	StatusFinished = "finished"
	StatusDraft    = "draft"
)

// Report is a finished examination report.
type Report struct {
	ID          string      `json:"id"`
	TemplateID  string      `json:"templateId"`
	PatientData PatientData `json:"patientData"`
	Content     string      `json:"content"`
	DoctorName  string      `json:"doctorName"`
	Status      string      `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   *time.Time  `json:"updatedAt,omitempty"`
}

// Update carries the fields of a shallow report update; nil fields are
// left untouched.
type Update struct {
	TemplateID  *string      `json:"templateId"`
	PatientData *PatientData `json:"patientData"`
	Content     *string      `json:"content"`
	DoctorName  *string      `json:"doctorName"`
	Status      *string      `json:"status"`
}

// Draft is a work-in-progress report.
type Draft struct {
	ID          string      `json:"id"`
	TemplateID  string      `json:"templateId"`
	PatientData PatientData `json:"patientData"`
	Content     string      `json:"content"`
	DoctorName  string      `json:"doctorName"`
	SavedAt     time.Time   `json:"savedAt"`
}
