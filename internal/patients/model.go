// Package patients stores minimal intake records captured during voice
// conversations. Records are create-only: deduplication and updates are
// owned by the practice-management directory, not this store.
package patients

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no record exists for an ID.
var ErrNotFound = errors.New("patients: record not found")

// Screening status values. The voice agent sets high_risk when its
// safety screening flags a caller.
const (
	ScreeningIncomplete = "incomplete"
	ScreeningComplete   = "complete"
	ScreeningHighRisk   = "high_risk"
)

// Record is one patient intake record.
type Record struct {
	ID              string    `json:"patient_id"`
	Name            string    `json:"patient_name"`
	Phone           string    `json:"phone"`
	PresentingIssue string    `json:"presenting_issue,omitempty"`
	ScreeningStatus string    `json:"screening_status"`
	CreatedAt       time.Time `json:"created_at"`
}

// CreateRequest carries the intake fields. Name and phone are required
// and validated upstream.
type CreateRequest struct {
	Name            string
	Phone           string
	PresentingIssue string
	ScreeningStatus string
}
