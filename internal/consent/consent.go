// Package consent records the caller's consent to proceed and their
// privacy confirmation. A declined consent or privacy check is a valid,
// recorded outcome whose message tells the caller the interaction
// cannot continue; it is never surfaced as an error.
package consent

import (
	"context"
	"sync"
	"time"

	"github.com/mindwell/voicedesk/internal/ids"
)

// Record is one logged consent decision.
type Record struct {
	ID          string    `json:"id"`
	PatientName string    `json:"patient_name,omitempty"`
	Given       bool      `json:"consent_given"`
	CreatedAt   time.Time `json:"created_at"`
}

// PrivacyCheck is one logged privacy confirmation.
type PrivacyCheck struct {
	ID          string    `json:"id"`
	PatientName string    `json:"patient_name,omitempty"`
	Confirmed   bool      `json:"privacy_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
}

// Repository stores consent decisions and privacy checks.
type Repository interface {
	CreateConsent(ctx context.Context, r *Record) error
	CreatePrivacyCheck(ctx context.Context, p *PrivacyCheck) error
}

// InMemoryRepository keeps records in memory.
type InMemoryRepository struct {
	mu       sync.RWMutex
	consents []*Record
	privacy  []*PrivacyCheck
}

// NewInMemoryRepository creates a new in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// CreateConsent stores a consent decision, assigning an ID if unset.
func (r *InMemoryRepository) CreateConsent(ctx context.Context, rec *Record) error {
	if rec.ID == "" {
		rec.ID = ids.New(ids.Consent)
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	r.consents = append(r.consents, rec)
	r.mu.Unlock()
	return nil
}

// CreatePrivacyCheck stores a privacy confirmation, assigning an ID if unset.
func (r *InMemoryRepository) CreatePrivacyCheck(ctx context.Context, p *PrivacyCheck) error {
	if p.ID == "" {
		p.ID = ids.New(ids.PrivacyCheck)
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	r.privacy = append(r.privacy, p)
	r.mu.Unlock()
	return nil
}

// Consents returns a copy of the logged consent decisions, oldest first.
func (r *InMemoryRepository) Consents() []*Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Record, len(r.consents))
	copy(out, r.consents)
	return out
}

// PrivacyChecks returns a copy of the logged privacy checks, oldest first.
func (r *InMemoryRepository) PrivacyChecks() []*PrivacyCheck {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*PrivacyCheck, len(r.privacy))
	copy(out, r.privacy)
	return out
}
