package consent

import (
	"context"
	"fmt"

	"github.com/mindwell/voicedesk/pkg/logging"
)

// Auditor records consent outcomes on the compliance audit trail.
// compliance.AuditService satisfies it.
type Auditor interface {
	LogConsentRecorded(ctx context.Context, patientName, toolCallID, recordID string, given bool) error
	LogPrivacyCheck(ctx context.Context, patientName, toolCallID, recordID string, confirmed bool) error
}

// Service logs consent decisions and privacy confirmations.
type Service struct {
	repo   Repository
	audit  Auditor
	logger *logging.Logger
}

// NewService creates a consent service. Audit is optional.
func NewService(repo Repository, audit Auditor, logger *logging.Logger) *Service {
	if repo == nil {
		repo = NewInMemoryRepository()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{repo: repo, audit: audit, logger: logger}
}

// LogConsent records the decision and returns the spoken response. A
// declined consent returns a halting instruction; callers must treat it
// as terminal for the interaction, not retryable.
func (s *Service) LogConsent(ctx context.Context, patientName, toolCallID string, given bool) (*Record, string, error) {
	rec := &Record{PatientName: patientName, Given: given}
	if err := s.repo.CreateConsent(ctx, rec); err != nil {
		return nil, "", fmt.Errorf("consent: store decision: %w", err)
	}

	s.logger.Info("consent recorded", "record_id", rec.ID, "consent_given", given)
	if s.audit != nil {
		if err := s.audit.LogConsentRecorded(ctx, patientName, toolCallID, rec.ID, given); err != nil {
			s.logger.Error("consent: audit write failed", "error", err, "record_id", rec.ID)
		}
	}

	message := "Thank you for providing your consent. Let's continue."
	if !given {
		message = "I understand. I'm unable to proceed without your consent. Please call us directly if you'd like to make an appointment."
	}
	return rec, message, nil
}

// LogPrivacyCheck records the confirmation and returns the spoken
// response. A failed check returns a halting instruction.
func (s *Service) LogPrivacyCheck(ctx context.Context, patientName, toolCallID string, confirmed bool) (*PrivacyCheck, string, error) {
	check := &PrivacyCheck{PatientName: patientName, Confirmed: confirmed}
	if err := s.repo.CreatePrivacyCheck(ctx, check); err != nil {
		return nil, "", fmt.Errorf("consent: store privacy check: %w", err)
	}

	s.logger.Info("privacy check recorded", "record_id", check.ID, "privacy_confirmed", confirmed)
	if s.audit != nil {
		if err := s.audit.LogPrivacyCheck(ctx, patientName, toolCallID, check.ID, confirmed); err != nil {
			s.logger.Error("consent: audit write failed", "error", err, "record_id", check.ID)
		}
	}

	message := "Thank you for confirming. Your privacy is protected under Australian privacy laws."
	if !confirmed {
		message = "For your privacy, I can only discuss personal details once you're somewhere you can speak freely. Please call us back when you're able to talk privately."
	}
	return check, message, nil
}
