package patients

import (
	"context"
	"fmt"

	"github.com/mindwell/voicedesk/pkg/logging"
)

const savedMessage = "I've saved your information securely. This will help us prepare for your appointment."

// Service persists intake records. Every call generates a fresh
// identifier, even for a repeated patient name; deduplication belongs
// to the practice-management directory.
type Service struct {
	repo   Repository
	logger *logging.Logger
}

// NewService creates a patient intake service.
func NewService(repo Repository, logger *logging.Logger) *Service {
	if repo == nil {
		panic("patients: repository required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Save stores one intake record and returns it with the spoken
// acknowledgment.
func (s *Service) Save(ctx context.Context, req *CreateRequest) (*Record, string, error) {
	record, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, "", fmt.Errorf("patients: save intake: %w", err)
	}

	s.logger.Info("patient intake saved",
		"patient_id", record.ID, "screening_status", record.ScreeningStatus)
	return record, savedMessage, nil
}
