package business

import (
	"context"
	"fmt"

	"github.com/mindwell/voicedesk/pkg/logging"
)

// Service exposes business-info persistence to the tool layer.
type Service struct {
	repo   Repository
	logger *logging.Logger
}

// NewService creates a business service.
func NewService(repo Repository, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Save persists a new profile and returns it with its spoken response.
func (s *Service) Save(ctx context.Context, info *Info) (*Info, string, error) {
	if err := s.repo.Save(ctx, info); err != nil {
		return nil, "", err
	}
	s.logger.Info("business profile saved", "business_id", info.ID, "name", info.Name)

	message := fmt.Sprintf("Thanks! I've saved the details for %s. You're all set.", info.Name)
	return info, message, nil
}

// Get returns one stored profile.
func (s *Service) Get(ctx context.Context, id string) (*Info, error) {
	return s.repo.Get(ctx, id)
}

// List returns every stored profile, newest first.
func (s *Service) List(ctx context.Context) ([]*Info, error) {
	return s.repo.List(ctx)
}

// Update applies the non-empty fields of updates.
func (s *Service) Update(ctx context.Context, id string, updates Updates) (*Info, error) {
	return s.repo.Update(ctx, id, updates)
}

// Delete removes a stored profile.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
