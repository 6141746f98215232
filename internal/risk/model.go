package risk

import (
	"context"
	"sync"
	"time"

	"github.com/mindwell/voicedesk/internal/ids"
)

// Level is the assessed severity. The closed set is low, medium, high
// and crisis; validation happens before the service is reached.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
	LevelCrisis Level = "crisis"
)

// Escalates reports whether the level routes to the crisis response.
// High and crisis both do; there is no numeric scoring beyond this.
func (l Level) Escalates() bool {
	return l == LevelHigh || l == LevelCrisis
}

// Assessment is one logged risk assessment.
type Assessment struct {
	ID           string    `json:"id"`
	PatientName  string    `json:"patient_name"`
	Level        Level     `json:"level"`
	SuicideRisk  bool      `json:"suicide_risk,omitempty"`
	SelfHarmRisk bool      `json:"self_harm_risk,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Repository stores assessments.
type Repository interface {
	Create(ctx context.Context, a *Assessment) error
}

// InMemoryRepository keeps assessments in memory; used in development
// and tests when Postgres isn't wired.
type InMemoryRepository struct {
	mu          sync.RWMutex
	assessments []*Assessment
}

// NewInMemoryRepository creates a new in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// Create stores a new assessment, assigning an ID if none is set.
func (r *InMemoryRepository) Create(ctx context.Context, a *Assessment) error {
	if a.ID == "" {
		a.ID = ids.New(ids.RiskAssessment)
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	r.assessments = append(r.assessments, a)
	r.mu.Unlock()

	return nil
}

// All returns a copy of every stored assessment, oldest first.
func (r *InMemoryRepository) All() []*Assessment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Assessment, len(r.assessments))
	copy(out, r.assessments)
	return out
}
