package patients

import (
	"context"
	"sync"
	"time"

	"github.com/mindwell/voicedesk/internal/ids"
)

// Repository defines the interface for patient record storage
type Repository interface {
	Create(ctx context.Context, req *CreateRequest) (*Record, error)
	GetByID(ctx context.Context, id string) (*Record, error)
}

// InMemoryRepository keeps records in memory; used in development and
// tests when Postgres isn't wired.
type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*Record
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		records: make(map[string]*Record),
	}
}

// Create stores a new intake record. A fresh identifier is generated on
// every call, even for a repeated name.
func (r *InMemoryRepository) Create(ctx context.Context, req *CreateRequest) (*Record, error) {
	status := req.ScreeningStatus
	if status == "" {
		status = ScreeningIncomplete
	}

	record := &Record{
		ID:              ids.New(ids.Patient),
		Name:            req.Name,
		Phone:           req.Phone,
		PresentingIssue: req.PresentingIssue,
		ScreeningStatus: status,
		CreatedAt:       time.Now().UTC(),
	}

	r.mu.Lock()
	r.records[record.ID] = record
	r.mu.Unlock()

	return record, nil
}

// GetByID retrieves a record by ID
func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return record, nil
}
