// Package risk logs clinical risk assessments and escalates crisis
// cases. Crisis handling is message-only at this layer; clinical
// escalation runs off the audit trail and metrics alerts.
package risk

import (
	"context"
	"fmt"
	"time"

	"github.com/mindwell/voicedesk/internal/observability/metrics"
	"github.com/mindwell/voicedesk/pkg/logging"
)

// Auditor records assessments on the compliance audit trail.
// compliance.AuditService satisfies it.
type Auditor interface {
	LogRiskAssessment(ctx context.Context, patientName, toolCallID, assessmentID, level string, crisis bool) error
}

// Request is one validated risk assessment submission.
type Request struct {
	PatientName  string
	Level        Level
	SuicideRisk  bool
	SelfHarmRisk bool
	Notes        string
	ToolCallID   string
}

// Service logs assessments.
type Service struct {
	repo       Repository
	audit      Auditor
	metrics    *metrics.ToolMetrics
	crisisLine string
	logger     *logging.Logger
}

// Config configures the risk service. Audit and Metrics are optional.
type Config struct {
	Repository Repository
	Audit      Auditor
	Metrics    *metrics.ToolMetrics
	CrisisLine string
	Logger     *logging.Logger
}

// NewService creates a risk service.
func NewService(cfg Config) *Service {
	if cfg.Repository == nil {
		cfg.Repository = NewInMemoryRepository()
	}
	if cfg.CrisisLine == "" {
		cfg.CrisisLine = "13 11 14"
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	return &Service{
		repo:       cfg.Repository,
		audit:      cfg.Audit,
		metrics:    cfg.Metrics,
		crisisLine: cfg.CrisisLine,
		logger:     cfg.Logger,
	}
}

// Log persists the assessment and returns it with its spoken response.
// High and crisis levels switch the message to an immediate-help
// instruction; the record is written either way.
func (s *Service) Log(ctx context.Context, req Request) (*Assessment, string, error) {
	assessment := &Assessment{
		PatientName:  req.PatientName,
		Level:        req.Level,
		SuicideRisk:  req.SuicideRisk,
		SelfHarmRisk: req.SelfHarmRisk,
		Notes:        req.Notes,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, assessment); err != nil {
		return nil, "", fmt.Errorf("risk: store assessment: %w", err)
	}

	crisis := req.Level.Escalates()
	s.metrics.ObserveRiskAlert(string(req.Level))

	if crisis {
		s.logger.Warn("escalated risk assessment logged",
			"assessment_id", assessment.ID, "level", string(req.Level), "patient_name", req.PatientName)
	} else {
		s.logger.Info("risk assessment logged",
			"assessment_id", assessment.ID, "level", string(req.Level))
	}

	// Audit failure must not lose the caller's record; the assessment
	// is already persisted, so log and carry on.
	if s.audit != nil {
		if err := s.audit.LogRiskAssessment(ctx, req.PatientName, req.ToolCallID, assessment.ID, string(req.Level), crisis); err != nil {
			s.logger.Error("risk: audit write failed", "error", err, "assessment_id", assessment.ID)
		}
	}

	message := fmt.Sprintf("I've logged your assessment. If you need immediate help, please call Lifeline on %s.", s.crisisLine)
	if crisis {
		message = fmt.Sprintf("This appears to be a crisis situation. Please call Lifeline immediately on %s or go to your nearest emergency department.", s.crisisLine)
	}
	return assessment, message, nil
}
