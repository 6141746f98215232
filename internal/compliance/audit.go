// Package compliance keeps the immutable audit trail required for a
// healthcare intake line: consent, privacy verification, and risk
// assessments are all recorded here in addition to their own stores.
package compliance

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AuditEventType represents the type of compliance event.
type AuditEventType string

const (
	// EventConsentRecorded is logged when a caller grants or declines consent.
	EventConsentRecorded AuditEventType = "consent.recorded"
	// EventPrivacyConfirmed is logged when identity verification completes.
	EventPrivacyConfirmed AuditEventType = "privacy.confirmed"
	// EventPrivacyDeclined is logged when a caller fails or refuses verification.
	EventPrivacyDeclined AuditEventType = "privacy.declined"
	// EventRiskAssessmentLogged is logged for every risk assessment.
	EventRiskAssessmentLogged AuditEventType = "risk.assessment_logged"
	// EventCrisisFlagged is logged when an assessment comes in at crisis level.
	EventCrisisFlagged AuditEventType = "risk.crisis_flagged"
)

// AuditEvent is an immutable compliance audit record.
type AuditEvent struct {
	ID          string          `json:"id"`
	EventType   AuditEventType  `json:"event_type"`
	PatientName string          `json:"patient_name,omitempty"`
	ToolCallID  string          `json:"tool_call_id,omitempty"`
	AgentType   string          `json:"agent_type,omitempty"`
	Details     json.RawMessage `json:"details,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// AuditDetails contains event-specific details.
type AuditDetails struct {
	// For consent and privacy events
	ConsentGiven     *bool  `json:"consent_given,omitempty"`
	PrivacyConfirmed *bool  `json:"privacy_confirmed,omitempty"`
	RecordID         string `json:"record_id,omitempty"`

	// For risk events
	RiskLevel    string `json:"risk_level,omitempty"`
	AssessmentID string `json:"assessment_id,omitempty"`
}

// Recorder is the write side of the audit trail, satisfied by
// AuditService. Services take this interface so audit can be stubbed
// in tests and omitted in development.
type Recorder interface {
	LogEvent(ctx context.Context, event AuditEvent) error
}

// AuditService persists audit events to Postgres.
type AuditService struct {
	db *sql.DB
}

// NewAuditService creates a new audit service.
func NewAuditService(db *sql.DB) *AuditService {
	return &AuditService{db: db}
}

// LogEvent records a compliance audit event.
func (s *AuditService) LogEvent(ctx context.Context, event AuditEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO audit_events (
			id, event_type, patient_name, tool_call_id, agent_type, details, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.ExecContext(ctx, query,
		event.ID,
		event.EventType,
		nullString(event.PatientName),
		nullString(event.ToolCallID),
		nullString(event.AgentType),
		event.Details,
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("compliance: failed to log audit event: %w", err)
	}

	return nil
}

// LogConsentRecorded logs a caller's consent decision.
func (s *AuditService) LogConsentRecorded(ctx context.Context, patientName, toolCallID, recordID string, given bool) error {
	details := AuditDetails{ConsentGiven: &given, RecordID: recordID}
	detailsJSON, _ := json.Marshal(details)

	return s.LogEvent(ctx, AuditEvent{
		EventType:   EventConsentRecorded,
		PatientName: patientName,
		ToolCallID:  toolCallID,
		Details:     detailsJSON,
	})
}

// LogPrivacyCheck logs an identity verification outcome.
func (s *AuditService) LogPrivacyCheck(ctx context.Context, patientName, toolCallID, recordID string, confirmed bool) error {
	eventType := EventPrivacyConfirmed
	if !confirmed {
		eventType = EventPrivacyDeclined
	}
	details := AuditDetails{PrivacyConfirmed: &confirmed, RecordID: recordID}
	detailsJSON, _ := json.Marshal(details)

	return s.LogEvent(ctx, AuditEvent{
		EventType:   eventType,
		PatientName: patientName,
		ToolCallID:  toolCallID,
		Details:     detailsJSON,
	})
}

// LogRiskAssessment logs a risk assessment. Crisis-level assessments
// get a second, dedicated event so they can be alerted on directly.
func (s *AuditService) LogRiskAssessment(ctx context.Context, patientName, toolCallID, assessmentID, level string, crisis bool) error {
	details := AuditDetails{RiskLevel: level, AssessmentID: assessmentID}
	detailsJSON, _ := json.Marshal(details)

	if err := s.LogEvent(ctx, AuditEvent{
		EventType:   EventRiskAssessmentLogged,
		PatientName: patientName,
		ToolCallID:  toolCallID,
		Details:     detailsJSON,
	}); err != nil {
		return err
	}

	if !crisis {
		return nil
	}
	return s.LogEvent(ctx, AuditEvent{
		EventType:   EventCrisisFlagged,
		PatientName: patientName,
		ToolCallID:  toolCallID,
		Details:     detailsJSON,
	})
}

// QueryEvents retrieves audit events with filters.
func (s *AuditService) QueryEvents(ctx context.Context, filter AuditFilter) ([]AuditEvent, error) {
	query := `
		SELECT id, event_type, patient_name, tool_call_id, agent_type, details, created_at
		FROM audit_events
		WHERE 1=1
	`
	var args []interface{}
	argIdx := 1

	if filter.EventType != "" {
		query += fmt.Sprintf(" AND event_type = $%d", argIdx)
		args = append(args, filter.EventType)
		argIdx++
	}
	if filter.PatientName != "" {
		query += fmt.Sprintf(" AND patient_name = $%d", argIdx)
		args = append(args, filter.PatientName)
		argIdx++
	}
	if !filter.StartTime.IsZero() {
		query += fmt.Sprintf(" AND created_at >= $%d", argIdx)
		args = append(args, filter.StartTime)
		argIdx++
	}
	if !filter.EndTime.IsZero() {
		query += fmt.Sprintf(" AND created_at <= $%d", argIdx)
		args = append(args, filter.EndTime)
		argIdx++
	}

	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("compliance: failed to query audit events: %w", err)
	}
	defer rows.Close()

	var events []AuditEvent
	for rows.Next() {
		var e AuditEvent
		var patientName, toolCallID, agentType sql.NullString
		err := rows.Scan(&e.ID, &e.EventType, &patientName, &toolCallID, &agentType, &e.Details, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("compliance: failed to scan audit event: %w", err)
		}
		e.PatientName = patientName.String
		e.ToolCallID = toolCallID.String
		e.AgentType = agentType.String
		events = append(events, e)
	}

	return events, rows.Err()
}

// AuditFilter specifies criteria for querying audit events.
type AuditFilter struct {
	EventType   AuditEventType
	PatientName string
	StartTime   time.Time
	EndTime     time.Time
	Limit       int
	Offset      int
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
