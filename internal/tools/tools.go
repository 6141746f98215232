// Package tools implements the tool-dispatch layer invoked by the
// external voice agent: a closed registry of named handlers, a
// declarative per-tool validator, and a dispatcher that normalizes
// every outcome into a spoken-safe result or typed error.
package tools

import "context"

// Name identifies one tool. The set is closed and known at startup;
// anything else is rejected with KindToolNotFound.
type Name string

const (
	GetPracticeInfo   Name = "get_practice_info"
	CheckAvailability Name = "check_availability"
	BookAppointment   Name = "book_appointment"
	SavePatientInfo   Name = "save_patient_info"
	LogRiskAssessment Name = "log_risk_assessment"
	SendConfirmation  Name = "send_confirmation"
	LogConsent        Name = "log_consent"
	LogPrivacyCheck   Name = "log_privacy_check"
	SaveBusinessInfo  Name = "save_business_info"
)

// Call is one tool invocation as received from the voice agent.
// ToolCallID is opaque and echoed back unchanged; AgentType is used
// for observability only.
type Call struct {
	Tool       string
	Parameters any
	ToolCallID string
	AgentType  string
}

// Result is the uniform success shape for every tool. Message is read
// aloud to the caller; Data carries structured values the agent may
// act on.
type Result struct {
	Message string
	Data    map[string]any
}

// HandlerFunc executes one tool's business logic against validated,
// decoded parameters.
type HandlerFunc func(ctx context.Context, params map[string]any) (*Result, error)
