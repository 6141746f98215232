package tools

// Typed parameter records, one per tool. The dispatcher validates the
// raw map against the tool's schema first, then Typed decodes it into
// the tool's record, so a handler can never be invoked with a shape it
// does not expect.

// PracticeInfoParams selects which practice details to speak.
type PracticeInfoParams struct {
	InfoType string `json:"info_type"`
}

// AvailabilityParams requests slots for one calendar date.
type AvailabilityParams struct {
	Date        string `json:"date"`
	SessionType string `json:"session_type,omitempty"`
}

// BookingParams carries everything needed to create an appointment and
// its patient record.
type BookingParams struct {
	PatientName      string `json:"patient_name"`
	Phone            string `json:"phone"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	PresentingIssue  string `json:"presenting_issue,omitempty"`
	DateOfBirth      string `json:"date_of_birth,omitempty"`
	Address          string `json:"address,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
	GPReferral       string `json:"gp_referral,omitempty"`
	TherapyGoals     string `json:"therapy_goals,omitempty"`
}

// PatientInfoParams carries minimal intake data.
type PatientInfoParams struct {
	PatientName     string `json:"patient_name"`
	Phone           string `json:"phone"`
	PresentingIssue string `json:"presenting_issue,omitempty"`
	ScreeningStatus string `json:"screening_status,omitempty"`
}

// RiskAssessmentParams records a safety triage outcome.
type RiskAssessmentParams struct {
	PatientName                string `json:"patient_name"`
	RiskLevel                  string `json:"risk_level"`
	SuicideRisk                bool   `json:"suicide_risk,omitempty"`
	SelfHarmRisk               bool   `json:"self_harm_risk,omitempty"`
	CrisisInterventionProvided bool   `json:"crisis_intervention_provided,omitempty"`
	Notes                      string `json:"notes,omitempty"`
}

// ConfirmationParams requests an appointment confirmation be sent.
type ConfirmationParams struct {
	PatientName      string `json:"patient_name"`
	Phone            string `json:"phone"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	ConfirmationType string `json:"confirmation_type,omitempty"`
}

// ConsentParams records whether the caller agreed to proceed.
type ConsentParams struct {
	PatientName  string `json:"patient_name,omitempty"`
	ConsentGiven bool   `json:"consent_given"`
}

// PrivacyCheckParams records whether the caller confirmed they can
// speak privately.
type PrivacyCheckParams struct {
	PatientName      string `json:"patient_name,omitempty"`
	PrivacyConfirmed bool   `json:"privacy_confirmed"`
}

// BusinessInfoParams carries business details captured during setup
// conversations.
type BusinessInfoParams struct {
	BusinessName        string `json:"business_name"`
	BusinessPhone       string `json:"business_phone"`
	BusinessAddress     string `json:"business_address,omitempty"`
	BusinessEmail       string `json:"business_email,omitempty"`
	BusinessWebsite     string `json:"business_website,omitempty"`
	BusinessDescription string `json:"business_description,omitempty"`
}
