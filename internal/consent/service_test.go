package consent

import (
	"context"
	"strings"
	"testing"
)

type spyAuditor struct {
	consentCalls int
	privacyCalls int
	lastGiven    bool
}

func (a *spyAuditor) LogConsentRecorded(ctx context.Context, patientName, toolCallID, recordID string, given bool) error {
	a.consentCalls++
	a.lastGiven = given
	return nil
}

func (a *spyAuditor) LogPrivacyCheck(ctx context.Context, patientName, toolCallID, recordID string, confirmed bool) error {
	a.privacyCalls++
	a.lastGiven = confirmed
	return nil
}

func TestLogConsentGiven(t *testing.T) {
	repo := NewInMemoryRepository()
	audit := &spyAuditor{}
	svc := NewService(repo, audit, nil)

	rec, message, err := svc.LogConsent(context.Background(), "Jane Doe", "call-1", true)
	if err != nil {
		t.Fatalf("LogConsent returned error: %v", err)
	}
	if !strings.HasPrefix(rec.ID, "CONSENT-") {
		t.Errorf("record ID = %q, want CONSENT- prefix", rec.ID)
	}
	if !strings.Contains(message, "Thank you") {
		t.Errorf("affirmative message = %q", message)
	}
	if audit.consentCalls != 1 || !audit.lastGiven {
		t.Errorf("audit calls = %d given = %v", audit.consentCalls, audit.lastGiven)
	}
	if len(repo.Consents()) != 1 {
		t.Error("consent not stored")
	}
}

func TestLogConsentDeclinedHalts(t *testing.T) {
	svc := NewService(nil, nil, nil)

	rec, message, err := svc.LogConsent(context.Background(), "Jane Doe", "call-1", false)
	if err != nil {
		t.Fatalf("declined consent must not be an error, got %v", err)
	}
	if rec.Given {
		t.Error("record shows consent given")
	}
	if !strings.Contains(message, "unable to proceed") {
		t.Errorf("declined message should halt the flow, got %q", message)
	}
}

func TestLogPrivacyCheck(t *testing.T) {
	repo := NewInMemoryRepository()
	audit := &spyAuditor{}
	svc := NewService(repo, audit, nil)

	check, message, err := svc.LogPrivacyCheck(context.Background(), "Jane Doe", "call-2", true)
	if err != nil {
		t.Fatalf("LogPrivacyCheck returned error: %v", err)
	}
	if !strings.HasPrefix(check.ID, "PRIV-") {
		t.Errorf("check ID = %q, want PRIV- prefix", check.ID)
	}
	if !strings.Contains(message, "Thank you for confirming") {
		t.Errorf("affirmative message = %q", message)
	}
	if audit.privacyCalls != 1 {
		t.Errorf("audit calls = %d", audit.privacyCalls)
	}

	_, declined, err := svc.LogPrivacyCheck(context.Background(), "Jane Doe", "call-3", false)
	if err != nil {
		t.Fatalf("declined check must not be an error, got %v", err)
	}
	if !strings.Contains(declined, "call us back") {
		t.Errorf("declined message = %q", declined)
	}
	if len(repo.PrivacyChecks()) != 2 {
		t.Errorf("stored checks = %d, want 2", len(repo.PrivacyChecks()))
	}
}
