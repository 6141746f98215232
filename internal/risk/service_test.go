package risk

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mindwell/voicedesk/internal/observability/metrics"
)

type spyAuditor struct {
	calls  int
	level  string
	crisis bool
	err    error
}

func (a *spyAuditor) LogRiskAssessment(ctx context.Context, patientName, toolCallID, assessmentID, level string, crisis bool) error {
	a.calls++
	a.level = level
	a.crisis = crisis
	return a.err
}

type failingRepo struct{}

func (failingRepo) Create(ctx context.Context, a *Assessment) error {
	return errors.New("db down")
}

func TestLogRoutineAssessment(t *testing.T) {
	repo := NewInMemoryRepository()
	audit := &spyAuditor{}
	svc := NewService(Config{Repository: repo, Audit: audit, CrisisLine: "13 11 14"})

	assessment, message, err := svc.Log(context.Background(), Request{
		PatientName: "Jane Doe",
		Level:       LevelLow,
		Notes:       "mild stress",
		ToolCallID:  "call-1",
	})
	if err != nil {
		t.Fatalf("Log returned error: %v", err)
	}
	if !strings.HasPrefix(assessment.ID, "RISK-") {
		t.Errorf("assessment ID = %q, want RISK- prefix", assessment.ID)
	}
	if want := "I've logged your assessment. If you need immediate help, please call Lifeline on 13 11 14."; message != want {
		t.Errorf("message = %q, want %q", message, want)
	}
	if audit.calls != 1 || audit.crisis {
		t.Errorf("audit calls = %d crisis = %v, want 1 routine call", audit.calls, audit.crisis)
	}
	if got := len(repo.All()); got != 1 {
		t.Errorf("stored assessments = %d, want 1", got)
	}
}

func TestLogCrisisAssessment(t *testing.T) {
	audit := &spyAuditor{}
	svc := NewService(Config{Audit: audit})

	assessment, message, err := svc.Log(context.Background(), Request{
		PatientName: "Jane Doe",
		Level:       LevelCrisis,
	})
	if err != nil {
		t.Fatalf("Log returned error: %v", err)
	}
	if want := "This appears to be a crisis situation. Please call Lifeline immediately on 13 11 14 or go to your nearest emergency department."; message != want {
		t.Errorf("message = %q, want %q", message, want)
	}
	if !audit.crisis {
		t.Error("audit not flagged as crisis")
	}
	if assessment.Level != LevelCrisis {
		t.Errorf("level = %q", assessment.Level)
	}
}

func TestLogHighRoutesToCrisisTemplate(t *testing.T) {
	audit := &spyAuditor{}
	svc := NewService(Config{Audit: audit})

	_, message, err := svc.Log(context.Background(), Request{
		PatientName: "Jane Doe",
		Level:       LevelHigh,
		SuicideRisk: true,
	})
	if err != nil {
		t.Fatalf("Log returned error: %v", err)
	}
	if !strings.Contains(message, "crisis situation") {
		t.Errorf("high level should use the crisis template, got %q", message)
	}
	if !audit.crisis {
		t.Error("high level should flag the audit event for escalation")
	}
}

func TestLogAuditFailureDoesNotFailCall(t *testing.T) {
	audit := &spyAuditor{err: errors.New("audit store down")}
	svc := NewService(Config{Audit: audit})

	_, _, err := svc.Log(context.Background(), Request{PatientName: "Jane Doe", Level: LevelHigh})
	if err != nil {
		t.Fatalf("Log returned error despite persisted assessment: %v", err)
	}
	if audit.calls != 1 {
		t.Errorf("audit calls = %d", audit.calls)
	}
}

func TestLogRepositoryFailure(t *testing.T) {
	svc := NewService(Config{Repository: failingRepo{}})

	if _, _, err := svc.Log(context.Background(), Request{Level: LevelLow}); err == nil {
		t.Fatal("expected error when repository write fails")
	}
}

func TestLogRecordsAlertMetric(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewToolMetrics(reg)
	svc := NewService(Config{Metrics: m})

	if _, _, err := svc.Log(context.Background(), Request{Level: LevelCrisis}); err != nil {
		t.Fatal(err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, mf := range families {
		if mf.GetName() != "voicedesk_risk_alerts_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "level" && label.GetValue() == "crisis" {
					found = metric.GetCounter().GetValue() == 1
				}
			}
		}
	}
	if !found {
		t.Error("crisis alert counter not incremented")
	}
}
