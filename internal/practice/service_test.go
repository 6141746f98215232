package practice

import (
	"strings"
	"testing"
	"time"

	"github.com/mindwell/voicedesk/pkg/logging"
)

func fixedClock() time.Time {
	return time.Date(2025, 9, 1, 10, 30, 0, 0, time.UTC)
}

func newFixedService(t *testing.T) *Service {
	t.Helper()
	svc := NewService(Defaults(), logging.New("error"))
	svc.now = fixedClock
	return svc
}

func TestInfoAllIsIdempotent(t *testing.T) {
	svc := newFixedService(t)

	first, _ := svc.Info("all")
	second, _ := svc.Info("all")
	if first != second {
		t.Errorf("Info(all) not stable:\n%q\n%q", first, second)
	}
	for _, want := range []string{"We're open", "Initial sessions", "We're located", "We specialize"} {
		if !strings.Contains(first, want) {
			t.Errorf("Info(all) missing %q: %q", want, first)
		}
	}
	if strings.Contains(first, "Today is") {
		t.Error("Info(all) must not include the changing datetime line")
	}
}

func TestInfoSelectors(t *testing.T) {
	svc := newFixedService(t)

	tests := []struct {
		infoType string
		want     string
		reject   string
	}{
		{"hours", "We're open Monday to Thursday", "Initial sessions"},
		{"pricing", "Initial sessions are $180", "We're located"},
		{"location", "We're located at", "We specialize"},
		{"services", "We specialize in", "We're open"},
		{"datetime", "Today is Monday, 1 September 2025", "We're open"},
	}
	for _, tt := range tests {
		t.Run(tt.infoType, func(t *testing.T) {
			msg, _ := svc.Info(tt.infoType)
			if !strings.Contains(msg, tt.want) {
				t.Errorf("Info(%s) = %q, want substring %q", tt.infoType, msg, tt.want)
			}
			if strings.Contains(msg, tt.reject) {
				t.Errorf("Info(%s) leaked other section: %q", tt.infoType, msg)
			}
		})
	}
}

func TestInfoUnknownSelectorFallsBack(t *testing.T) {
	svc := newFixedService(t)

	for _, sel := range []string{"", "prices", "everything"} {
		msg, data := svc.Info(sel)
		if msg != fallbackMessage {
			t.Errorf("Info(%q) = %q, want fallback", sel, msg)
		}
		if data["name"] != "Mindwell Psychology" {
			t.Errorf("data payload should still carry practice info, got %v", data["name"])
		}
	}
}

func TestInfoDataPayload(t *testing.T) {
	svc := newFixedService(t)

	_, data := svc.Info("all")
	if data["current_date"] != "2025-09-01" {
		t.Errorf("current_date = %v", data["current_date"])
	}
	if data["current_time"] != "10:30" {
		t.Errorf("current_time = %v", data["current_time"])
	}
}
