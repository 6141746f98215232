package tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mindwell/voicedesk/pkg/logging"
)

func newTestDispatcher(t *testing.T, reg *Registry) *Dispatcher {
	t.Helper()
	return NewDispatcher(reg, nil, nil, logging.New("error"))
}

func TestDispatchUnknownToolInvokesNoHandler(t *testing.T) {
	invoked := 0
	reg := NewRegistry()
	reg.Register(Tool{
		Name: GetPracticeInfo,
		Handler: func(ctx context.Context, params map[string]any) (*Result, error) {
			invoked++
			return &Result{Message: "ok"}, nil
		},
	})
	d := newTestDispatcher(t, reg)

	res, derr := d.Dispatch(context.Background(), Call{
		Tool:       "summon_dragon",
		Parameters: map[string]any{},
	})
	if res != nil {
		t.Fatal("expected no result")
	}
	if derr == nil || derr.Kind != KindToolNotFound {
		t.Fatalf("expected ToolNotFound, got %v", derr)
	}
	if invoked != 0 {
		t.Errorf("handler invoked %d times, want 0", invoked)
	}
}

func TestDispatchMalformedJSONStringNeverReachesHandler(t *testing.T) {
	invoked := 0
	reg := NewRegistry()
	reg.Register(Tool{
		Name: CheckAvailability,
		Handler: func(ctx context.Context, params map[string]any) (*Result, error) {
			invoked++
			return &Result{}, nil
		},
	})
	d := newTestDispatcher(t, reg)

	_, derr := d.Dispatch(context.Background(), Call{
		Tool:       string(CheckAvailability),
		Parameters: `{"date": "2025-08-26"`,
	})
	if derr == nil || derr.Kind != KindInvalidParameters {
		t.Fatalf("expected InvalidParameters, got %v", derr)
	}
	if invoked != 0 {
		t.Errorf("handler invoked %d times, want 0", invoked)
	}
}

func TestDispatchJSONStringParameters(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Tool{
		Name:   CheckAvailability,
		Schema: Schema{Required: []Field{{Name: "date", Format: FormatDate}}},
		Handler: func(ctx context.Context, params map[string]any) (*Result, error) {
			return &Result{Message: "slots for " + params["date"].(string)}, nil
		},
	})
	d := newTestDispatcher(t, reg)

	res, derr := d.Dispatch(context.Background(), Call{
		Tool:       string(CheckAvailability),
		Parameters: `{"date": "2025-08-26"}`,
	})
	if derr != nil {
		t.Fatalf("unexpected error: %v", derr)
	}
	if !strings.Contains(res.Message, "2025-08-26") {
		t.Errorf("message = %q", res.Message)
	}
}

func TestDispatchNilParameters(t *testing.T) {
	reg := NewRegistry()
	d := newTestDispatcher(t, reg)

	_, derr := d.Dispatch(context.Background(), Call{Tool: "anything"})
	if derr == nil || derr.Kind != KindMissingParameters {
		t.Fatalf("expected MissingParameters, got %v", derr)
	}
}

func TestDispatchValidationFailsBeforeHandler(t *testing.T) {
	invoked := 0
	reg := NewRegistry()
	reg.Register(Tool{
		Name: BookAppointment,
		Schema: Schema{Required: []Field{
			{Name: "patient_name"},
			{Name: "phone", Format: FormatPhone},
		}},
		Handler: func(ctx context.Context, params map[string]any) (*Result, error) {
			invoked++
			return &Result{}, nil
		},
	})
	d := newTestDispatcher(t, reg)

	_, derr := d.Dispatch(context.Background(), Call{
		Tool:       string(BookAppointment),
		Parameters: map[string]any{},
	})
	if derr == nil || derr.Kind != KindValidationFailed {
		t.Fatalf("expected ValidationFailed, got %v", derr)
	}
	if invoked != 0 {
		t.Error("handler must not run when validation fails")
	}
}

func TestDispatchRecoversHandlerPanic(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Tool{
		Name: SavePatientInfo,
		Handler: func(ctx context.Context, params map[string]any) (*Result, error) {
			panic("boom")
		},
	})
	d := newTestDispatcher(t, reg)

	res, derr := d.Dispatch(context.Background(), Call{
		Tool:       string(SavePatientInfo),
		Parameters: map[string]any{},
	})
	if res != nil {
		t.Error("expected nil result after panic")
	}
	if derr == nil || derr.Kind != KindExecutionException {
		t.Fatalf("expected ExecutionException, got %v", derr)
	}
	if strings.Contains(derr.Content, "boom") {
		t.Error("panic detail must not leak into spoken content")
	}
}

func TestDispatchConvertsUntypedErrors(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Tool{
		Name: SendConfirmation,
		Handler: func(ctx context.Context, params map[string]any) (*Result, error) {
			return nil, errors.New("twilio: 500 from upstream with secret detail")
		},
	})
	d := newTestDispatcher(t, reg)

	_, derr := d.Dispatch(context.Background(), Call{
		Tool:       string(SendConfirmation),
		Parameters: map[string]any{},
	})
	if derr == nil || derr.Kind != KindExecutionError {
		t.Fatalf("expected ExecutionError, got %v", derr)
	}
	if strings.Contains(derr.Content, "twilio") {
		t.Error("internal detail leaked into spoken content")
	}
}

func TestDispatchTypedErrorPassesThrough(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Tool{
		Name: BookAppointment,
		Handler: func(ctx context.Context, params map[string]any) (*Result, error) {
			return nil, NewError(KindBookingFailed, "booking_failed",
				"Sorry, I encountered an issue booking your appointment. Please try again.")
		},
	})
	d := newTestDispatcher(t, reg)

	_, derr := d.Dispatch(context.Background(), Call{
		Tool:       string(BookAppointment),
		Parameters: map[string]any{},
	})
	if derr == nil || derr.Kind != KindBookingFailed {
		t.Fatalf("expected BookingFailed, got %v", derr)
	}
}

func TestTypedDecodesParams(t *testing.T) {
	handler := Typed(func(ctx context.Context, p AvailabilityParams) (*Result, error) {
		return &Result{Message: p.Date}, nil
	})

	res, err := handler(context.Background(), map[string]any{"date": "2025-08-26", "session_type": "initial"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Message != "2025-08-26" {
		t.Errorf("decoded date = %q", res.Message)
	}
}

func TestErrorSeverities(t *testing.T) {
	if NewError(KindValidationFailed, "c", "m").Severity != SeverityWarn {
		t.Error("validation failures should be warn severity")
	}
	if NewError(KindExecutionException, "c", "m").Severity != SeverityError {
		t.Error("execution exceptions should be error severity")
	}
}
