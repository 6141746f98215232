// Package bootstrap wires services into the tool registry and builds
// the shared infrastructure clients. It is the only package that knows
// both the tool layer and every service; nothing here runs per-call
// logic beyond adapting shapes.
package bootstrap

import (
	"context"

	"github.com/mindwell/voicedesk/internal/availability"
	"github.com/mindwell/voicedesk/internal/booking"
	"github.com/mindwell/voicedesk/internal/business"
	"github.com/mindwell/voicedesk/internal/consent"
	"github.com/mindwell/voicedesk/internal/notify"
	"github.com/mindwell/voicedesk/internal/patients"
	"github.com/mindwell/voicedesk/internal/practice"
	"github.com/mindwell/voicedesk/internal/risk"
	"github.com/mindwell/voicedesk/internal/tools"
)

// Services collects every capability exposed as a tool.
type Services struct {
	Practice     *practice.Service
	Availability *availability.Service
	Booking      *booking.Service
	Patients     *patients.Service
	Risk         *risk.Service
	Confirmation *notify.ConfirmationService
	Consent      *consent.Service
	Business     *business.Service
}

// BuildRegistry declares every tool: its schema and its handler. The
// registry is complete after this call and never changes.
func BuildRegistry(s Services) *tools.Registry {
	r := tools.NewRegistry()

	r.Register(tools.Tool{
		Name:    tools.GetPracticeInfo,
		Handler: tools.Typed(practiceInfoHandler(s.Practice)),
	})

	r.Register(tools.Tool{
		Name: tools.CheckAvailability,
		Schema: tools.Schema{Required: []tools.Field{
			{
				Name:           "date",
				Format:         tools.FormatDate,
				MissingCode:    "date_required",
				MissingContent: "Date parameter is required in YYYY-MM-DD format.",
			},
		}},
		Handler: tools.Typed(availabilityHandler(s.Availability)),
	})

	r.Register(tools.Tool{
		Name: tools.BookAppointment,
		Schema: tools.Schema{Required: []tools.Field{
			{Name: "patient_name"},
			{Name: "phone", Format: tools.FormatPhone},
			{Name: "date", Format: tools.FormatDate},
			{Name: "time", Format: tools.FormatTime},
		}},
		Handler: tools.Typed(bookingHandler(s.Booking)),
	})

	r.Register(tools.Tool{
		Name: tools.SavePatientInfo,
		Schema: tools.Schema{Required: []tools.Field{
			{Name: "patient_name"},
			{Name: "phone", Format: tools.FormatPhone},
		}},
		Handler: tools.Typed(patientInfoHandler(s.Patients)),
	})

	r.Register(tools.Tool{
		Name: tools.LogRiskAssessment,
		Schema: tools.Schema{Required: []tools.Field{
			{Name: "patient_name"},
			{Name: "risk_level", Format: tools.FormatRiskLevel},
		}},
		Handler: tools.Typed(riskHandler(s.Risk)),
	})

	r.Register(tools.Tool{
		Name: tools.SendConfirmation,
		Schema: tools.Schema{Required: []tools.Field{
			{Name: "patient_name"},
			{Name: "phone", Format: tools.FormatPhone},
			{Name: "date", Format: tools.FormatDate},
			{Name: "time", Format: tools.FormatTime},
		}},
		Handler: tools.Typed(confirmationHandler(s.Confirmation)),
	})

	r.Register(tools.Tool{
		Name: tools.LogConsent,
		Schema: tools.Schema{Required: []tools.Field{
			{Name: "consent_given", Format: tools.FormatBool},
		}},
		Handler: tools.Typed(consentHandler(s.Consent)),
	})

	r.Register(tools.Tool{
		Name: tools.LogPrivacyCheck,
		Schema: tools.Schema{Required: []tools.Field{
			{Name: "privacy_confirmed", Format: tools.FormatBool},
		}},
		Handler: tools.Typed(privacyHandler(s.Consent)),
	})

	r.Register(tools.Tool{
		Name: tools.SaveBusinessInfo,
		Schema: tools.Schema{Required: []tools.Field{
			{Name: "business_name"},
			{Name: "business_phone", Format: tools.FormatPhone},
		}},
		Handler: tools.Typed(businessHandler(s.Business)),
	})

	return r
}

func practiceInfoHandler(svc *practice.Service) func(context.Context, tools.PracticeInfoParams) (*tools.Result, error) {
	return func(_ context.Context, p tools.PracticeInfoParams) (*tools.Result, error) {
		message, data := svc.Info(p.InfoType)
		return &tools.Result{Message: message, Data: data}, nil
	}
}

func availabilityHandler(svc *availability.Service) func(context.Context, tools.AvailabilityParams) (*tools.Result, error) {
	return func(ctx context.Context, p tools.AvailabilityParams) (*tools.Result, error) {
		slots, message, err := svc.Check(ctx, p.Date)
		if err != nil {
			return nil, tools.NewError(tools.KindExecutionError, "availability_failed",
				"Unable to check availability at the moment. Please try again.")
		}
		return &tools.Result{
			Message: message,
			Data: map[string]any{
				"date":            p.Date,
				"available_slots": slots,
			},
		}, nil
	}
}

func bookingHandler(svc *booking.Service) func(context.Context, tools.BookingParams) (*tools.Result, error) {
	return func(ctx context.Context, p tools.BookingParams) (*tools.Result, error) {
		booked, message, err := svc.Book(ctx, booking.Request{
			PatientName:     p.PatientName,
			Phone:           p.Phone,
			Date:            p.Date,
			Time:            p.Time,
			PresentingIssue: p.PresentingIssue,
		})
		if err != nil {
			return nil, tools.NewError(tools.KindBookingFailed, "booking_failed",
				"Sorry, I encountered an issue booking your appointment. Please try again.")
		}
		return &tools.Result{
			Message: message,
			Data: map[string]any{
				"appointment_id": booked.AppointmentID,
				"patient_id":     booked.PatientID,
				"date":           booked.Date,
				"time":           booked.Time,
				"end_time":       booked.EndTime,
			},
		}, nil
	}
}

func patientInfoHandler(svc *patients.Service) func(context.Context, tools.PatientInfoParams) (*tools.Result, error) {
	return func(ctx context.Context, p tools.PatientInfoParams) (*tools.Result, error) {
		record, message, err := svc.Save(ctx, &patients.CreateRequest{
			Name:            p.PatientName,
			Phone:           p.Phone,
			PresentingIssue: p.PresentingIssue,
			ScreeningStatus: p.ScreeningStatus,
		})
		if err != nil {
			return nil, tools.NewError(tools.KindExecutionError, "patient_save_failed",
				"Unable to save your information at the moment. Please try again.")
		}
		return &tools.Result{
			Message: message,
			Data: map[string]any{
				"patient_id":       record.ID,
				"screening_status": record.ScreeningStatus,
			},
		}, nil
	}
}

func riskHandler(svc *risk.Service) func(context.Context, tools.RiskAssessmentParams) (*tools.Result, error) {
	return func(ctx context.Context, p tools.RiskAssessmentParams) (*tools.Result, error) {
		assessment, message, err := svc.Log(ctx, risk.Request{
			PatientName:  p.PatientName,
			Level:        risk.Level(p.RiskLevel),
			SuicideRisk:  p.SuicideRisk,
			SelfHarmRisk: p.SelfHarmRisk,
			Notes:        p.Notes,
			ToolCallID:   tools.CallIDFrom(ctx),
		})
		if err != nil {
			return nil, tools.NewError(tools.KindExecutionError, "assessment_failed",
				"Unable to log assessment at the moment.")
		}
		return &tools.Result{
			Message: message,
			Data: map[string]any{
				"assessment_id": assessment.ID,
				"risk_level":    string(assessment.Level),
			},
		}, nil
	}
}

func confirmationHandler(svc *notify.ConfirmationService) func(context.Context, tools.ConfirmationParams) (*tools.Result, error) {
	return func(ctx context.Context, p tools.ConfirmationParams) (*tools.Result, error) {
		confirmation, spoken := svc.Send(ctx, notify.ConfirmationRequest{
			PatientName: p.PatientName,
			Phone:       p.Phone,
			Date:        p.Date,
			Time:        p.Time,
			Channel:     notify.Channel(p.ConfirmationType),
		})
		return &tools.Result{
			Message: spoken,
			Data: map[string]any{
				"confirmation_sent": confirmation.Sent,
				"channel":           confirmation.Channel,
				"message_to_send":   confirmation.MessageToSend,
			},
		}, nil
	}
}

func consentHandler(svc *consent.Service) func(context.Context, tools.ConsentParams) (*tools.Result, error) {
	return func(ctx context.Context, p tools.ConsentParams) (*tools.Result, error) {
		rec, message, err := svc.LogConsent(ctx, p.PatientName, tools.CallIDFrom(ctx), p.ConsentGiven)
		if err != nil {
			return nil, tools.NewError(tools.KindExecutionError, "consent_log_failed",
				"Something went wrong recording your consent. Please try again.")
		}
		return &tools.Result{
			Message: message,
			Data: map[string]any{
				"consent_id":    rec.ID,
				"consent_given": rec.Given,
			},
		}, nil
	}
}

func privacyHandler(svc *consent.Service) func(context.Context, tools.PrivacyCheckParams) (*tools.Result, error) {
	return func(ctx context.Context, p tools.PrivacyCheckParams) (*tools.Result, error) {
		check, message, err := svc.LogPrivacyCheck(ctx, p.PatientName, tools.CallIDFrom(ctx), p.PrivacyConfirmed)
		if err != nil {
			return nil, tools.NewError(tools.KindExecutionError, "privacy_log_failed",
				"Something went wrong recording your confirmation. Please try again.")
		}
		return &tools.Result{
			Message: message,
			Data: map[string]any{
				"privacy_check_id":  check.ID,
				"privacy_confirmed": check.Confirmed,
			},
		}, nil
	}
}

func businessHandler(svc *business.Service) func(context.Context, tools.BusinessInfoParams) (*tools.Result, error) {
	return func(ctx context.Context, p tools.BusinessInfoParams) (*tools.Result, error) {
		if svc == nil {
			return nil, tools.NewError(tools.KindExecutionError, "business_save_failed",
				"Unable to save the business details at the moment. Please try again.")
		}
		info, message, err := svc.Save(ctx, &business.Info{
			Name:        p.BusinessName,
			Phone:       p.BusinessPhone,
			Address:     p.BusinessAddress,
			Email:       p.BusinessEmail,
			Website:     p.BusinessWebsite,
			Description: p.BusinessDescription,
		})
		if err != nil {
			return nil, tools.NewError(tools.KindExecutionError, "business_save_failed",
				"Unable to save the business details at the moment. Please try again.")
		}
		return &tools.Result{
			Message: message,
			Data:    map[string]any{"business_id": info.ID},
		}, nil
	}
}
