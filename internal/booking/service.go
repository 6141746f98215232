// Package booking creates appointments and the patient identity they
// hang off. Identity resolution and calendar writes go through the
// practice-management directory when one is wired; otherwise records
// are generated locally.
package booking

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/mindwell/voicedesk/internal/directory"
	"github.com/mindwell/voicedesk/internal/ids"
	"github.com/mindwell/voicedesk/internal/patients"
	"github.com/mindwell/voicedesk/internal/speech"
	"github.com/mindwell/voicedesk/pkg/logging"
)

var bookingTracer trace.Tracer = otel.Tracer("voicedesk.internal.booking")

// DefaultDuration is the standard session length used to compute the
// appointment end time.
const DefaultDuration = 50 * time.Minute

// Request carries the validated booking fields.
type Request struct {
	PatientName     string
	Phone           string
	Date            string // YYYY-MM-DD, already validated
	Time            string // HH:MM, already validated
	PresentingIssue string
}

// Booking is the created appointment.
type Booking struct {
	AppointmentID string `json:"appointment_id"`
	PatientID     string `json:"patient_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	EndTime       string `json:"end_time"`
}

// Service books appointments.
type Service struct {
	dir      directory.Client
	intake   patients.Repository
	duration time.Duration
	loc      *time.Location
	logger   *logging.Logger
}

// Config configures the booking service. Directory and Intake are both
// optional; without a directory, identifiers are generated locally.
type Config struct {
	Directory directory.Client
	Intake    patients.Repository
	Duration  time.Duration
	Location  *time.Location
	Logger    *logging.Logger
}

// NewService creates a booking service.
func NewService(cfg Config) *Service {
	if cfg.Duration == 0 {
		cfg.Duration = DefaultDuration
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	return &Service{
		dir:      cfg.Directory,
		intake:   cfg.Intake,
		duration: cfg.Duration,
		loc:      cfg.Location,
		logger:   cfg.Logger,
	}
}

// Book resolves or creates the patient, creates the appointment, and
// returns the booking with its spoken confirmation. Any upstream
// failure is returned as-is; retries belong to the caller.
func (s *Service) Book(ctx context.Context, req Request) (*Booking, string, error) {
	ctx, span := bookingTracer.Start(ctx, "booking.book")
	defer span.End()
	span.SetAttributes(
		attribute.String("voicedesk.date", req.Date),
		attribute.String("voicedesk.time", req.Time),
	)

	start, err := time.ParseInLocation("2006-01-02 15:04", req.Date+" "+req.Time, s.loc)
	if err != nil {
		span.RecordError(err)
		return nil, "", fmt.Errorf("booking: parse start time: %w", err)
	}
	end := start.Add(s.duration)

	patientID, err := s.resolvePatient(ctx, req)
	if err != nil {
		span.RecordError(err)
		return nil, "", err
	}

	appointmentID, err := s.createAppointment(ctx, patientID, start, end, req.PresentingIssue)
	if err != nil {
		span.RecordError(err)
		return nil, "", err
	}

	// Keep a local intake record alongside the directory's copy so the
	// practice has context even if the directory sync lags.
	if s.intake != nil {
		if _, err := s.intake.Create(ctx, &patients.CreateRequest{
			Name:            req.PatientName,
			Phone:           req.Phone,
			PresentingIssue: req.PresentingIssue,
		}); err != nil {
			s.logger.Warn("booking: intake record failed", "error", err, "appointment_id", appointmentID)
		}
	}

	booking := &Booking{
		AppointmentID: appointmentID,
		PatientID:     patientID,
		Date:          req.Date,
		Time:          req.Time,
		EndTime:       end.Format("15:04"),
	}

	s.logger.Info("appointment booked",
		"appointment_id", appointmentID, "patient_id", patientID,
		"date", req.Date, "time", req.Time)

	message := fmt.Sprintf("Great! I've booked your appointment for %s at %s. Your appointment ID is %s. You'll receive a confirmation shortly.",
		speech.FormatDate(req.Date), speech.FormatTime(req.Time), appointmentID)
	return booking, message, nil
}

// resolvePatient finds an existing directory patient by name, or
// creates one. When several share the name, the first directory match
// wins; there is no secondary key.
func (s *Service) resolvePatient(ctx context.Context, req Request) (string, error) {
	if s.dir == nil {
		return ids.New(ids.Patient), nil
	}

	matches, err := s.dir.SearchPatients(ctx, directory.PatientSearchQuery{Name: req.PatientName})
	if err != nil {
		return "", fmt.Errorf("booking: patient lookup: %w", err)
	}
	if len(matches) > 0 {
		return matches[0].ID, nil
	}

	created, err := s.dir.CreatePatient(ctx, directory.Patient{
		Name:  req.PatientName,
		Phone: req.Phone,
	})
	if err != nil {
		return "", fmt.Errorf("booking: create patient: %w", err)
	}
	return created.ID, nil
}

func (s *Service) createAppointment(ctx context.Context, patientID string, start, end time.Time, notes string) (string, error) {
	if s.dir == nil {
		return ids.New(ids.Appointment), nil
	}

	appt, err := s.dir.CreateAppointment(ctx, directory.AppointmentRequest{
		PatientID: patientID,
		StartTime: start,
		EndTime:   end,
		Notes:     notes,
	})
	if err != nil {
		return "", fmt.Errorf("booking: create appointment: %w", err)
	}
	if appt.ID == "" {
		return ids.New(ids.Appointment), nil
	}
	return appt.ID, nil
}
