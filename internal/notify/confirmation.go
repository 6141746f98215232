// Package notify delivers outbound SMS and email, and composes the
// appointment confirmation a caller receives after booking.
package notify

import (
	"context"
	"fmt"

	"github.com/mindwell/voicedesk/internal/speech"
	"github.com/mindwell/voicedesk/pkg/logging"
)

// Channel selects how a confirmation is delivered.
type Channel string

const (
	ChannelSMS   Channel = "sms"
	ChannelEmail Channel = "email"
	ChannelBoth  Channel = "both"
)

// ConfirmationRequest carries the validated confirmation fields.
type ConfirmationRequest struct {
	PatientName string
	Phone       string
	Email       string
	Date        string // YYYY-MM-DD, already validated
	Time        string // HH:MM, already validated
	Channel     Channel
}

// Confirmation is the composed result. Sent reports whether at least
// one delivery channel accepted the message; composition itself never
// fails, so a false Sent still comes with both texts filled in.
type Confirmation struct {
	MessageToSend string `json:"message_to_send"`
	Sent          bool   `json:"confirmation_sent"`
	Channel       string `json:"channel"`
}

// ConfirmationService composes and dispatches appointment confirmations.
type ConfirmationService struct {
	sms          SMSSender
	email        EmailSender
	practiceName string
	contactPhone string
	logger       *logging.Logger
}

// ConfirmationConfig configures the service. Senders are optional;
// without one the corresponding channel is reported as not sent.
type ConfirmationConfig struct {
	SMS          SMSSender
	Email        EmailSender
	PracticeName string
	ContactPhone string
	Logger       *logging.Logger
}

// NewConfirmationService creates a confirmation service.
func NewConfirmationService(cfg ConfirmationConfig) *ConfirmationService {
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	return &ConfirmationService{
		sms:          cfg.SMS,
		email:        cfg.Email,
		practiceName: cfg.PracticeName,
		contactPhone: cfg.ContactPhone,
		logger:       cfg.Logger,
	}
}

// Send composes the delivery text and the spoken acknowledgment, then
// attempts delivery on the requested channel. Delivery failure is
// reported in the Confirmation and logged at warn, never as an error;
// the caller has already been told verbally what was arranged.
func (s *ConfirmationService) Send(ctx context.Context, req ConfirmationRequest) (*Confirmation, string) {
	if req.Channel == "" {
		req.Channel = ChannelSMS
	}

	messageToSend := fmt.Sprintf(
		"Hi %s, your appointment is confirmed for %s at %s. Please arrive 10 minutes early. If you need to reschedule, call us at %s at least 24 hours in advance.",
		req.PatientName,
		speech.FormatDate(req.Date), speech.FormatTime(req.Time),
		s.contactPhone,
	)

	sent := false
	if req.Channel == ChannelSMS || req.Channel == ChannelBoth {
		if s.deliverSMS(ctx, req, messageToSend) {
			sent = true
		}
	}
	if req.Channel == ChannelEmail || req.Channel == ChannelBoth {
		if s.deliverEmail(ctx, req, messageToSend) {
			sent = true
		}
	}

	confirmation := &Confirmation{
		MessageToSend: messageToSend,
		Sent:          sent,
		Channel:       string(req.Channel),
	}

	spoken := "I've sent you a confirmation with your appointment details. Please check your phone for the confirmation message."
	return confirmation, spoken
}

func (s *ConfirmationService) deliverSMS(ctx context.Context, req ConfirmationRequest, body string) bool {
	if s.sms == nil {
		s.logger.Warn("confirmation sms skipped: no sender configured", "patient_name", req.PatientName)
		return false
	}
	if err := s.sms.SendSMS(ctx, req.Phone, body); err != nil {
		s.logger.Warn("confirmation sms delivery failed", "error", err, "phone", req.Phone)
		return false
	}
	return true
}

func (s *ConfirmationService) deliverEmail(ctx context.Context, req ConfirmationRequest, body string) bool {
	if s.email == nil || req.Email == "" {
		s.logger.Warn("confirmation email skipped", "patient_name", req.PatientName)
		return false
	}
	err := s.email.Send(ctx, EmailMessage{
		To:      req.Email,
		ToName:  req.PatientName,
		Subject: fmt.Sprintf("Your appointment with %s is confirmed", s.practiceName),
		Body:    body,
	})
	if err != nil {
		s.logger.Warn("confirmation email delivery failed", "error", err, "email", req.Email)
		return false
	}
	return true
}
