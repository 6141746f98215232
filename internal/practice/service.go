package practice

import (
	"fmt"
	"strings"
	"time"

	"github.com/mindwell/voicedesk/pkg/logging"
)

// InfoType selects which slice of practice information to speak.
const (
	InfoHours    = "hours"
	InfoPricing  = "pricing"
	InfoLocation = "location"
	InfoServices = "services"
	InfoDateTime = "datetime"
	InfoAll      = "all"
)

const fallbackMessage = "Here's our practice information. What would you like to know more about?"

// Service composes spoken practice-information responses from an
// immutable Config. It holds no mutable state and is safe for
// concurrent use.
type Service struct {
	cfg    *Config
	loc    *time.Location
	now    func() time.Time
	logger *logging.Logger
}

// NewService creates the practice info service. The timezone comes from
// the config; an unknown zone falls back to UTC.
func NewService(cfg *Config, logger *logging.Logger) *Service {
	if cfg == nil {
		cfg = Defaults()
	}
	if logger == nil {
		logger = logging.Default()
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("practice: unknown timezone, using UTC", "timezone", cfg.Timezone)
		loc = time.UTC
	}
	return &Service{cfg: cfg, loc: loc, now: time.Now, logger: logger}
}

// Config returns the injected configuration.
func (s *Service) Config() *Config {
	return s.cfg
}

// Info returns the spoken message for the requested selector plus the
// full structured payload. An unrecognized selector yields the generic
// fallback message, never an error.
func (s *Service) Info(infoType string) (string, map[string]any) {
	infoType = strings.ToLower(strings.TrimSpace(infoType))

	var parts []string
	if infoType == InfoHours || infoType == InfoAll {
		parts = append(parts, s.hoursMessage())
	}
	if infoType == InfoPricing || infoType == InfoAll {
		parts = append(parts, s.pricingMessage())
	}
	if infoType == InfoLocation || infoType == InfoAll {
		parts = append(parts, s.locationMessage())
	}
	if infoType == InfoServices || infoType == InfoAll {
		parts = append(parts, s.servicesMessage())
	}
	// Deliberately excluded from "all": the datetime line changes every
	// call, and "all" responses must stay stable.
	if infoType == InfoDateTime {
		parts = append(parts, s.dateTimeMessage())
	}

	message := strings.Join(parts, " ")
	if message == "" {
		message = fallbackMessage
	}
	return message, s.data()
}

func (s *Service) hoursMessage() string {
	h := s.cfg.Hours
	return fmt.Sprintf("We're open Monday to Thursday %s, Friday %s, Saturday %s, and %s on Sundays.",
		h.Monday, h.Friday, h.Saturday, strings.ToLower(h.Sunday))
}

func (s *Service) pricingMessage() string {
	p := s.cfg.Pricing
	msg := fmt.Sprintf("Initial sessions are %s and follow-up sessions are %s.",
		p.InitialSession, p.FollowUpSession)
	if p.ConcessionAvailable {
		msg += " Concession rates are available."
	}
	return msg
}

func (s *Service) locationMessage() string {
	l := s.cfg.Location
	return fmt.Sprintf("We're located at %s, with %s and %s.",
		l.Address, strings.ToLower(l.Parking), strings.ToLower(l.PublicTransport))
}

func (s *Service) servicesMessage() string {
	services := make([]string, len(s.cfg.Services))
	for i, svc := range s.cfg.Services {
		services[i] = strings.ToLower(svc)
	}
	return fmt.Sprintf("We specialize in %s.", strings.Join(services, ", "))
}

func (s *Service) dateTimeMessage() string {
	now := s.now().In(s.loc)
	return fmt.Sprintf("Today is %s and the time is %s.",
		now.Format("Monday, 2 January 2006"), now.Format("3:04 PM"))
}

func (s *Service) data() map[string]any {
	now := s.now().In(s.loc)
	return map[string]any{
		"name":         s.cfg.Name,
		"hours":        s.cfg.Hours,
		"pricing":      s.cfg.Pricing,
		"location":     s.cfg.Location,
		"services":     s.cfg.Services,
		"current_date": now.Format("2006-01-02"),
		"current_time": now.Format("15:04"),
	}
}
