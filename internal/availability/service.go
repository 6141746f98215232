// Package availability shapes candidate appointment slots for a
// requested date. The real source of truth for free/busy times is the
// practice-management calendar; this service formats whatever slot list
// its provider yields.
package availability

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mindwell/voicedesk/internal/directory"
	"github.com/mindwell/voicedesk/internal/speech"
	"github.com/mindwell/voicedesk/pkg/logging"
)

// Slot is one bookable date/time unit.
type Slot struct {
	Date string `json:"date"` // YYYY-MM-DD
	Time string `json:"time"` // HH:MM
}

// SlotProvider yields candidate slots for one date.
type SlotProvider interface {
	SlotsFor(ctx context.Context, date string) ([]Slot, error)
}

// DefaultTimes are the standing session start times offered when no
// calendar integration is wired.
var DefaultTimes = []string{"09:00", "10:30", "14:00", "15:30", "16:30"}

// StaticProvider offers the same times every day.
type StaticProvider struct {
	Times []string
}

// SlotsFor stamps the configured times onto the requested date.
func (p StaticProvider) SlotsFor(_ context.Context, date string) ([]Slot, error) {
	times := p.Times
	if len(times) == 0 {
		times = DefaultTimes
	}
	slots := make([]Slot, 0, len(times))
	for _, t := range times {
		slots = append(slots, Slot{Date: date, Time: t})
	}
	return slots, nil
}

// DirectoryProvider sources free slots from the practice-management
// calendar.
type DirectoryProvider struct {
	Client   directory.Client
	Location *time.Location
}

// SlotsFor queries calendar availability for the requested date.
func (p DirectoryProvider) SlotsFor(ctx context.Context, date string) ([]Slot, error) {
	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, fmt.Errorf("availability: parse date %q: %w", date, err)
	}

	free, err := p.Client.GetAvailability(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("availability: calendar lookup: %w", err)
	}

	slots := make([]Slot, 0, len(free))
	for _, s := range free {
		local := s.StartTime.In(loc)
		// The calendar may return a window wider than one day.
		if local.Format("2006-01-02") != date {
			continue
		}
		slots = append(slots, Slot{Date: date, Time: local.Format("15:04")})
	}
	return slots, nil
}

// Service produces the ordered slot list and spoken summary for a date.
type Service struct {
	provider SlotProvider
	logger   *logging.Logger
}

// NewService creates an availability service. A nil provider falls back
// to the standing defaults.
func NewService(provider SlotProvider, logger *logging.Logger) *Service {
	if provider == nil {
		provider = StaticProvider{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{provider: provider, logger: logger}
}

// Check returns every candidate slot for the date, ordered by time, and
// a spoken summary. The date has already passed format validation.
func (s *Service) Check(ctx context.Context, date string) ([]Slot, string, error) {
	slots, err := s.provider.SlotsFor(ctx, date)
	if err != nil {
		return nil, "", err
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].Time < slots[j].Time })

	if len(slots) == 0 {
		msg := fmt.Sprintf("I'm sorry, I don't have any openings on %s. Would you like to try another day?",
			speech.FormatDate(date))
		return slots, msg, nil
	}

	spoken := make([]string, len(slots))
	for i, slot := range slots {
		spoken[i] = speech.FormatTime(slot.Time)
	}
	msg := fmt.Sprintf("For %s, I have the following times available: %s. Would you like me to book one of these appointments for you?",
		speech.FormatDate(date), speech.JoinList(spoken))
	return slots, msg, nil
}
