// Package speech formats dates, times, and lists as natural spoken
// language. Tool responses are read aloud by a voice agent, so raw
// "2025-09-01 14:30" style values sound wrong to callers.
package speech

import (
	"fmt"
	"strings"
	"time"
)

// FormatTime renders a 24-hour HH:MM value the way a receptionist would
// say it: "09:00" becomes "9 o'clock AM", "14:30" becomes "2:30 PM".
// Values that do not parse are returned unchanged.
func FormatTime(value string) string {
	t, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		return value
	}

	hour := t.Hour()
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}

	if t.Minute() == 0 {
		return fmt.Sprintf("%d o'clock %s", displayHour, period)
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, t.Minute(), period)
}

// FormatDate renders a YYYY-MM-DD value as "Monday, 1 September 2025".
// Values that do not parse are returned unchanged.
func FormatDate(value string) string {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(value))
	if err != nil {
		return value
	}
	return t.Format("Monday, 2 January 2006")
}

// JoinList joins items into one spoken phrase: "a", "a and b",
// "a, b and c".
func JoinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
