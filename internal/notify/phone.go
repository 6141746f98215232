package notify

import (
	"regexp"
	"strings"
)

var (
	nonDigits   = regexp.MustCompile(`[^\d]`)
	auMobile    = regexp.MustCompile(`^\+61[45]\d{8}$`)
	auLandline  = regexp.MustCompile(`^\+61[2-9]\d{8}$`)
	leadingIntl = regexp.MustCompile(`^61\d{9}$`)
)

// NormalizePhone canonicalizes an Australian number to +61 form.
// Inputs already carrying a country code keep it; local 0-prefixed and
// bare 9-digit mobile/landline forms are promoted. Anything else is
// returned digits-only with no + so validation can reject it.
func NormalizePhone(raw string) string {
	digits := nonDigits.ReplaceAllString(raw, "")
	hadPlus := strings.HasPrefix(strings.TrimSpace(raw), "+")

	switch {
	case hadPlus:
		return "+" + digits
	case leadingIntl.MatchString(digits):
		return "+" + digits
	case strings.HasPrefix(digits, "0") && len(digits) == 10:
		return "+61" + digits[1:]
	case len(digits) == 9 && (digits[0] == '4' || digits[0] == '5'):
		return "+61" + digits
	default:
		return digits
	}
}

// ValidAUPhone reports whether the number normalizes to a plausible
// Australian mobile or landline.
func ValidAUPhone(raw string) bool {
	n := NormalizePhone(raw)
	return auMobile.MatchString(n) || auLandline.MatchString(n)
}
