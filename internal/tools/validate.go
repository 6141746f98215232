package tools

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Format names a value-format check applied to a required field.
type Format string

const (
	FormatNone      Format = ""
	FormatDate      Format = "date"       // YYYY-MM-DD, real calendar date
	FormatTime      Format = "time"       // 24-hour HH:MM
	FormatPhone     Format = "phone"      // locale-specific, configurable
	FormatRiskLevel Format = "risk_level" // low|medium|high|crisis
	FormatBool      Format = "bool"       // must be a JSON boolean
)

// Field declares one required parameter. MissingCode/MissingContent,
// when set, give a field its own error identity if it is the only
// thing missing (check_availability's bare "date_required" case).
type Field struct {
	Name           string
	Format         Format
	MissingCode    string
	MissingContent string
}

// Schema is the declarative validation contract for one tool: which
// fields must be present and what shape each must have. It is consumed
// generically by Validate; tools carry no hand-written checks.
type Schema struct {
	Required []Field
}

// PhoneValidator reports whether a phone number is acceptable for this
// deployment's locale.
type PhoneValidator func(string) bool

var genericPhonePattern = regexp.MustCompile(`^\+?[0-9\s\-().]{8,}$`)

// DefaultPhoneValidator accepts international and national numbers of
// at least eight digits with common separators.
func DefaultPhoneValidator(phone string) bool {
	return genericPhonePattern.MatchString(strings.TrimSpace(phone))
}

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
)

// ValidDate reports whether value is YYYY-MM-DD and a real calendar
// date (2025-02-30 fails).
func ValidDate(value string) bool {
	if !datePattern.MatchString(value) {
		return false
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// ValidTime reports whether value is a 24-hour HH:MM time.
func ValidTime(value string) bool {
	return timePattern.MatchString(value)
}

// RiskLevels is the closed severity domain for risk assessments.
var RiskLevels = []string{"low", "medium", "high", "crisis"}

// ValidRiskLevel reports whether value is one of RiskLevels.
func ValidRiskLevel(value string) bool {
	for _, l := range RiskLevels {
		if value == l {
			return true
		}
	}
	return false
}

// Validate checks every required field and reports all problems in one
// pass, in declaration order. It never short-circuits: the voice agent
// should be told everything that is wrong in a single round trip.
func (s Schema) Validate(params map[string]any, phone PhoneValidator) *Error {
	if phone == nil {
		phone = DefaultPhoneValidator
	}

	var missing []Field
	var malformed []string

	for _, field := range s.Required {
		raw, ok := params[field.Name]
		if !ok || raw == nil {
			missing = append(missing, field)
			continue
		}

		if field.Format == FormatBool {
			if _, isBool := raw.(bool); !isBool {
				malformed = append(malformed, fmt.Sprintf("%s must be yes or no", field.Name))
			}
			continue
		}

		str, isStr := raw.(string)
		if isStr && strings.TrimSpace(str) == "" {
			missing = append(missing, field)
			continue
		}
		if !isStr {
			// Non-string where a formatted string is expected.
			if field.Format != FormatNone {
				malformed = append(malformed, formatHint(field))
			}
			continue
		}

		switch field.Format {
		case FormatDate:
			if !ValidDate(str) {
				malformed = append(malformed, formatHint(field))
			}
		case FormatTime:
			if !ValidTime(str) {
				malformed = append(malformed, formatHint(field))
			}
		case FormatPhone:
			if !phone(str) {
				malformed = append(malformed, formatHint(field))
			}
		case FormatRiskLevel:
			if !ValidRiskLevel(str) {
				malformed = append(malformed, formatHint(field))
			}
		}
	}

	if len(missing) == 0 && len(malformed) == 0 {
		return nil
	}

	// A single missing field with its own identity keeps its dedicated
	// code so the agent can prompt for exactly that value.
	if len(missing) == 1 && len(malformed) == 0 && missing[0].MissingCode != "" {
		content := missing[0].MissingContent
		if content == "" {
			content = fmt.Sprintf("I still need your %s to continue.", strings.ReplaceAll(missing[0].Name, "_", " "))
		}
		return NewError(KindMissingRequiredField, missing[0].MissingCode, content)
	}

	var parts []string
	if len(missing) > 0 {
		names := make([]string, len(missing))
		for i, f := range missing {
			names[i] = f.Name
		}
		parts = append(parts, "Missing required fields: "+strings.Join(names, ", ")+".")
	}
	for _, m := range malformed {
		parts = append(parts, upperFirst(m)+".")
	}

	return NewError(KindValidationFailed, "validation_failed", strings.Join(parts, " "))
}

func formatHint(field Field) string {
	switch field.Format {
	case FormatDate:
		return field.Name + " must be in YYYY-MM-DD format"
	case FormatTime:
		return field.Name + " must be a 24-hour time like 14:30"
	case FormatPhone:
		return field.Name + " doesn't look like a valid phone number"
	case FormatRiskLevel:
		return field.Name + " must be one of " + strings.Join(RiskLevels, ", ")
	default:
		return field.Name + " has an unexpected value"
	}
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
