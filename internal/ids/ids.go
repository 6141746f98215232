// Package ids generates prefixed record identifiers. Identifiers are
// generated exactly once, at creation, and never recomputed.
package ids

import "github.com/google/uuid"

// Domain prefixes keep identifiers recognizable in logs and spoken
// confirmations.
const (
	Appointment    = "APT"
	Patient        = "PAT"
	RiskAssessment = "RISK"
	Consent        = "CONSENT"
	PrivacyCheck   = "PRIV"
	Business       = "BIZ"
)

// New returns a fresh prefixed identifier, e.g. "APT-4f6b…".
func New(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
