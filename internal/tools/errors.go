package tools

import "errors"

// Kind classifies a tool failure. The voice agent only ever sees the
// Content string, but kinds let the boundary choose an HTTP status and
// let operators filter logs and metrics.
type Kind string

const (
	// KindInvalidParameters means the parameters payload could not be
	// decoded (malformed JSON string).
	KindInvalidParameters Kind = "invalid_parameters"
	// KindMissingParameters means no parameters were supplied at all.
	KindMissingParameters Kind = "missing_parameters"
	// KindMissingRequiredField means a single declared field was absent.
	KindMissingRequiredField Kind = "missing_required_field"
	// KindValidationFailed means one or more fields were absent or
	// malformed; the content names every one of them.
	KindValidationFailed Kind = "validation_failed"
	// KindToolNotFound means the requested name is not registered.
	KindToolNotFound Kind = "tool_not_found"
	// KindBookingFailed means an upstream booking collaborator failed.
	KindBookingFailed Kind = "booking_failed"
	// KindExecutionError means a handler returned a failure.
	KindExecutionError Kind = "execution_error"
	// KindExecutionException means a handler panicked; the dispatcher
	// recovered it so the caller still gets a spoken-safe envelope.
	KindExecutionException Kind = "execution_exception"
)

// Severity indicates how loudly a failure should be reported.
type Severity string

const (
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// Error is the only failure shape that crosses the dispatch boundary.
// Content must always be safe to speak to a caller.
type Error struct {
	Kind     Kind
	Code     string
	Severity Severity
	Content  string
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Content
}

// NewError builds an Error with severity derived from the kind:
// caller-input problems are warnings, everything else is an error.
func NewError(kind Kind, code, content string) *Error {
	severity := SeverityError
	switch kind {
	case KindInvalidParameters, KindMissingParameters,
		KindMissingRequiredField, KindValidationFailed, KindToolNotFound:
		severity = SeverityWarn
	}
	return &Error{Kind: kind, Code: code, Severity: severity, Content: content}
}

// spokenGenericFailure is what callers hear when a handler fails in a
// way we have no better words for.
const spokenGenericFailure = "Something went wrong. Please try again."

// AsError converts any handler error into a typed Error. Typed errors
// pass through untouched; everything else becomes an execution error
// with a generic spoken message so internal detail never reaches the
// caller.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var te *Error
	if errors.As(err, &te) {
		return te
	}
	return NewError(KindExecutionError, "execution_error", spokenGenericFailure)
}
