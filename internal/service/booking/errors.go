package booking

// RejectionKind classifies client-facing validation rejections. Every kind
// maps to the same non-retryable 406 at the HTTP edge; the kind exists so
// callers and tests can tell rejections apart without string matching.
type RejectionKind string

const (
	RejectBlankField           RejectionKind = "blank_field"
	RejectInvalidInterval      RejectionKind = "invalid_interval"
	RejectClosedDay            RejectionKind = "closed_day"
	RejectOutsideBusinessHours RejectionKind = "outside_business_hours"
)

type ValidationError struct {
	Kind RejectionKind
	msg  string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(kind RejectionKind, msg string) error {
	return &ValidationError{Kind: kind, msg: msg}
}
