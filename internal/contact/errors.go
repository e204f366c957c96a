package contact

import "net/http"

// FailureKind identifies which guard check rejected a submission
type FailureKind string

const (
	KindBotBlocked           FailureKind = "BOT_BLOCKED"
	KindSubmissionValidation FailureKind = "SUBMISSION_VALIDATION_FAILED"
	KindTooManySubmissions   FailureKind = "TOO_MANY_SUBMISSIONS"
	KindAllFieldsRequired    FailureKind = "ALL_FIELDS_REQUIRED"
	KindInvalidNameLength    FailureKind = "INVALID_NAME_LENGTH"
	KindInvalidMessageLength FailureKind = "INVALID_MESSAGE_LENGTH"
	KindSpamBlocked          FailureKind = "SPAM_BLOCKED"
	KindInvalidEmail         FailureKind = "INVALID_EMAIL"
)

// Failure carries the single reason a submission was rejected. Only the first
// failing check produces one; later checks never run.
type Failure struct {
	Kind    FailureKind
	Message string
	Status  int
}

// statusFor maps a failure kind to its HTTP status code
func statusFor(kind FailureKind) int {
	switch kind {
	case KindBotBlocked:
		return http.StatusForbidden
	case KindTooManySubmissions:
		return http.StatusTooManyRequests
	default:
		return http.StatusBadRequest
	}
}
