package contact

// ContactRequest represents a contact form submission.
//
// The fields carry json tags only: the submission guard applies its checks in
// a fixed order and reports exactly one failure, which declarative binding
// validation cannot express. Company is a honeypot field and FormStartedAt is
// the client-reported epoch-millisecond timestamp of when the form was
// rendered; a nil value means the client never sent one.
type ContactRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Message       string `json:"message"`
	Company       string `json:"company"`
	FormStartedAt *int64 `json:"formStartedAt"`
}
