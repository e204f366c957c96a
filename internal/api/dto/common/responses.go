package common

// APIResponse is the standard wrapper for all API responses.
// The wire format is intentionally flat: {"ok":true} on success,
// {"ok":false,"error":"..."} on failure.
type APIResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// NewOKResponse creates a new successful API response
func NewOKResponse() APIResponse {
	return APIResponse{OK: true}
}

// NewErrorResponse creates a new error API response
func NewErrorResponse(message string) APIResponse {
	return APIResponse{
		OK:    false,
		Error: message,
	}
}
