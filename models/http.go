package models

// MessageResponse is the JSON body returned by the intake endpoint on
// success.
type MessageResponse struct {
	// Message is a human-readable confirmation for the submitter.
	Message string `json:"message"`
}

// ErrorResponse is the JSON body returned by the intake endpoint on any
// failure. Validation failures carry the specific rule that was violated;
// storage failures carry a generic message with the detail kept in the
// server logs only.
type ErrorResponse struct {
	// Error is a human-readable description of what was rejected.
	Error string `json:"error"`
}
