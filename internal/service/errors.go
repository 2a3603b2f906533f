package service

import "errors"

var (
	ErrLeadNotFound       = errors.New("lead not found")
	ErrSubscriberNotFound = errors.New("subscriber not found")
)

// ValidationError rejects a submission before any persistence attempt.
// Message is user-facing and names the offending field(s).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalidField(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
