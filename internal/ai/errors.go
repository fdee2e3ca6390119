package ai

import "fmt"

// UnavailableError indicates the AI backend is not configured. Handlers map
// it to a 503 rather than a 500.
type UnavailableError struct {
	Reason string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("ai unavailable: %s", e.Reason)
}

// GenerationError represents a failed generation request.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
