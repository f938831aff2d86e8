package domain

import (
	"errors"
	"fmt"
)

var ErrAssistantUnavailable = errors.New("assistant unavailable")

// ValidationError names the single offending field of a rejected draft.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
