package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("country not found")
	ErrNoSelection     = errors.New("no country selected")
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidCriteria = errors.New("invalid criteria")
)

// StatusError is returned when the countries API answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.Code)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}
