package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidInstant is returned when a raw instant cannot be normalized
	ErrInvalidInstant = errors.New("domain: invalid instant")

	// ErrInvalidTransition is returned when an action is not allowed from the current status
	ErrInvalidTransition = errors.New("domain: invalid status transition")

	// ErrInvalidInput is the root of all field validation failures
	ErrInvalidInput = errors.New("domain: invalid input")
)

// ValidationError collects per-field validation messages.
// The first message recorded for a field wins.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates an empty validation error
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a message for field unless one is already present
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; ok {
		return
	}
	e.Fields[field] = message
}

// Has reports whether field already failed
func (e *ValidationError) Has(field string) bool {
	_, ok := e.Fields[field]
	return ok
}

// ErrOrNil returns e when at least one field failed, nil otherwise
func (e *ValidationError) ErrOrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
