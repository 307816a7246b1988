package domain

import (
	"fmt"
	"strings"
)

// Error types for consistent error handling across the bot.

// ErrNotFound indicates a lookup key outside a command's fixed set.
// Valid lists the accepted keys in display order.
type ErrNotFound struct {
	Resource string
	ID       string
	Valid    []string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s '%s' not found. Available: %s", e.Resource, e.ID, strings.Join(e.Valid, ", "))
}

// ErrValidation indicates a validation error (bad or missing input).
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error on '%s': %s", e.Field, e.Message)
}

// ErrNotConfigured indicates a missing credential or setting.
type ErrNotConfigured struct {
	Setting string
}

func (e *ErrNotConfigured) Error() string {
	return fmt.Sprintf("%s is not configured", e.Setting)
}

// ErrExternalService indicates a failure in an external service call.
type ErrExternalService struct {
	Service string
	Err     error
}

func (e *ErrExternalService) Error() string {
	return fmt.Sprintf("external service error [%s]: %v", e.Service, e.Err)
}

func (e *ErrExternalService) Unwrap() error {
	return e.Err
}

// ErrUpstreamStatus indicates the external service answered with a
// non-success HTTP status. The response body is deliberately not kept.
type ErrUpstreamStatus struct {
	Service string
	Status  int
}

func (e *ErrUpstreamStatus) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Service, e.Status)
}

// ErrCircuitOpen indicates the circuit breaker is open.
type ErrCircuitOpen struct {
	Service string
}

func (e *ErrCircuitOpen) Error() string {
	return fmt.Sprintf("circuit breaker open for service: %s", e.Service)
}
