// Package domain defines core types and errors for the inventory viewer.
package domain

import (
	"errors"
	"fmt"
)

// ErrNoSession is returned by session stores when the request carries no
// usable session.
var ErrNoSession = errors.New("no session")

// ValidationError indicates invalid input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// UpstreamError indicates an external service (identity provider or inventory
// source) answered with something other than a usable payload.
type UpstreamError struct {
	Service    string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Service, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Service, e.Message)
}

// ErrValidation creates a ValidationError with a formatted message.
func ErrValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ErrUpstream creates an UpstreamError with a formatted message.
func ErrUpstream(service string, status int, format string, args ...interface{}) *UpstreamError {
	return &UpstreamError{Service: service, StatusCode: status, Message: fmt.Sprintf(format, args...)}
}
