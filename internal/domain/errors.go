package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by services, adapters and controllers.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrUpstream     = errors.New("upstream error")
	ErrTransport    = errors.New("transport error")

	// ErrEventPassed is returned when a mutation targets an event whose date is in the past.
	ErrEventPassed = errors.New("event has already passed")
	// ErrSubmissionInFlight is returned when a response is submitted while another one is pending.
	ErrSubmissionInFlight = errors.New("submission already in progress")
	// ErrSignupLoginFailed is returned when an account was created but the follow-up login failed.
	ErrSignupLoginFailed = errors.New("account created but login failed, please try logging in manually")
)

// APIError is a non-2xx response from the remote API.
type APIError struct {
	Status  int
	Message string
	Body    map[string]any
	kind    error
}

// NewAPIError builds an APIError and classifies it by HTTP status.
func NewAPIError(status int, message string, body map[string]any) *APIError {
	var kind error
	switch {
	case status == 401:
		kind = ErrUnauthorized
	case status == 404:
		kind = ErrNotFound
	case status == 409:
		kind = ErrConflict
	case status == 400 || status == 422:
		kind = ErrInvalidInput
	default:
		kind = ErrUpstream
	}
	return &APIError{Status: status, Message: message, Body: body, kind: kind}
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Unwrap lets errors.Is match the sentinel for the response status.
func (e *APIError) Unwrap() error {
	return e.kind
}

// ValidationError carries field-level messages for a rejected input.
type ValidationError struct {
	Messages []string
}

// NewValidationError returns nil when msgs is empty.
func NewValidationError(msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	return &ValidationError{Messages: msgs}
}

func (e *ValidationError) Error() string {
	if len(e.Messages) == 1 {
		return e.Messages[0]
	}
	out := e.Messages[0]
	for _, m := range e.Messages[1:] {
		out += "; " + m
	}
	return out
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// UserMessage returns the message suitable for showing to the user.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Error()
	}
	return err.Error()
}
