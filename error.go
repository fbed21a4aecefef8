/*
openai implements a typed client for the OpenAI HTTP API.
https://platform.openai.com/docs/api-reference

This package defines the error kinds shared by the transport, the upload
encoder and the endpoint facades. Every failed call returns exactly one of
them, which can be tested with errors.Is.
*/
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrConfig
	ErrTransport
	ErrAPI
	ErrDecode
	ErrEncode
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Errors
type Err int

// APIError is returned when the server responds with a non-2xx status.
// It unwraps to ErrAPI.
type APIError struct {
	StatusCode int    `json:"-"`
	RequestID  string `json:"-"`
	Message    string `json:"message"`
	Type       string `json:"type,omitempty"`
	Param      string `json:"param,omitempty"`
	Code       string `json:"code,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrConfig:
		return "configuration error"
	case ErrTransport:
		return "transport error"
	case ErrAPI:
		return "api error"
	case ErrDecode:
		return "decode error"
	case ErrEncode:
		return "encode error"
	}
	return fmt.Sprintf("error code %d", int(e))
}

func (e Err) With(args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

func (e Err) Withf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}

// Wrap returns an error of this kind which also unwraps to err, so
// both errors.Is(result, e) and errors.Is(result, err) hold.
func (e Err) Wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", e, err)
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.StatusCode == 0 {
		return fmt.Sprintf("%v: %s", ErrAPI, msg)
	}
	return fmt.Sprintf("%v: %d %s", ErrAPI, e.StatusCode, msg)
}

func (e *APIError) Unwrap() error {
	return ErrAPI
}

// Retryable reports whether the status suggests the call may succeed later:
// request timeout, conflict, rate limiting and server faults.
func (e *APIError) Retryable() bool {
	switch {
	case e.StatusCode == http.StatusRequestTimeout:
		return true
	case e.StatusCode == http.StatusConflict:
		return true
	case e.StatusCode == http.StatusTooManyRequests:
		return true
	case e.StatusCode >= http.StatusInternalServerError:
		return true
	}
	return false
}

// IsRetryable reports whether a caller could sensibly retry the call which
// returned err. The client itself never retries.
func IsRetryable(err error) bool {
	var apiErr *APIError
	switch {
	case err == nil:
		return false
	case errors.As(err, &apiErr):
		return apiErr.Retryable()
	case errors.Is(err, context.Canceled):
		return false
	case errors.Is(err, ErrTransport):
		return true
	}
	return false
}
