package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrorKind classifies why a board API request failed.
// The flow controller only distinguishes success from failure; the kind
// drives the human-readable text shown to the user.
type ErrorKind int

const (
	KindNetwork ErrorKind = iota
	KindUnauthorized
	KindDecode
	KindServer
	KindCanceled
)

// String returns a short label for the kind
func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindUnauthorized:
		return "unauthorized"
	case KindDecode:
		return "decode"
	case KindServer:
		return "server"
	case KindCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Sentinel errors matched with errors.Is against a *FetchError
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNetwork      = errors.New("network unavailable")
	ErrDecode       = errors.New("malformed response")
	ErrServer       = errors.New("server error")
	ErrCanceled     = errors.New("request canceled")

	ErrResponseTooLarge = errors.New("response body too large")
)

// FetchError is a classified board API failure.
type FetchError struct {
	Kind    ErrorKind
	Message string
	Hint    string
	Status  int   // HTTP status, 0 when no response was received
	Err     error // underlying cause, may be nil
}

// Error implements the error interface. The result is shown to the user verbatim.
func (e *FetchError) Error() string {
	if e.Hint != "" {
		return e.Message + ". " + e.Hint
	}
	return e.Message
}

// Unwrap exposes the underlying cause
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match a FetchError against the kind sentinels
func (e *FetchError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Kind == KindUnauthorized
	case ErrNetwork:
		return e.Kind == KindNetwork
	case ErrDecode:
		return e.Kind == KindDecode
	case ErrServer:
		return e.Kind == KindServer
	case ErrCanceled:
		return e.Kind == KindCanceled
	}
	return false
}

// Classify maps a transport or decode error to a *FetchError.
// An error that already is a *FetchError is returned unchanged.
func Classify(err error) *FetchError {
	if err == nil {
		return nil
	}

	var fe *FetchError
	if errors.As(err, &fe) {
		return fe
	}

	if errors.Is(err, context.Canceled) {
		return &FetchError{
			Kind:    KindCanceled,
			Message: "Request canceled",
			Err:     err,
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &FetchError{
			Kind:    KindNetwork,
			Message: "Request timed out",
			Hint:    "Check your connection and retry",
			Err:     err,
		}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return &FetchError{
			Kind:    KindDecode,
			Message: "The server sent data the app could not read",
			Err:     err,
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return &FetchError{
			Kind:    KindNetwork,
			Message: "Could not reach the board server",
			Hint:    "Check your connection and retry",
			Err:     err,
		}
	}

	return &FetchError{
		Kind:    KindNetwork,
		Message: "Request failed",
		Err:     err,
	}
}

// statusError classifies a non-2xx response
func statusError(status int, body string) *FetchError {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &FetchError{
			Kind:    KindUnauthorized,
			Message: "Your session is not authorized",
			Hint:    "Sign out and sign in again",
			Status:  status,
		}
	case status >= 500:
		return &FetchError{
			Kind:    KindServer,
			Message: fmt.Sprintf("Server error (%d)", status),
			Hint:    "Try again in a moment",
			Status:  status,
			Err:     bodyError(body),
		}
	default:
		return &FetchError{
			Kind:    KindServer,
			Message: fmt.Sprintf("Unexpected response (%d)", status),
			Status:  status,
			Err:     bodyError(body),
		}
	}
}

func bodyError(body string) error {
	if body == "" {
		return nil
	}
	return errors.New(body)
}
