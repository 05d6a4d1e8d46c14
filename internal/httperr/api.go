package httperr

import (
	"errors"
	"fmt"
	"net/http"
)

// User-facing messages shared by several views.
const (
	MsgSessionExpired = "Tu sesión expiró. Por favor inicia sesión nuevamente."
	MsgCouldNotLoad   = "No fue posible cargar la información. Intenta de nuevo."
)

// Kind classifies a failed call to the backend API.
type Kind string

const (
	KindTransport    Kind = "transport"
	KindUnauthorized Kind = "unauthorized"
	KindNotFound     Kind = "not_found"
	KindBusiness     Kind = "business"
)

// APIError is returned by the backend client for every non-2xx response
// and for requests that never produced a response.
type APIError struct {
	Kind    Kind
	Status  int
	Message string
	// Fields names the form fields the backend rejected, if any.
	Fields  []string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend %s (%d): %s: %v", e.Kind, e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("backend %s (%d): %s", e.Kind, e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func NewTransportError(err error) *APIError {
	return &APIError{Kind: KindTransport, Err: err}
}

// NewStatusError classifies a non-2xx status. message is the backend's own
// error text when it sent one.
func NewStatusError(status int, message string) *APIError {
	kind := KindBusiness
	switch status {
	case http.StatusUnauthorized:
		kind = KindUnauthorized
	case http.StatusNotFound:
		kind = KindNotFound
	}
	return &APIError{Kind: kind, Status: status, Message: message}
}

func kindOf(err error) Kind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

// HasField reports whether the backend rejected field.
func HasField(err error, field string) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	for _, f := range apiErr.Fields {
		if f == field {
			return true
		}
	}
	return false
}

func IsUnauthorized(err error) bool { return kindOf(err) == KindUnauthorized }
func IsNotFound(err error) bool     { return kindOf(err) == KindNotFound }
func IsTransport(err error) bool    { return kindOf(err) == KindTransport }

// MessageOr returns the backend (or business) message carried by err, or
// fallback when there is none.
func MessageOr(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	var be BusinessError
	if errors.As(err, &be) && be.Message != "" {
		return be.Message
	}
	return fallback
}
