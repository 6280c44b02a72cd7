package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when a request was rejected with 401 and
	// the session could not be refreshed, or the retry was rejected again
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidRequest is returned when a request URL cannot be built
	ErrInvalidRequest = errors.New("invalid request")
)

// ServerError is a non-success HTTP status other than a recoverable 401
type ServerError struct {
	Op      string // Op операция клиента, например "update habit"
	Message string // Message текст ошибки из тела ответа, если сервер его прислал
	Status  int    // Status HTTP статус ответа
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: server error (%d): %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: server error (%d)", e.Op, e.Status)
}

// NetworkError wraps a transport-level failure (connection, timeout, cancellation)
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodingError wraps a failure to decode a success response body
type DecodingError struct {
	Err error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}
