package auth

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCredentials is returned by Refresh when there is no token to refresh
	ErrNoCredentials = errors.New("no stored credentials")

	// ErrInvalidCredentialsInput wraps validation failures of email/password
	ErrInvalidCredentialsInput = errors.New("invalid credentials input")
)

// StorageError reports a failure of the token storage backend
type StorageError struct {
	Err error
	Op  string
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("token storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// AuthServerError is a non-success status from an auth endpoint
type AuthServerError struct {
	Op      string
	Message string
	Status  int
}

func (e *AuthServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s rejected by server (%d): %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("%s rejected by server (%d)", e.Op, e.Status)
}

// AuthNetworkError is a transport failure while calling an auth endpoint
type AuthNetworkError struct {
	Err error
	Op  string
}

func (e *AuthNetworkError) Error() string {
	return fmt.Sprintf("%s failed: network error: %v", e.Op, e.Err)
}

func (e *AuthNetworkError) Unwrap() error {
	return e.Err
}
