package storage

import "errors"

// Common client storage errors
var (
	// ErrTokenNotFound indicates that no bearer token is stored
	ErrTokenNotFound = errors.New("token not found")

	// ErrCacheEmpty indicates that no habit snapshot has been cached yet
	ErrCacheEmpty = errors.New("habit cache is empty")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
