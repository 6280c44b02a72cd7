package sync

import (
	"errors"
	"fmt"

	"github.com/iudanet/habittracker/internal/validation"
)

var (
	// ErrNotFound is returned when an operation names a habit that is not in the list
	ErrNotFound = errors.New("habit not found")

	// ErrInvalidServerID is returned when the server answers with a record whose id
	// is not a valid identifier or does not match the requested habit
	ErrInvalidServerID = errors.New("server returned an invalid habit id")

	// ErrDuplicateID is returned when a created habit has an id already in the list
	ErrDuplicateID = errors.New("server returned a duplicate habit id")

	// ErrEmptyName is returned by AddDraft when the draft name is blank
	ErrEmptyName = fmt.Errorf("%w: habit name cannot be empty", validation.ErrInvalidInput)

	// ErrClosed is returned by operations started after Close
	ErrClosed = errors.New("sync service is closed")
)
