package engine

import (
	"errors"

	"github.com/tartampluch/go-dob/internal/config"
)

// Calculation failures. All of them are user-correctable; callers match with errors.Is.
var (
	// ErrIncompleteInput means at least one of day, month or year was left blank.
	ErrIncompleteInput = errors.New(config.ErrIncompleteInput)

	// ErrInvalidDate means the triple is not a real Gregorian calendar date.
	ErrInvalidDate = errors.New(config.ErrInvalidDate)

	// ErrFutureDate means the date is real but after today.
	ErrFutureDate = errors.New(config.ErrFutureDate)

	// ErrAgeComputation should be unreachable once the checks above pass.
	ErrAgeComputation = errors.New(config.ErrAgeComputation)
)
