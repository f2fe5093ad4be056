package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Plan errors
	ErrMsgPlanNotFound = "week plan not found"
	ErrMsgPartialMove  = "move partially applied"

	// Recipe errors
	ErrMsgRecipeNotFound = "recipe not found"

	// Reference errors
	ErrMsgInvalidReference = "invalid reference"
	ErrMsgInvalidDayIndex  = "day index out of range"
	ErrMsgInvalidDate      = "invalid date"
	ErrMsgInvalidUnit      = "invalid unit"

	// Database/System errors
	ErrMsgStorage = "storage failure"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Plan errors
	ErrPlanNotFound = errors.New(ErrMsgPlanNotFound)

	// ErrPartialMove signals that a cross-week move persisted one side
	// but failed on the other. The wrapping error names the side that
	// was written so the caller can decide whether to retry the rest.
	ErrPartialMove = errors.New(ErrMsgPartialMove)

	// Recipe errors
	ErrRecipeNotFound = errors.New(ErrMsgRecipeNotFound)

	// Reference errors
	ErrInvalidReference = errors.New(ErrMsgInvalidReference)

	// Unit errors
	ErrInvalidUnit = errors.New(ErrMsgInvalidUnit)

	// Storage errors
	ErrStorage = errors.New(ErrMsgStorage)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
