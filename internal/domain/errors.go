package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Slot errors
	ErrMsgSlotNotFound = "slot not found"
	ErrMsgSlotExists   = "slot already exists"

	// Catalog errors
	ErrMsgEntryNotFound = "catalog entry not found"
	ErrMsgEntryExists   = "catalog entry already exists"

	// Input errors
	ErrMsgInvalidInput     = "invalid input"
	ErrMsgInvalidDexNumber = "dex number out of range"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Slot errors
	ErrSlotNotFound = errors.New(ErrMsgSlotNotFound)
	ErrSlotExists   = errors.New(ErrMsgSlotExists)

	// Catalog errors
	ErrEntryNotFound = errors.New(ErrMsgEntryNotFound)
	ErrEntryExists   = errors.New(ErrMsgEntryExists)

	// Input errors
	ErrInvalidInput     = errors.New(ErrMsgInvalidInput)
	ErrInvalidDexNumber = errors.New(ErrMsgInvalidDexNumber)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
