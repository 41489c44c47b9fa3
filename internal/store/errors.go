package store

import "errors"

// Every operation fails with exactly one of these. They are caller-input
// problems, never transient faults, so no retry logic exists anywhere.
var (
	// ErrNotFound means no complaint with the requested id exists.
	ErrNotFound = errors.New("complaint not found")

	// ErrInvalidTransition means the requested status change is not a legal
	// edge of the complaint state machine.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrMissingRemarks means a transition into Resolved or Rejected was
	// attempted without non-blank admin remarks.
	ErrMissingRemarks = errors.New("admin remarks are required")

	// ErrInvalidCriteria means a filter or creation input was malformed.
	ErrInvalidCriteria = errors.New("invalid criteria")
)
