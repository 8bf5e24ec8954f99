package allocator

import "errors"

// Error kinds reported by the pipeline. Callers should match them with errors.Is;
// the returned errors wrap these with the violated precondition.
var (
	// ErrInvalidConfiguration is returned when the criterion selection is empty or inconsistent
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidData is returned when a selected criterion value is missing, non-numeric or non-positive
	ErrInvalidData = errors.New("invalid data")

	// ErrInvalidArgument is returned for out of range recipient counts or budgets
	ErrInvalidArgument = errors.New("invalid argument")
)
