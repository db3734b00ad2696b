package util

import "errors"

// Sentinel errors for failure modes that don't need structured context.
var (
	// ErrNotFound indicates a required resource was not found.
	ErrNotFound = errors.New("not found")

	// ErrPermission indicates a permission error.
	ErrPermission = errors.New("permission denied")
)
</content>
