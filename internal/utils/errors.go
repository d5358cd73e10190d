// Package utils provides shared helpers for the chdf5 binding.
package utils

import "fmt"

// H5Error represents a structured HDF5 error.
type H5Error struct {
	Context string
	Cause   error
}

// Error implements the error interface.
func (e *H5Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Context, e.Cause)
}

// Unwrap provides compatibility with errors.Unwrap().
func (e *H5Error) Unwrap() error {
	return e.Cause
}

// WrapError creates a contextual error.
func WrapError(context string, cause error) error {
	if cause == nil {
		return nil
	}
	return &H5Error{
		Context: context,
		Cause:   cause,
	}
}

// StatusError converts a library status code into an error. The library
// signals failure with a negative herr_t or hid_t return; a non-negative
// status yields nil.
func StatusError(context string, status int64) error {
	if status >= 0 {
		return nil
	}
	return &H5Error{
		Context: context,
		Cause:   fmt.Errorf("status %d", status),
	}
}
