package project

import "errors"

var (
	// ErrNotFound indicates the project doesn't exist.
	ErrNotFound = errors.New("project not found")
	// ErrInvalidInput indicates invalid project input.
	ErrInvalidInput = errors.New("invalid project input")
	// ErrAlreadyClosed indicates a closure attempt on a closed project.
	ErrAlreadyClosed = errors.New("project already closed")
	// ErrMissingReason indicates a closure attempt without a reason.
	ErrMissingReason = errors.New("closure reason required")
)
