package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity or saved collection
	// doesn't exist
	ErrNotFound = errors.New("not found")
)
