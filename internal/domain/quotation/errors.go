package quotation

import "errors"

var (
	// ErrInvalidInput indicates invalid quotation input.
	ErrInvalidInput = errors.New("invalid quotation input")
)
