package documents

import "errors"

var (
	// ErrNotFound means no document matched the lookup.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidInput means the request was malformed.
	ErrInvalidInput = errors.New("invalid input")
)
