package roundrect

import "errors"

var (
	// ErrInvalidRectangle reports a rectangle with a negative or
	// non-finite size or origin.
	ErrInvalidRectangle = errors.New("invalid rectangle")

	// ErrInvalidRadius reports a negative or NaN corner radius.
	ErrInvalidRadius = errors.New("invalid corner radius")
)
