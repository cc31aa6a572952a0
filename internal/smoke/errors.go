package smoke

import "errors"

// Sentinel kinds for smoke failures.
var (
	ErrUnhealthy      = errors.New("front end unhealthy")
	ErrUnexpectedView = errors.New("unexpected view")
	ErrMismatch       = errors.New("car mismatch")
)
