package web

import "errors"

// Sentinel kinds for view errors.
var (
	ErrRender = errors.New("view render failed")
	ErrPanic  = errors.New("handler panicked")
)
