package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrNotFound   = errors.New("car not found")
	ErrExists     = errors.New("car already exists")
	ErrInvalidKey = errors.New("invalid car number")
)
