package ledger

import (
	"errors"
	"fmt"
)

// Sentinel kinds for ledger client errors.
var (
	ErrNotFound         = errors.New("car not found")
	ErrUnexpectedStatus = errors.New("unexpected ledger status")
	ErrTransport        = errors.New("ledger unreachable")
	ErrDecode           = errors.New("undecodable ledger response")
	ErrEncode           = errors.New("unencodable ledger request")
)

// StatusError carries the status and body excerpt of a non-2xx answer.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("status %d", e.Code)
	}
	return fmt.Sprintf("status %d: %s", e.Code, e.Body)
}

// NewKind returns an error of the given kind tagged with op.
func NewKind(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}

// WrapKind tags err with op and kind so both match errors.Is.
func WrapKind(op string, kind, err error) error {
	if err == nil {
		return NewKind(op, kind)
	}
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}
