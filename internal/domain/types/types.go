// Package types contains result types shared by the service and the views.
package types

import (
	"errors"

	"github.com/okian/fabcar-web/internal/domain/model"
)

var errRejected = errors.New("submission rejected")

// Lookup is the outcome of a single-car query whose failure is not an error
// for the caller: either a car was found or nothing is shown.
type Lookup struct {
	car   model.Car
	found bool
	cause error
}

// Found wraps a car returned by the ledger.
func Found(car model.Car) Lookup {
	return Lookup{car: car, found: true}
}

// Absent records that no car could be shown, and why.
func Absent(cause error) Lookup {
	return Lookup{cause: cause}
}

// Car returns the car and whether it was found.
func (l Lookup) Car() (model.Car, bool) {
	return l.car, l.found
}

// Cars returns the list to render: one car when found, none otherwise.
func (l Lookup) Cars() []model.Car {
	if !l.found {
		return []model.Car{}
	}
	return []model.Car{l.car}
}

// Cause is the failure behind an absent lookup, nil when found.
func (l Lookup) Cause() error {
	return l.cause
}

// Submission is the outcome of a write whose result the browser never sees.
type Submission struct {
	carNumber string
	cause     error
}

// Accepted records a write the ledger took.
func Accepted(carNumber string) Submission {
	return Submission{carNumber: carNumber}
}

// Rejected records a write that failed.
func Rejected(carNumber string, cause error) Submission {
	if cause == nil {
		cause = errRejected
	}
	return Submission{carNumber: carNumber, cause: cause}
}

// CarNumber is the submitted identifier, set in both variants.
func (s Submission) CarNumber() string {
	return s.carNumber
}

// OK reports whether the ledger accepted the write.
func (s Submission) OK() bool {
	return s.cause == nil
}

// Cause is the failure behind a rejected submission.
func (s Submission) Cause() error {
	return s.cause
}
