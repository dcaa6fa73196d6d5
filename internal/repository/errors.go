// Package repository defines error types that are reused across the
// train registry and the seat inventory manager. These sentinel values
// allow the view layer to distinguish failure scenarios and pick a
// response status without parsing error text. For example,
// ErrDuplicateTrain maps to a conflict response while
// ErrTrainNotFound maps to not-found.
package repository

import "errors"

// ErrValidation is returned when a required field is empty or a train
// number fails the identifier format. Handlers should translate this
// into an HTTP 400 response.
var ErrValidation = errors.New("validation failed")

// ErrDuplicateTrain is returned when creating a train whose number is
// already registered. Handlers should translate this into an HTTP 409
// response.
var ErrDuplicateTrain = errors.New("train already exists")

// ErrTrainNotFound is returned when a train lookup yields no rows.
var ErrTrainNotFound = errors.New("train not found")

// ErrDateMismatch is returned when the departure date supplied to a
// delete does not equal the stored one. The date acts as a weak
// confirmation check, not a versioning mechanism.
var ErrDateMismatch = errors.New("departure date does not match the stored record")

// ErrSeatNotFound is returned when a seat number is outside the seeded
// range of a train's inventory.
var ErrSeatNotFound = errors.New("seat not found")

// ErrNoAvailableSeat is returned when no unbooked seat of the requested
// type remains on a train.
var ErrNoAvailableSeat = errors.New("no available seat of the requested type")
