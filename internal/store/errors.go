package store

import "errors"

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when an insert violates a uniqueness rule, such as
// a taken email, a duplicate employee badge number, or a second attendance
// record for the same employee and day.
var ErrConflict = errors.New("conflict")
