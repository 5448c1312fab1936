package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a missing or invalid authentication session.
var ErrUnauthorized = errors.New("unauthorized")

// ErrConflict indicates that a mutation violates an entity invariant
// (room capacity exceeded, student already housed, bad workflow transition).
var ErrConflict = errors.New("conflict with current state")
