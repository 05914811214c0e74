package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the inventory error taxonomy. Callers match with
// errors.Is and map to transport-level codes at the edge.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the operation would violate an invariant
	// (duplicate name, occupied rack slot, referenced role, ...).
	ErrConflict = errors.New("conflict")

	// ErrStaleVersion is an optimistic-lock mismatch. It matches ErrConflict
	// but, unlike other conflicts, is retryable by re-reading and reapplying.
	ErrStaleVersion = fmt.Errorf("%w: stale version", ErrConflict)
)

// NotFound builds a NotFound error for a named entity kind and key.
func NotFound(kind string, key interface{}) error {
	return fmt.Errorf("%s %v: %w", kind, key, ErrNotFound)
}

// Conflict builds a Conflict error with a reason.
func Conflict(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrConflict)...)
}

// IsNotFound reports whether err is a NotFound error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict reports whether err is a Conflict error (including stale versions).
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsStaleVersion reports whether err is an optimistic-lock mismatch.
func IsStaleVersion(err error) bool {
	return errors.Is(err, ErrStaleVersion)
}
