package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig indicates the source table registry is empty or
	// contains a descriptor missing required fields. Detected at startup;
	// the core refuses to serve any request.
	ErrInvalidConfig = errors.New("invalid registry configuration")

	// ErrQuerySyntax indicates the storage collaborator rejected the query
	// text. Surfaced verbatim to the caller, never retried.
	ErrQuerySyntax = errors.New("query syntax rejected")

	// ErrStorageUnavailable indicates the storage collaborator cannot be
	// reached or opened. Fatal for the request, never silently degraded.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// NotFoundError is the normal terminal outcome of an extract request that
// matched nothing. It is diagnostic, not exceptional: it records every table
// attempted, in priority order, so the caller can see where the search went.
type NotFoundError struct {
	// Key is the exact identifier searched for, if any.
	Key string

	// TitleFragment is the title fragment searched for, if any.
	TitleFragment string

	// TablesTried lists the tables consulted, in the order they were walked.
	TablesTried []string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	var what string
	switch {
	case e.Key != "" && e.TitleFragment != "":
		what = fmt.Sprintf("key %q or title %q", e.Key, e.TitleFragment)
	case e.Key != "":
		what = fmt.Sprintf("key %q", e.Key)
	default:
		what = fmt.Sprintf("title %q", e.TitleFragment)
	}
	return fmt.Sprintf("no record matching %s (searched: %s)",
		what, strings.Join(e.TablesTried, ", "))
}

// Is reports that a NotFoundError matches ErrNotFound, so callers can use
// errors.Is(err, domain.ErrNotFound) without caring about diagnostics.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
