package models

import "errors"

// Failure kinds surfaced by the search pipeline. Stage errors wrap one of
// these sentinels so the HTTP boundary can map them onto status codes:
// validation and not-found failures answer 422, upstream failures 503.
var (
	// ErrValidation marks missing, out-of-range or malformed caller input.
	ErrValidation = errors.New("invalid request")
	// ErrNotFound marks a name resolution that produced no candidate.
	ErrNotFound = errors.New("no match found")
	// ErrUpstream marks an unreachable provider, a timeout, or a non-success
	// or malformed provider payload.
	ErrUpstream = errors.New("upstream service error")
)
