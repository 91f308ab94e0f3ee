package model

import "errors"

// Error taxonomy of the dashboard session. Every failure of a user action is
// classified as exactly one of these and recovered at the use-case boundary.
var (
	// ErrEmptyQuery is returned for empty or whitespace-only search input,
	// before any network call is made.
	ErrEmptyQuery = errors.New("empty query")

	// ErrNotFound is returned when geocoding yields no match for the query.
	ErrNotFound = errors.New("location not found")

	// ErrInvalidCoordinates is returned for device coordinates outside the
	// valid latitude/longitude ranges, before any network call is made.
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	// ErrTransport is returned for any network-level failure against an
	// upstream service.
	ErrTransport = errors.New("transport failure")

	// ErrInvalidPayload is returned when the forecast response is missing
	// required sections.
	ErrInvalidPayload = errors.New("invalid forecast payload")
)
