package secrandom

import "errors"

var (
	// ErrInvalidArgument is returned when a caller passes arguments that can
	// never be satisfied, such as a negative byte count. Requests failing
	// with this error must not be retried unchanged.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotSupported is returned when no entropy source is available on
	// this platform. This condition is permanent for a given build.
	ErrNotSupported = errors.New("no supported entropy source on this platform")

	// ErrIO is returned when at least one entropy source was available, but
	// every attempted source failed. The underlying source errors are
	// attached and the condition may be transient.
	ErrIO = errors.New("all available entropy sources failed")

	// ErrClosed is returned when a Buffer is used after Close.
	ErrClosed = errors.New("buffer is closed")

	// ErrOutOfRange is returned by Buffer accessors when the requested
	// element offset lies beyond the last filled length.
	ErrOutOfRange = errors.New("offset out of range")

	// ErrInsufficientData is returned by Buffer accessors when fewer
	// elements are available than requested.
	ErrInsufficientData = errors.New("insufficient data")
)
