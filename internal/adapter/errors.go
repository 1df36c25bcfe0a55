package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

var (
	// ErrInvalidAddress is returned for an empty or malformed base URL.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrDecodingUpdates is returned when an update list is not a valid
	// updates envelope.
	ErrDecodingUpdates = errors.New("error decoding remote updates")

	// ErrReadingUpdates is returned when the updates file cannot be read.
	ErrReadingUpdates = errors.New("error reading updates file")

	// ErrInvalidPageURL is returned when a favicon is requested for a URL
	// without scheme or host.
	ErrInvalidPageURL = errors.New("invalid page url")

	// ErrEmptyFavicon is returned when the server answers with an empty icon.
	ErrEmptyFavicon = errors.New("empty favicon")
)
