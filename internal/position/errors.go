package position

import "errors"

var (
	// ErrInvalidPosition is returned when an input position has a malformed key.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrPositionsOutOfOrder is returned by Between when lo is not strictly
	// less than hi.
	ErrPositionsOutOfOrder = errors.New("positions are out of order")
)
