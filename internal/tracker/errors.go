package tracker

import "errors"

var (
	// ErrUnknownNode is returned when an operation targets a node that has
	// no sync entity.
	ErrUnknownNode = errors.New("node is not tracked")
	// ErrDuplicateServerID is returned by Load when two entities share a
	// server id.
	ErrDuplicateServerID = errors.New("duplicate server id")
)
