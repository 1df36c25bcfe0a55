package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidGUID       = errors.New("invalid guid")
	ErrPermanentGUID     = errors.New("guid reserved for a permanent folder")
	ErrInvalidParentGUID = errors.New("invalid parent guid")
	ErrInvalidKind       = errors.New("invalid bookmark kind")
	ErrInvalidURL        = errors.New("invalid bookmark url")
	ErrFolderWithURL     = errors.New("folder must not have url")
	ErrInvalidPosition   = errors.New("invalid unique position")
	ErrGUIDMismatch      = errors.New("guid does not match originator")
	ErrMissingServerID   = errors.New("missing server id")
)
