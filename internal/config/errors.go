package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidMergerConfigs indicates invalid merge settings
	// (for example, a non-positive depth cap).
	ErrInvalidMergerConfigs = errors.New("invalid merger configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown driver or an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative worker count).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
