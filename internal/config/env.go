// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Nested sections are resolved through the `envPrefix` tags, so
// Merger.MaxDepth is read from MERGER_MAX_DEPTH and Storage.DB.DSN from
// STORAGE_DB_DATABASE_URI.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
