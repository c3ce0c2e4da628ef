// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every variable read by backoffice processes.
const EnvPrefix = "TPPB_"

// ParseEnvPrefixed loads configuration whose struct tags omit EnvPrefix, so a
// field tagged HTTP_ADDR reads TPPB_HTTP_ADDR.
func ParseEnvPrefixed(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
