package config

import (
	"github.com/caarlos0/env/v11"
)

// parseEnv overlays Config with values from NOTEKEEPER_-prefixed environment
// variables (NOTEKEEPER_DATABASE_DSN, NOTEKEEPER_LOG_LEVEL). Unset variables
// leave the current values untouched. Parse errors panic, matching the other
// config stages.
func parseEnv(cfg *Config) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "NOTEKEEPER_"}); err != nil {
		panic(err)
	}
}
