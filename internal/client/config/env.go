package config

import (
	"github.com/caarlos0/env/v11"
)

// parseEnv overlays cfg with LOGINKEEPER_* variables. Unset variables leave
// fields untouched. Panics on malformed values.
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
