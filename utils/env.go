package utils

import (
	"strings"
)

// IsLocalEnv returns true if env names a local development environment.
func IsLocalEnv(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "local" || env == "localhost"
}

// IsProdEnv returns true if env names production.
func IsProdEnv(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production"
}
