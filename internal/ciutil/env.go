package ciutil

import (
	"log/slog"
	"os"

	"github.com/phrazzld/bloomtrack-api/internal/redact"
)

// Environment variables read by this package.
const (
	EnvCI            = "CI"
	EnvGitHubActions = "GITHUB_ACTIONS"
	EnvGitLabCI      = "GITLAB_CI"

	EnvProjectRoot = "BLOOM_PROJECT_ROOT"

	EnvTestDBURL   = "BLOOM_TEST_DB_URL"
	EnvDatabaseURL = "DATABASE_URL"
)

// IsCI reports whether a known CI provider variable is set.
func IsCI() bool {
	return os.Getenv(EnvCI) != "" ||
		os.Getenv(EnvGitHubActions) != "" ||
		os.Getenv(EnvGitLabCI) != ""
}

// GetEnvWithFallbacks returns the first non-empty variable in envVars, or
// defaultValue. Using anything but the first name logs a warning.
func GetEnvWithFallbacks(envVars []string, defaultValue string, logger *slog.Logger) string {
	for i, envVar := range envVars {
		val := os.Getenv(envVar)
		if val == "" {
			continue
		}
		if i > 0 && logger != nil {
			logger.Warn("using fallback environment variable",
				slog.String("used_var", envVar),
				slog.String("preferred_var", envVars[0]),
				slog.String("value", redact.String(val)))
		}
		return val
	}
	return defaultValue
}

// GetTestDatabaseURL returns the Postgres URL for integration tests, or ""
// when none is configured.
func GetTestDatabaseURL(logger *slog.Logger) string {
	return GetEnvWithFallbacks([]string{EnvTestDBURL, EnvDatabaseURL}, "", logger)
}
