package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars are needed regardless of backend
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
}

// BackendEnvVars are additionally required by each stats backend
var BackendEnvVars = map[string][]string{
	StatsBackendMemory:   nil,
	StatsBackendPostgres: {"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"},
	StatsBackendRedis:    {"REDIS_ADDR"},
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	backend := strings.ToLower(getEnv("STATS_BACKEND", StatsBackendMemory))
	backendVars, ok := BackendEnvVars[backend]
	if !ok {
		return fmt.Errorf("unknown STATS_BACKEND %q", backend)
	}

	var missing []string
	for _, envVar := range append(append([]string{}, RequiredEnvVars...), backendVars...) {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables for %s backend: %s", backend, strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using example values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv("ENVIRONMENT") == "prod" && strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")) == "" {
		warnings = append(warnings, "CORS_ALLOWED_ORIGINS is unset in prod - every origin will be allowed")
	}

	return warnings, nil
}
