package testutil

import (
	"os"
	"strconv"
	"testing"
)

// GetEnvOrSkip returns the value of the environment variable. If not set, skip the test.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("Environment variable %s is not set, skipping test", key)
	}
	return value
}

// GetEnvInt64OrSkip is GetEnvOrSkip for numeric IDs such as a GitHub App ID. A value that is not a number fails the test.
func GetEnvInt64OrSkip(t *testing.T, key string) int64 {
	t.Helper()
	raw := GetEnvOrSkip(t, key)
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		t.Fatalf("Environment variable %s must be an integer: %q", key, raw)
	}
	return value
}
