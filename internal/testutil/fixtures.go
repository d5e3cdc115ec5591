// Package testutil provides shared testing utilities and helpers.
package testutil

import (
	"io"
	"log/slog"

	"github.com/landscapectl/landscapectl/internal/config"
)

// SilentLogger returns a logger that discards all output, for tests that
// exercise code paths with debug logging.
func SilentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewTestConfig builds a config pointing at the given endpoint with dummy
// credentials, the common starting point for client tests.
func NewTestConfig(endpoint string) *config.Config {
	return &config.Config{
		APIURI:    endpoint,
		APIKey:    "test-access-key",
		APISecret: "test-secret-key",
	}
}
