// Package config provides shared configuration utilities.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvBool parses the variable as a boolean ("1", "true", "on", "yes" and their
// opposites). Unset or unparseable values return fallback.
func GetEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "t", "true", "on", "yes", "y":
		return true
	case "0", "f", "false", "off", "no", "n":
		return false
	}
	return fallback
}

// GetEnvInt parses the variable as a base-10 integer. Unset or unparseable
// values return fallback.
func GetEnvInt(key string, fallback int64) int64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

// GetEnvLogLevel parses the variable as a log level name ("debug", "info", "warn",
// "error", "fatal"). Unset or unknown names return fallback.
func GetEnvLogLevel(key string, fallback log.Level) log.Level {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	level, err := log.ParseLevel(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return level
}
