// Package config loads vcoctl configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
)

// Config holds CLI runtime configuration. Command-line flags override these
// values; the environment only supplies defaults.
type Config struct {
	// FQDN of the orchestrator, e.g. "vco12-example.velocloud.net".
	FQDN string
	// BaseURL overrides the https://<FQDN>/portal/rest default.
	BaseURL string
	// Token is an API token. When empty the CLI falls back to
	// username/password login.
	Token string
	// Username for password login.
	Username string
	// Profile names an entry in the profiles file to read FQDN and
	// credentials from.
	Profile string
	// ProfilesFile overrides the default profiles file location.
	ProfilesFile string

	LogLevel string
	DevMode  bool

	Timeout    time.Duration
	MaxRetries int
}

// Load reads configuration from VCOCTL_* environment variables.
func Load() Config {
	return Config{
		FQDN:         envOrDefault("VCOCTL_FQDN", ""),
		BaseURL:      envOrDefault("VCOCTL_BASE_URL", ""),
		Token:        envOrDefault("VCOCTL_TOKEN", ""),
		Username:     envOrDefault("VCOCTL_USERNAME", ""),
		Profile:      envOrDefault("VCOCTL_PROFILE", ""),
		ProfilesFile: envOrDefault("VCOCTL_PROFILES_FILE", ""),
		LogLevel:     strings.ToLower(envOrDefault("VCOCTL_LOG_LEVEL", "info")),
		DevMode:      envBool("VCOCTL_DEV_MODE", false),
		Timeout:      envPositiveDuration("VCOCTL_TIMEOUT", defaultTimeout),
		MaxRetries:   envPositiveInt("VCOCTL_MAX_RETRIES", defaultMaxRetries),
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envBool(key string, defaultVal bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}

func envPositiveInt(key string, defaultVal int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return defaultVal
	}
	return n
}

func envPositiveDuration(key string, defaultVal time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}
