package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Inspect tool defaults.
	InspectLimit int
	MaxLimit     int

	// MaxInlineSize caps inline document and configuration content.
	MaxInlineSize int64

	// Repair is the default for the generate tool's component repair pass.
	Repair bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OPENAPIGEN_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("OPENAPIGEN_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("OPENAPIGEN_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("OPENAPIGEN_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:    envDuration("OPENAPIGEN_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("OPENAPIGEN_CACHE_SWEEP_INTERVAL", 60*time.Second),
		InspectLimit:       envInt("OPENAPIGEN_INSPECT_LIMIT", 100),
		MaxLimit:           envInt("OPENAPIGEN_MAX_LIMIT", 1000),
		MaxInlineSize:      int64(envInt("OPENAPIGEN_MAX_INLINE_SIZE", 10*1024*1024)),
		Repair:             envBool("OPENAPIGEN_REPAIR", true),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}
