package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the rate limit for a group of endpoints. A Path ending
// in "/" matches by prefix, which covers subresources like
// /resumes/{id}/render.
type EndpointConfig struct {
	Path   string
	Method string
	// Limit is the number of requests allowed per Window. Burst is the
	// bucket capacity; zero defaults to Limit.
	Limit  int
	Window time.Duration
	Burst  int
}

// keyPath returns the bucket key component for a matched path. Prefix
// configs share one bucket per client so an ID sweep cannot multiply the
// budget.
func (ec *EndpointConfig) keyPath(path string) string {
	if ec.Path != "" {
		return ec.Path
	}
	return path
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Trusted         map[string]bool // client IDs exempt from limiting
	EndpointConfigs []EndpointConfig
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    600,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Trusted:         make(map[string]bool),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// LoadConfig loads rate limiting configuration from environment variables,
// falling back to DefaultConfig values.
func LoadConfig() *Config {
	cfg := DefaultConfig()
	cfg.Enabled = getEnvBool("RATE_LIMIT_ENABLED", cfg.Enabled)
	if !cfg.Enabled {
		return cfg
	}
	cfg.DefaultLimit = getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", cfg.DefaultLimit)
	cfg.DefaultWindow = getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", cfg.DefaultWindow)
	cfg.CleanupInterval = getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)
	cfg.Trusted = parseIPList(os.Getenv("RATE_LIMIT_TRUSTED"))
	return cfg
}

// DefaultEndpointConfigs returns the per-endpoint limits. Rendering is the
// expensive tier: PDF export starts a headless browser.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: rendering and AI (expensive)
		{Path: "/render", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/resumes/", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/letters/", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/ai/", Method: "POST", Limit: 20, Window: time.Hour, Burst: 5},

		// Tier 2: document writes
		{Path: "/resumes", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/resumes/", Method: "PUT", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/resumes/", Method: "DELETE", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/letters", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/letters/", Method: "PUT", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/letters/", Method: "DELETE", Limit: 120, Window: time.Minute, Burst: 20},

		// Tier 3: scoring (pure CPU, lenient)
		{Path: "/score", Method: "POST", Limit: 300, Window: time.Minute, Burst: 50},

		// Reads fall through to the default limit; /health is unlimited via
		// a special case in the matcher.
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
