package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path; a trailing "/" matches by prefix
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window; zero means unlimited
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// key groups prefix-matched paths into one bucket.
func (e *EndpointConfig) key(path string) string {
	if e.Path != "" {
		return e.Path
	}
	return path
}

// LoadConfig loads rate limiting configuration from environment variables.
// RATE_LIMIT_ANALYZE_LIMIT and RATE_LIMIT_ANALYZE_WINDOW tune POST /analyze.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 600),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		IdleTTL:         getEnvDuration("RATE_LIMIT_IDLE_TTL", time.Hour),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(
			getEnvInt("RATE_LIMIT_ANALYZE_LIMIT", 30),
			getEnvDuration("RATE_LIMIT_ANALYZE_WINDOW", time.Minute),
		),
	}
}

// DefaultEndpointConfigs returns the endpoint-specific limits. Uploads are
// parsed and analyzed synchronously, so POST /analyze gets the strictest limit.
func DefaultEndpointConfigs(analyzeLimit int, analyzeWindow time.Duration) []EndpointConfig {
	return []EndpointConfig{
		{Path: "/analyze", Method: "POST", Limit: analyzeLimit, Window: analyzeWindow, Burst: max(1, analyzeLimit/5)},
		{Path: "/taxonomy", Method: "GET", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/health", Method: "GET", Limit: 0},
	}
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
