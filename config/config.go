// Package config centralizes static settings for the BetaHub MCP server.
package config

import (
	"os"
	"strings"
)

const (
	// DefaultBaseURL is used when BETAHUB_API_BASE is not set.
	DefaultBaseURL = "https://app.betahub.io/"

	// UserAgent identifies this server to the BetaHub API.
	UserAgent = "betahub-mcp-server/1.0"

	// ServerName and ServerVersion are reported to the MCP host.
	ServerName    = "betahub-mcp-server"
	ServerVersion = "1.0.0"

	// TokenEnvVar is the environment variable holding the API token.
	TokenEnvVar = "BETAHUB_TOKEN"

	// BaseURLEnvVar overrides the API base URL.
	BaseURLEnvVar = "BETAHUB_API_BASE"
)

// Config holds the resolved runtime settings.
type Config struct {
	BaseURL   string
	UserAgent string
}

// Load builds a Config from the environment. The base URL always carries
// a trailing slash so endpoints can be appended directly.
func Load() *Config {
	base := os.Getenv(BaseURLEnvVar)
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return &Config{
		BaseURL:   base,
		UserAgent: UserAgent,
	}
}

// APIURL resolves an endpoint against the configured base URL.
// Endpoints that are already absolute are returned unchanged.
func (c *Config) APIURL(endpoint string) string {
	if strings.HasPrefix(endpoint, "http") {
		return endpoint
	}
	return c.BaseURL + strings.TrimPrefix(endpoint, "/")
}
