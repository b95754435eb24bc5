// Package config loads server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/joeshaw/envdecode"
)

// Config is the process configuration.
type Config struct {
	// Addr is the HTTP listen address. ENV: SLIDES_MCP_ADDR
	Addr string `env:"SLIDES_MCP_ADDR,default=:8080"`
	// PublicURL is the externally reachable base URL used when building
	// hand-off links. Optional in HTTP mode (the request's own host is used
	// then), required in stdio mode. ENV: SLIDES_MCP_PUBLIC_URL
	PublicURL string `env:"SLIDES_MCP_PUBLIC_URL"`
	// Stdio selects the stdio transport instead of the HTTP server.
	// ENV: SLIDES_MCP_STDIO
	Stdio bool `env:"SLIDES_MCP_STDIO,default=false"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode environment: %w", err)
	}
	return &cfg, nil
}

// BaseURL parses PublicURL. It returns (nil, nil) when no public URL is
// configured.
func (c *Config) BaseURL() (*url.URL, error) {
	if c.PublicURL == "" {
		return nil, nil
	}
	u, err := url.Parse(c.PublicURL)
	if err != nil {
		return nil, fmt.Errorf("invalid SLIDES_MCP_PUBLIC_URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid SLIDES_MCP_PUBLIC_URL %q: must be absolute", c.PublicURL)
	}
	return u, nil
}
