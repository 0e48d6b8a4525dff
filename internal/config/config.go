// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timewright

package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultPort is the listen port used when PORT is absent or not a
	// usable number.
	DefaultPort = 3000

	// DefaultBaseURL is the upstream origin used when none is configured.
	DefaultBaseURL = "https://timeapi.io"
)

// Config is the top-level configuration container for timeapi-mcp. It is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type Config struct {
	// Server holds the settings of the hosting shell (listen port, stdio
	// transport switch).
	Server Server

	// Upstream holds the outbound connection settings for the time service.
	Upstream Upstream `envPrefix:"UPSTREAM_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds the inbound settings of the hosting shell.
type Server struct {
	// Port is the raw PORT value. It is kept as a string so that an absent
	// or non-numeric value can fall back to [DefaultPort] instead of
	// failing the whole load; resolve it with [Config.ResolvedPort].
	// Env: PORT
	Port string `env:"PORT"`

	// Stdio switches the server from HTTP hosting to the MCP stdio
	// transport.
	// Env: MCP_STDIO
	Stdio bool `env:"MCP_STDIO"`
}

// Upstream holds the outbound connection settings for the time service.
type Upstream struct {
	// BaseURL is the upstream origin (e.g. "https://timeapi.io").
	// Env: UPSTREAM_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single outbound call. Zero means no
	// client-side timeout, matching the upstream client's default.
	// Env: UPSTREAM_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ResolvedPort returns the numeric listen port, falling back to
// [DefaultPort] when PORT is absent, non-numeric, or out of range.
func (cfg *Config) ResolvedPort() int {
	port, err := strconv.Atoi(strings.TrimSpace(cfg.Server.Port))
	if err != nil || port <= 0 || port > 65535 {
		return DefaultPort
	}
	return port
}

// HTTPAddress returns the listen address derived from the resolved port.
func (cfg *Config) HTTPAddress() string {
	return fmt.Sprintf(":%d", cfg.ResolvedPort())
}

// normalize fills in defaults the merge left empty.
func (cfg *Config) normalize() {
	if strings.TrimSpace(cfg.Upstream.BaseURL) == "" {
		cfg.Upstream.BaseURL = DefaultBaseURL
	}
}

// validate checks that the final merged [Config] satisfies all invariants
// before it is used at startup.
func (cfg *Config) validate() error {
	if cfg.Upstream.RequestTimeout < 0 {
		return ErrInvalidUpstreamConfig
	}
	return nil
}

// GetConfig loads, merges, normalizes and validates the application
// configuration from all sources.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
