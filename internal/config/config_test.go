// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timewright

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── ResolvedPort ────────────────────────────────────────────────────────────

func TestResolvedPort_Numeric(t *testing.T) {
	cfg := &Config{Server: Server{Port: "8080"}}
	assert.Equal(t, 8080, cfg.ResolvedPort())
	assert.Equal(t, ":8080", cfg.HTTPAddress())
}

func TestResolvedPort_AbsentFallsBack(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, DefaultPort, cfg.ResolvedPort())
}

func TestResolvedPort_NonNumericFallsBack(t *testing.T) {
	for _, raw := range []string{"abc", "80 80", "8080x", "-1", "0", "99999"} {
		cfg := &Config{Server: Server{Port: raw}}
		assert.Equal(t, DefaultPort, cfg.ResolvedPort(), "port %q", raw)
	}
}

func TestResolvedPort_TrimsWhitespace(t *testing.T) {
	cfg := &Config{Server: Server{Port: " 9090 "}}
	assert.Equal(t, 9090, cfg.ResolvedPort())
}

// ── env ─────────────────────────────────────────────────────────────────────

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	t.Setenv("PORT", "8080")
	t.Setenv("MCP_STDIO", "true")
	t.Setenv("UPSTREAM_BASE_URL", "https://upstream.example")
	t.Setenv("UPSTREAM_REQUEST_TIMEOUT", "30s")
	t.Setenv("CONFIG", "/path/to/config.json")

	// Act
	cfg := &Config{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.Server.Stdio)
	assert.Equal(t, "https://upstream.example", cfg.Upstream.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Upstream.RequestTimeout)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
}

func TestParseEnv_PartialFields(t *testing.T) {
	t.Setenv("PORT", "3001")
	os.Unsetenv("UPSTREAM_BASE_URL")

	cfg := &Config{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "3001", cfg.Server.Port)
	assert.Empty(t, cfg.Upstream.BaseURL)
}

// ── flags ───────────────────────────────────────────────────────────────────

func TestParseFlags_AllFlags(t *testing.T) {
	cfg := parseFlags([]string{
		"-p", "9000",
		"-base-url", "https://upstream.example",
		"-request-timeout", "15s",
		"-stdio",
		"-c", "/tmp/cfg.json",
	})

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.True(t, cfg.Server.Stdio)
	assert.Equal(t, "https://upstream.example", cfg.Upstream.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Upstream.RequestTimeout)
	assert.Equal(t, "/tmp/cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg := parseFlags([]string{"-config", "/tmp/other.json"})
	assert.Equal(t, "/tmp/other.json", cfg.JSONFilePath)
}

func TestParseFlags_Defaults(t *testing.T) {
	cfg := parseFlags(nil)

	assert.Empty(t, cfg.Server.Port)
	assert.False(t, cfg.Server.Stdio)
	assert.Zero(t, cfg.Upstream.RequestTimeout)
}

// ── json ────────────────────────────────────────────────────────────────────

func TestParseJSON_DurationString(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server": {"port": "8088", "stdio": true},
		"upstream": {"base_url": "https://upstream.example", "request_timeout": "45s"}
	}`), 0o600))

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "8088", cfg.Server.Port)
	assert.True(t, cfg.Server.Stdio)
	assert.Equal(t, "https://upstream.example", cfg.Upstream.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.Upstream.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/cfg.json")
	require.Error(t, err)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"upstream": {"request_timeout": "soon"}}`), 0o600))

	_, err := parseJSON(path)
	require.Error(t, err)
}

// ── builder ─────────────────────────────────────────────────────────────────

func TestBuild_EarlierSourceWinsOnCollision(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&Config{Server: Server{Port: "8080"}},
		&Config{Server: Server{Port: "9090"}, Upstream: Upstream{BaseURL: "https://upstream.example"}},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "https://upstream.example", cfg.Upstream.BaseURL)
}

func TestBuild_NormalizesDefaultBaseURL(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.Upstream.BaseURL)
}

func TestBuild_RejectsNegativeTimeout(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &Config{Upstream: Upstream{RequestTimeout: -time.Second}})

	_, err := b.build()

	assert.ErrorIs(t, err, ErrInvalidUpstreamConfig)
}

func TestWithJSON_PathDiscoveredFromEarlierSources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"upstream": {"base_url": "https://json.example"}}`), 0o600))

	b := newConfigBuilder()
	b.configs = append(b.configs, &Config{JSONFilePath: path})
	cfg, err := b.withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, "https://json.example", cfg.Upstream.BaseURL)
}
