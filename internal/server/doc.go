// Package server is the thin hosting shell around the MCP tool server: a
// chi-routed HTTP server exposing the streamable MCP endpoint and a liveness
// probe, with signal-aware graceful shutdown.
package server
