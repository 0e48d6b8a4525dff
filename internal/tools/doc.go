// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timewright

// Package tools defines the callable entrypoints of timeapi-mcp.
//
// Each entrypoint binds an MCP tool descriptor (name, description, input
// schema) to a handler that validates its input, drives the timeapi pipeline
// and reshapes the decoded payload into the entrypoint's declared output.
// Registration goes through [Registry], which records every key in order for
// the startup summary before delegating to the MCP server.
//
// Handlers are plain functions over (*timeapi.Client, input) so they can be
// unit-tested without any MCP plumbing.
package tools
