// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timewright

package tools

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/timewright/timeapi-mcp/internal/timeapi"
)

const keyHealthCheck = "health_check"

func registerHealthTool(r *Registry) {
	register(r, &mcp.Tool{
		Name:        keyHealthCheck,
		Description: "Check that the upstream time service is reachable and healthy.",
		Annotations: &mcp.ToolAnnotations{Title: "Health check", ReadOnlyHint: true},
	}, healthCheck)
}

// healthCheck skips the JSON decoder: the upstream health endpoint answers
// with plain text, so only transport and status classification apply.
func healthCheck(ctx context.Context, c *timeapi.Client, _ NoInput) (map[string]any, error) {
	src := c.URL("/api/health/check")

	env, err := c.Fetch(ctx, keyHealthCheck, src, nil)
	if err != nil {
		return nil, err
	}
	if err := timeapi.Classify(keyHealthCheck, env); err != nil {
		return nil, err
	}

	return map[string]any{
		"status": strings.TrimSpace(env.Body),
		"source": src,
	}, nil
}
