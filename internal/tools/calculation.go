// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timewright

package tools

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/timewright/timeapi-mcp/internal/timeapi"
)

const (
	keyIncrementCurrent = "increment_current_time"
	keyDecrementCurrent = "decrement_current_time"
	keyIncrementCustom  = "increment_custom_time"
	keyDecrementCustom  = "decrement_custom_time"
)

type currentCalcRequest struct {
	TimeZone string `json:"timeZone"`
	TimeSpan string `json:"timeSpan"`
}

type customCalcRequest struct {
	TimeZone     string `json:"timeZone"`
	DateTime     string `json:"dateTime"`
	TimeSpan     string `json:"timeSpan"`
	DstAmbiguity string `json:"dstAmbiguity,omitempty"`
}

func registerCalculationTools(r *Registry) {
	register(r, &mcp.Tool{
		Name:        keyIncrementCurrent,
		Description: "Add a d:hh:mm:ss time span to the current time of an IANA time zone.",
		Annotations: &mcp.ToolAnnotations{Title: "Increment current time", ReadOnlyHint: true},
	}, calcCurrent(keyIncrementCurrent, "/api/calculation/current/increment"))

	register(r, &mcp.Tool{
		Name:        keyDecrementCurrent,
		Description: "Subtract a d:hh:mm:ss time span from the current time of an IANA time zone.",
		Annotations: &mcp.ToolAnnotations{Title: "Decrement current time", ReadOnlyHint: true},
	}, calcCurrent(keyDecrementCurrent, "/api/calculation/current/decrement"))

	register(r, &mcp.Tool{
		Name:        keyIncrementCustom,
		Description: "Add a d:hh:mm:ss time span to a caller-supplied date-time in an IANA time zone.",
		Annotations: &mcp.ToolAnnotations{Title: "Increment custom time", ReadOnlyHint: true},
	}, calcCustom(keyIncrementCustom, "/api/calculation/custom/increment"))

	register(r, &mcp.Tool{
		Name:        keyDecrementCustom,
		Description: "Subtract a d:hh:mm:ss time span from a caller-supplied date-time in an IANA time zone.",
		Annotations: &mcp.ToolAnnotations{Title: "Decrement custom time", ReadOnlyHint: true},
	}, calcCustom(keyDecrementCustom, "/api/calculation/custom/decrement"))
}

func calcCurrent(key, path string) handlerFunc[CurrentCalcInput] {
	return func(ctx context.Context, c *timeapi.Client, in CurrentCalcInput) (map[string]any, error) {
		src := c.URL(path)
		body := currentCalcRequest{TimeZone: in.TimeZone, TimeSpan: in.TimeSpan}

		payload, err := c.PostJSON(ctx, key, src, body, nil)
		if err != nil {
			return nil, err
		}
		return passThrough(payload, src), nil
	}
}

func calcCustom(key, path string) handlerFunc[CustomCalcInput] {
	return func(ctx context.Context, c *timeapi.Client, in CustomCalcInput) (map[string]any, error) {
		src := c.URL(path)
		body := customCalcRequest{
			TimeZone:     in.TimeZone,
			DateTime:     in.DateTime,
			TimeSpan:     in.TimeSpan,
			DstAmbiguity: strings.TrimSpace(in.DstAmbiguity),
		}

		payload, err := c.PostJSON(ctx, key, src, body, nil)
		if err != nil {
			return nil, err
		}
		return passThrough(payload, src), nil
	}
}
