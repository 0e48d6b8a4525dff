// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timewright

package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/timewright/timeapi-mcp/internal/timeapi"
)

const (
	keyCurrentTimeByZone       = "get_current_time_by_zone"
	keyCurrentTimeByCoordinate = "get_current_time_by_coordinate"
	keyCurrentTimeByIP         = "get_current_time_by_ip"
)

func registerTimeTools(r *Registry) {
	register(r, &mcp.Tool{
		Name:        keyCurrentTimeByZone,
		Description: "Get the current time in an IANA time zone, broken into date, time, day of week, DST flag and numeric components.",
		Annotations: &mcp.ToolAnnotations{Title: "Current time by zone", ReadOnlyHint: true},
	}, currentTimeByZone)

	register(r, &mcp.Tool{
		Name:        keyCurrentTimeByCoordinate,
		Description: "Get the current time at a geographic coordinate (latitude/longitude).",
		Annotations: &mcp.ToolAnnotations{Title: "Current time by coordinate", ReadOnlyHint: true},
	}, currentTimeByCoordinate)

	register(r, &mcp.Tool{
		Name:        keyCurrentTimeByIP,
		Description: "Get the current time at the location of an IPv4 address.",
		Annotations: &mcp.ToolAnnotations{Title: "Current time by IP", ReadOnlyHint: true},
	}, currentTimeByIP)
}

func currentTimeByZone(ctx context.Context, c *timeapi.Client, in ZoneInput) (map[string]any, error) {
	src := c.URL("/api/time/current/zone", timeapi.String("timeZone", in.TimeZone))

	payload, err := c.FetchJSON(ctx, keyCurrentTimeByZone, src, nil)
	if err != nil {
		return nil, err
	}
	return normalizeCurrentTime(payload, in.TimeZone, src), nil
}

func currentTimeByCoordinate(ctx context.Context, c *timeapi.Client, in CoordinateInput) (map[string]any, error) {
	src := c.URL("/api/time/current/coordinate",
		timeapi.Float("latitude", in.Latitude),
		timeapi.Float("longitude", in.Longitude),
	)

	payload, err := c.FetchJSON(ctx, keyCurrentTimeByCoordinate, src, nil)
	if err != nil {
		return nil, err
	}
	return normalizeCurrentTime(payload, "", src), nil
}

func currentTimeByIP(ctx context.Context, c *timeapi.Client, in IPInput) (map[string]any, error) {
	src := c.URL("/api/time/current/ip", timeapi.String("ipAddress", in.IPAddress))

	payload, err := c.FetchJSON(ctx, keyCurrentTimeByIP, src, nil)
	if err != nil {
		return nil, err
	}
	return normalizeCurrentTime(payload, "", src), nil
}
