// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timewright

package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/timewright/timeapi-mcp/internal/timeapi"
)

const (
	keyTimezoneByZone       = "get_timezone_by_zone"
	keyTimezoneByCoordinate = "get_timezone_by_coordinate"
	keyTimezoneByIP         = "get_timezone_by_ip"
	keyListTimezones        = "list_timezones"
)

func registerTimezoneTools(r *Registry) {
	register(r, &mcp.Tool{
		Name:        keyTimezoneByZone,
		Description: "Get time zone metadata (UTC offset, DST interval, current local time) for an IANA time zone.",
		Annotations: &mcp.ToolAnnotations{Title: "Timezone by zone", ReadOnlyHint: true},
	}, timezoneByZone)

	register(r, &mcp.Tool{
		Name:        keyTimezoneByCoordinate,
		Description: "Get time zone metadata for a geographic coordinate (latitude/longitude).",
		Annotations: &mcp.ToolAnnotations{Title: "Timezone by coordinate", ReadOnlyHint: true},
	}, timezoneByCoordinate)

	register(r, &mcp.Tool{
		Name:        keyTimezoneByIP,
		Description: "Get time zone metadata for the location of an IPv4 address.",
		Annotations: &mcp.ToolAnnotations{Title: "Timezone by IP", ReadOnlyHint: true},
	}, timezoneByIP)

	register(r, &mcp.Tool{
		Name:        keyListTimezones,
		Description: "List all available IANA time zone identifiers.",
		Annotations: &mcp.ToolAnnotations{Title: "List timezones", ReadOnlyHint: true},
	}, listTimezones)
}

func timezoneByZone(ctx context.Context, c *timeapi.Client, in ZoneInput) (map[string]any, error) {
	src := c.URL("/api/timezone/zone", timeapi.String("timeZone", in.TimeZone))

	payload, err := c.FetchJSON(ctx, keyTimezoneByZone, src, nil)
	if err != nil {
		return nil, err
	}
	return passThrough(payload, src), nil
}

func timezoneByCoordinate(ctx context.Context, c *timeapi.Client, in CoordinateInput) (map[string]any, error) {
	src := c.URL("/api/timezone/coordinate",
		timeapi.Float("latitude", in.Latitude),
		timeapi.Float("longitude", in.Longitude),
	)

	payload, err := c.FetchJSON(ctx, keyTimezoneByCoordinate, src, nil)
	if err != nil {
		return nil, err
	}
	return passThrough(payload, src), nil
}

func timezoneByIP(ctx context.Context, c *timeapi.Client, in IPInput) (map[string]any, error) {
	src := c.URL("/api/timezone/ip", timeapi.String("ipAddress", in.IPAddress))

	payload, err := c.FetchJSON(ctx, keyTimezoneByIP, src, nil)
	if err != nil {
		return nil, err
	}
	return passThrough(payload, src), nil
}

func listTimezones(ctx context.Context, c *timeapi.Client, _ NoInput) (map[string]any, error) {
	src := c.URL("/api/timezone/availabletimezones")

	payload, err := c.FetchJSON(ctx, keyListTimezones, src, nil)
	if err != nil {
		return nil, err
	}
	return normalizeList(payload, src), nil
}
