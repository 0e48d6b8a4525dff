// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timewright

package tools

import (
	"context"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/timewright/timeapi-mcp/internal/timeapi"
)

const (
	keyConvertTimeZone = "convert_time_zone"
	keyTranslateTime   = "translate_time"
	keyDayOfWeek       = "get_day_of_week"
	keyDayOfYear       = "get_day_of_year"
)

// convertRequest is the outbound body for the conversion endpoint. The
// omitempty on DstAmbiguity implements the empty-string-means-not-provided
// sentinel: the field is dropped from the body, never sent empty.
type convertRequest struct {
	FromTimeZone string `json:"fromTimeZone"`
	DateTime     string `json:"dateTime"`
	ToTimeZone   string `json:"toTimeZone"`
	DstAmbiguity string `json:"dstAmbiguity,omitempty"`
}

type translateRequest struct {
	DateTime     string `json:"dateTime"`
	LanguageCode string `json:"languageCode"`
}

func registerConversionTools(r *Registry) {
	register(r, &mcp.Tool{
		Name:        keyConvertTimeZone,
		Description: "Convert a date-time from one IANA time zone to another.",
		Annotations: &mcp.ToolAnnotations{Title: "Convert time zone", ReadOnlyHint: true},
	}, convertTimeZone)

	register(r, &mcp.Tool{
		Name:        keyTranslateTime,
		Description: "Translate a date-time into a human-readable phrase in the given language.",
		Annotations: &mcp.ToolAnnotations{Title: "Translate time", ReadOnlyHint: true},
	}, translateTime)

	register(r, &mcp.Tool{
		Name:        keyDayOfWeek,
		Description: "Get the day of the week for a calendar date.",
		Annotations: &mcp.ToolAnnotations{Title: "Day of week", ReadOnlyHint: true},
	}, dayOfWeek)

	register(r, &mcp.Tool{
		Name:        keyDayOfYear,
		Description: "Get the day of the year (1-366) for a calendar date.",
		Annotations: &mcp.ToolAnnotations{Title: "Day of year", ReadOnlyHint: true},
	}, dayOfYear)
}

func convertTimeZone(ctx context.Context, c *timeapi.Client, in ConvertInput) (map[string]any, error) {
	src := c.URL("/api/conversion/converttimezone")
	body := convertRequest{
		FromTimeZone: in.FromTimeZone,
		DateTime:     in.DateTime,
		ToTimeZone:   in.ToTimeZone,
		DstAmbiguity: strings.TrimSpace(in.DstAmbiguity),
	}

	payload, err := c.PostJSON(ctx, keyConvertTimeZone, src, body, nil)
	if err != nil {
		return nil, err
	}
	return passThrough(payload, src), nil
}

func translateTime(ctx context.Context, c *timeapi.Client, in TranslateInput) (map[string]any, error) {
	src := c.URL("/api/conversion/translate")
	body := translateRequest{DateTime: in.DateTime, LanguageCode: in.LanguageCode}

	payload, err := c.PostJSON(ctx, keyTranslateTime, src, body, nil)
	if err != nil {
		return nil, err
	}
	return passThrough(payload, src), nil
}

func dayOfWeek(ctx context.Context, c *timeapi.Client, in DateInput) (map[string]any, error) {
	// the date rides in the path, so it is escaped here, not by BuildURL
	src := c.URL("/api/conversion/dayoftheweek/" + url.PathEscape(in.Date))

	payload, err := c.FetchJSON(ctx, keyDayOfWeek, src, nil)
	if err != nil {
		return nil, err
	}
	return normalizeDayOfWeek(payload, src), nil
}

func dayOfYear(ctx context.Context, c *timeapi.Client, in DateInput) (map[string]any, error) {
	src := c.URL("/api/conversion/dayoftheyear/" + url.PathEscape(in.Date))

	payload, err := c.FetchJSON(ctx, keyDayOfYear, src, nil)
	if err != nil {
		return nil, err
	}
	return normalizeDayOfYear(payload, src), nil
}
