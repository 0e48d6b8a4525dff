// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timewright

package tools

// Output normalizers. Each entrypoint reshapes its decoded payload here into
// the declared output record; every record carries the exact URL invoked
// under "source".

import "encoding/json"

// componentFields are the scalar clock fields nested under "components" by
// the current-time restructure.
var componentFields = []string{"year", "month", "day", "hour", "minute", "seconds", "milliSeconds"}

// passThrough attaches the source URL alongside the decoded payload,
// otherwise unmodified. A non-object payload is carried under "data".
func passThrough(payload any, source string) map[string]any {
	out := map[string]any{}
	if m, ok := payload.(map[string]any); ok {
		for k, v := range m {
			out[k] = v
		}
	} else if payload != nil {
		out["data"] = payload
	}
	out["source"] = source
	return out
}

// normalizeCurrentTime restructures a current-time payload: the numeric clock
// fields are nested under "components" while dateTime/date/time/dayOfWeek/
// dstActive stay top-level. fallbackZone fills "timeZone" when the upstream
// payload omits it (the coordinate and IP lookups sometimes do).
func normalizeCurrentTime(payload any, fallbackZone, source string) map[string]any {
	m, _ := payload.(map[string]any)

	components := map[string]any{}
	for _, field := range componentFields {
		if v, ok := m[field]; ok {
			components[field] = v
		}
	}

	zone := fallbackZone
	if tz, ok := m["timeZone"].(string); ok && tz != "" {
		zone = tz
	}

	return map[string]any{
		"timeZone":   zone,
		"dateTime":   m["dateTime"],
		"date":       m["date"],
		"time":       m["time"],
		"dayOfWeek":  m["dayOfWeek"],
		"dstActive":  m["dstActive"],
		"components": components,
		"source":     source,
	}
}

// normalizeDayOfYear detects the upstream response shape for the day-of-year
// lookup, whose format is not uniformly documented. The matchers run in
// strict order: a raw JSON number wins, then an object exposing the value
// under a known field name, and anything else passes through under "data".
func normalizeDayOfYear(payload any, source string) map[string]any {
	if n, ok := asNumber(payload); ok {
		return map[string]any{"dayOfYear": n, "source": source}
	}

	if m, ok := payload.(map[string]any); ok {
		for _, field := range []string{"dayOfYear", "day"} {
			if n, ok := asNumber(m[field]); ok {
				return map[string]any{"dayOfYear": n, "source": source}
			}
		}
	}

	return map[string]any{"data": payload, "source": source}
}

// normalizeDayOfWeek mirrors the shape detection for the day-of-week lookup:
// a bare string, an object with a dayOfWeek field, or a raw passthrough.
func normalizeDayOfWeek(payload any, source string) map[string]any {
	if s, ok := payload.(string); ok {
		return map[string]any{"dayOfWeek": s, "source": source}
	}

	if m, ok := payload.(map[string]any); ok {
		if s, ok := m["dayOfWeek"].(string); ok {
			return map[string]any{"dayOfWeek": s, "source": source}
		}
	}

	return map[string]any{"data": payload, "source": source}
}

// normalizeList returns a sequence payload together with its length.
func normalizeList(payload any, source string) map[string]any {
	if list, ok := payload.([]any); ok {
		return map[string]any{
			"timezones": list,
			"count":     len(list),
			"source":    source,
		}
	}
	return passThrough(payload, source)
}

// asNumber reports whether v is a decoded JSON number and returns it
// unconverted, so integers survive re-encoding unchanged.
func asNumber(v any) (any, bool) {
	switch n := v.(type) {
	case json.Number:
		return n, true
	case float64:
		return n, true
	case int:
		return n, true
	case int64:
		return n, true
	default:
		return nil, false
	}
}
