// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timewright

package timeapi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Param is one query-string entry. A nil value marks the parameter as absent:
// it is dropped from the built URL entirely rather than serialized as an
// empty or placeholder string.
type Param struct {
	Key   string
	Value *string
}

// String builds a present string-valued parameter.
func String(key, value string) Param {
	return Param{Key: key, Value: &value}
}

// Float builds a present numeric parameter. The value is formatted with the
// shortest representation that round-trips (no trailing zeros).
func Float(key string, value float64) Param {
	s := strconv.FormatFloat(value, 'f', -1, 64)
	return Param{Key: key, Value: &s}
}

// Bool builds a present boolean parameter ("true"/"false").
func Bool(key string, value bool) Param {
	s := strconv.FormatBool(value)
	return Param{Key: key, Value: &s}
}

// Absent builds an explicitly absent parameter. Useful when a call site wants
// to keep a fixed parameter list and blank out entries conditionally.
func Absent(key string) Param {
	return Param{Key: key}
}

// OptString builds a parameter that is absent when value is nil.
func OptString(key string, value *string) Param {
	return Param{Key: key, Value: value}
}

// BuildURL composes the target resource URL from base, path and query
// parameters. An absolute path (one carrying a scheme) is used as-is; a
// relative path is appended to base.
//
// Absent parameters are omitted. Present values are set with last-write-wins
// semantics: a later parameter with the same key replaces the earlier one,
// it is never duplicated. Anything beyond standard query encoding (such as
// escaping a date embedded in a path segment) is the caller's responsibility.
func BuildURL(base, path string, params ...Param) string {
	target := path
	if !strings.Contains(path, "://") {
		target = strings.TrimRight(base, "/") + path
	}

	values := url.Values{}
	for _, p := range params {
		if p.Value == nil {
			continue
		}
		values.Set(p.Key, *p.Value)
	}

	if len(values) == 0 {
		return target
	}
	return target + "?" + values.Encode()
}

// normalizeBaseURL validates and canonicalizes the upstream origin: a missing
// scheme defaults to https, the host must be present, and any trailing slash
// is stripped so BuildURL can join paths unambiguously.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty base url")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("base url must include scheme and host")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
