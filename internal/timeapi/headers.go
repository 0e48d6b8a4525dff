// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timewright

package timeapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// ExtraHeaders is the tagged variant for the three header shapes callers may
// supply alongside a request. Each concrete shape applies itself onto a base
// header set with last-write-wins semantics.
type ExtraHeaders interface {
	apply(h http.Header)
}

// HeaderSet is the canonical shape: an existing header set whose entries
// overwrite the base by key, multi-values preserved.
type HeaderSet http.Header

func (s HeaderSet) apply(h http.Header) {
	for key, values := range s {
		h.Del(key)
		for _, v := range values {
			h.Add(key, v)
		}
	}
}

// HeaderPairs is an ordered sequence of [key, value] pairs. Pairs are applied
// in order, so on a key collision the later pair wins.
type HeaderPairs [][2]string

func (p HeaderPairs) apply(h http.Header) {
	for _, pair := range p {
		h.Set(pair[0], pair[1])
	}
}

// HeaderMap is the flexible record shape. A nil value skips the entry, a
// []string value is joined with ", ", and every other value is stringified.
type HeaderMap map[string]any

func (m HeaderMap) apply(h http.Header) {
	for key, value := range m {
		s, ok := headerValueString(value)
		if !ok {
			continue
		}
		h.Set(key, s)
	}
}

func headerValueString(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case []string:
		return strings.Join(v, ", "), true
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ", "), true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		return fmt.Sprint(v), true
	}
}

// MergeHeaders builds the canonical header set for a request: a base seeded
// with "Accept: application/json", mutated by the caller-supplied extra shape
// when there is one.
func MergeHeaders(extra ExtraHeaders) http.Header {
	h := http.Header{}
	h.Set("Accept", "application/json")

	if extra != nil {
		extra.apply(h)
	}

	return h
}
