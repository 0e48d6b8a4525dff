// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timewright

package timeapi

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
)

// Decode parses a body already classified as successful.
//
// "No body" and "invalid body" are distinct failure kinds: a body that trims
// to nothing yields KindEmptyBody, while a parse error yields KindJSONParse
// carrying the parser's reason and a bounded preview of the original,
// untrimmed body. Numbers decode as [json.Number] so downstream shape
// detection can tell numeric payloads apart without float drift.
func Decode(tool, body string) (any, error) {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return nil, &CallError{Tool: tool, Kind: KindEmptyBody}
	}

	dec := json.NewDecoder(strings.NewReader(trimmed))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, &CallError{Tool: tool, Kind: KindJSONParse, Err: err, Preview: Preview(body)}
	}

	// a single JSON value must consume the whole body
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &CallError{
			Tool:    tool,
			Kind:    KindJSONParse,
			Err:     errors.New("unexpected data after JSON value"),
			Preview: Preview(body),
		}
	}

	return payload, nil
}
