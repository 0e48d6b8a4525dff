// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timewright

package timeapi

import (
	"fmt"
	"net/http"
)

// previewLimit bounds the number of characters of a response body that may
// appear in an error message.
const previewLimit = 500

// emptyBodyMarker replaces an empty body in HTTP-status failure previews.
const emptyBodyMarker = "<empty response body>"

// Kind discriminates the failure classes produced by the pipeline.
type Kind int

const (
	// KindNetwork means the transport could not complete the call at all
	// (DNS, connection refusal, timeout). No response was obtained.
	KindNetwork Kind = iota + 1

	// KindHTTPStatus means a response was obtained but its status code was
	// outside the 2xx range. Carries the status and a body preview.
	KindHTTPStatus

	// KindEmptyBody means a 2xx response carried no body where a JSON
	// payload was expected.
	KindEmptyBody

	// KindJSONParse means a 2xx response body was non-empty but could not
	// be parsed as JSON. Carries the parser reason and a body preview.
	KindJSONParse
)

// String returns a short machine-friendly name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindHTTPStatus:
		return "http_status"
	case KindEmptyBody:
		return "empty_body"
	case KindJSONParse:
		return "json_parse"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// CallError is the tagged failure type of the pipeline. Every outbound call
// that does not produce an output record produces exactly one CallError.
//
// Tool is the entrypoint key the call was made on behalf of; it prefixes the
// error message so failures stay traceable to their origin.
type CallError struct {
	Tool    string
	Kind    Kind
	Status  int    // set for KindHTTPStatus
	Preview string // set for KindHTTPStatus and KindJSONParse
	Err     error  // underlying cause for KindNetwork and KindJSONParse
}

func (e *CallError) Error() string {
	switch e.Kind {
	case KindNetwork:
		return fmt.Sprintf("%s: request failed: %v", e.Tool, e.Err)
	case KindHTTPStatus:
		return fmt.Sprintf("%s: upstream responded with HTTP %d: %s", e.Tool, e.Status, e.Preview)
	case KindEmptyBody:
		return fmt.Sprintf("%s: upstream returned an empty response body", e.Tool)
	case KindJSONParse:
		return fmt.Sprintf("%s: invalid JSON in upstream response: %v (body: %s)", e.Tool, e.Err, e.Preview)
	default:
		return fmt.Sprintf("%s: upstream call failed", e.Tool)
	}
}

func (e *CallError) Unwrap() error { return e.Err }

// Classify decides success or failure from the envelope's status code.
// A non-2xx status yields a KindHTTPStatus failure carrying a bounded preview
// of the body; the body is never handed to the JSON decoder in that case.
func Classify(tool string, env Envelope) error {
	if env.OK {
		return nil
	}

	p := env.Body
	if p == "" {
		p = emptyBodyMarker
	} else {
		p = Preview(p)
	}
	return &CallError{Tool: tool, Kind: KindHTTPStatus, Status: env.Status, Preview: p}
}

// Preview truncates body to previewLimit characters, appending an ellipsis
// marker when anything was cut off. Truncation counts characters, not bytes,
// so a multi-byte rune is never split.
func Preview(body string) string {
	runes := []rune(body)
	if len(runes) <= previewLimit {
		return body
	}
	return string(runes[:previewLimit]) + "..."
}

func networkError(tool string, err error) *CallError {
	return &CallError{Tool: tool, Kind: KindNetwork, Err: err}
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
