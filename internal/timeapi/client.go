// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timewright

package timeapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/timewright/timeapi-mcp/internal/logger"
)

// Config holds the upstream connection settings for a [Client].
type Config struct {
	// BaseURL is the upstream origin. A missing scheme defaults to https.
	BaseURL string

	// Timeout bounds a single outbound call at the transport layer.
	// Zero means no client-side timeout: an upstream hang blocks the
	// invocation until the caller's context is done.
	Timeout time.Duration
}

// Envelope is the raw outcome of a completed call: the status code, the
// success flag derived from it, and the full text body. The body is read
// exactly once by the transport and reused for both the error-preview path
// and the JSON-decode path.
type Envelope struct {
	Status int
	OK     bool
	Body   string
}

// Client drives all outbound calls to the upstream service.
type Client struct {
	http *resty.Client
	base string
	log  *logger.Logger
}

// New constructs a Client for the given upstream. Returns an error if the
// base URL cannot be normalized into a scheme+host origin.
func New(cfg Config, log *logger.Logger) (*Client, error) {
	base, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream base url: %w", err)
	}

	cli := resty.New()
	if cfg.Timeout > 0 {
		cli.SetTimeout(cfg.Timeout)
	}

	return &Client{http: cli, base: base, log: log}, nil
}

// URL builds the full resource URL for path and params against the client's
// base origin. Handlers record this exact URL as the output's source field.
func (c *Client) URL(path string, params ...Param) string {
	return BuildURL(c.base, path, params...)
}

// Fetch performs a GET against rawURL and returns the response envelope.
// A transport-level failure (no response obtained) yields a KindNetwork
// [*CallError]; a response of any status yields an envelope with the body
// fully read. A body-read failure after the response arrived degrades to an
// empty body rather than a second failure kind.
func (c *Client) Fetch(ctx context.Context, tool, rawURL string, extra ExtraHeaders) (Envelope, error) {
	return c.do(ctx, tool, http.MethodGet, rawURL, nil, extra)
}

// Post performs a POST with a JSON-encoded body and returns the response
// envelope, with the same failure semantics as [Client.Fetch].
func (c *Client) Post(ctx context.Context, tool, rawURL string, body any, extra ExtraHeaders) (Envelope, error) {
	return c.do(ctx, tool, http.MethodPost, rawURL, body, extra)
}

// FetchJSON runs the whole GET pipeline: transport, status classification,
// then the empty-vs-malformed JSON decode. Exactly one of payload or error is
// produced.
func (c *Client) FetchJSON(ctx context.Context, tool, rawURL string, extra ExtraHeaders) (any, error) {
	env, err := c.Fetch(ctx, tool, rawURL, extra)
	if err != nil {
		return nil, err
	}
	if err := Classify(tool, env); err != nil {
		return nil, err
	}
	return Decode(tool, env.Body)
}

// PostJSON runs the whole POST pipeline, mirroring [Client.FetchJSON].
func (c *Client) PostJSON(ctx context.Context, tool, rawURL string, body any, extra ExtraHeaders) (any, error) {
	env, err := c.Post(ctx, tool, rawURL, body, extra)
	if err != nil {
		return nil, err
	}
	if err := Classify(tool, env); err != nil {
		return nil, err
	}
	return Decode(tool, env.Body)
}

func (c *Client) do(ctx context.Context, tool, method, rawURL string, body any, extra ExtraHeaders) (Envelope, error) {
	req := c.http.R().SetContext(ctx)
	req.Header = MergeHeaders(extra)
	if body != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(body)
	}

	resp, err := req.Execute(method, rawURL)
	if err != nil {
		if resp == nil || resp.RawResponse == nil {
			c.log.Warn().Str("tool", tool).Str("url", rawURL).Err(err).Msg("upstream call failed before a response")
			return Envelope{}, networkError(tool, err)
		}
		// a response arrived but its body could not be read
		env := Envelope{Status: resp.StatusCode(), OK: isSuccess(resp.StatusCode())}
		return env, nil
	}

	env := Envelope{
		Status: resp.StatusCode(),
		OK:     isSuccess(resp.StatusCode()),
		Body:   string(resp.Body()),
	}

	c.log.Debug().
		Str("tool", tool).
		Str("method", method).
		Str("url", rawURL).
		Int("status", env.Status).
		Msg("upstream call completed")

	return env, nil
}
