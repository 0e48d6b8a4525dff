// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timewright

package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/timewright/timeapi-mcp/internal/logger"
	"github.com/timewright/timeapi-mcp/internal/timeapi"
)

// timeSpanPattern matches the upstream d:hh:mm:ss span format, e.g. "0:01:30:00".
var timeSpanPattern = regexp.MustCompile(`^\d+:\d{2}:\d{2}:\d{2}$`)

// localDateTimeLayout is the upstream yyyy-MM-dd HH:mm:ss date-time format.
// A custom rule instead of the builtin datetime tag because the layout
// contains a space, which the tag parameter syntax does not carry well.
const localDateTimeLayout = "2006-01-02 15:04:05"

// Registry binds entrypoints to the MCP server. Registration is append-only:
// every key is recorded in registration order before delegating to the
// underlying mcp.AddTool call. The key list is read only after startup, for
// the registration summary; nothing consults it on the request path.
type Registry struct {
	srv      *mcp.Server
	api      *timeapi.Client
	log      *logger.Logger
	validate *validator.Validate
	keys     []string
}

// NewRegistry constructs a Registry over the given MCP server and upstream
// client. The returned value owns the validator instance used for every
// input contract, including the custom "timespan" rule.
func NewRegistry(srv *mcp.Server, api *timeapi.Client, log *logger.Logger) *Registry {
	v := validator.New(validator.WithRequiredStructEnabled())
	// registration only fails for empty tags or nil funcs
	_ = v.RegisterValidation("timespan", func(fl validator.FieldLevel) bool {
		return timeSpanPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("localdatetime", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(localDateTimeLayout, fl.Field().String())
		return err == nil
	})

	return &Registry{srv: srv, api: api, log: log, validate: v}
}

// RegisterAll registers every entrypoint of the server.
func (r *Registry) RegisterAll() {
	registerTimeTools(r)
	registerTimezoneTools(r)
	registerConversionTools(r)
	registerCalculationTools(r)
	registerHealthTool(r)
}

// Keys returns the registered entrypoint keys in registration order.
func (r *Registry) Keys() []string {
	return slices.Clone(r.keys)
}

// handlerFunc is the uniform shape of an entrypoint handler: validated input
// in, output record (always carrying a "source" field) or a classified
// failure out.
type handlerFunc[In any] func(ctx context.Context, c *timeapi.Client, in In) (map[string]any, error)

// register records the tool key and delegates to the MCP server. The MCP-side
// wrapper validates the decoded input against its contract before any network
// activity and surfaces every failure as an IsError tool result tagged with
// the entrypoint key.
func register[In any](r *Registry, tool *mcp.Tool, run handlerFunc[In]) {
	r.keys = append(r.keys, tool.Name)

	mcp.AddTool(r.srv, tool, func(ctx context.Context, req *mcp.CallToolRequest, in In) (*mcp.CallToolResult, any, error) {
		log := r.log.With().
			Str("tool", tool.Name).
			Str("invocation_id", invocationID()).
			Logger()

		if err := r.validate.Struct(in); err != nil {
			verr := fmt.Errorf("%s: invalid input: %w", tool.Name, err)
			log.Warn().Err(err).Msg("input rejected")
			return errorResult(verr), nil, nil
		}

		out, err := run(ctx, r.api, in)
		if err != nil {
			log.Error().Err(err).Msg("entrypoint failed")
			return errorResult(err), nil, nil
		}

		log.Debug().Msg("entrypoint succeeded")
		return jsonResult(out), nil, nil
	})
}

func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.Marshal(v)
	if err != nil {
		return errorResult(fmt.Errorf("encode result: %w", err))
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

func invocationID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
