// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timewright

package tools

import (
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/timewright/timeapi-mcp/internal/logger"
	"github.com/timewright/timeapi-mcp/internal/timeapi"
)

func newTestValidator(t *testing.T) *Registry {
	t.Helper()
	api, err := timeapi.New(timeapi.Config{BaseURL: "https://timeapi.io"}, logger.Nop())
	assert.NoError(t, err)
	srv := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "test"}, nil)
	return NewRegistry(srv, api, logger.Nop())
}

func TestValidate_ZoneInput(t *testing.T) {
	r := newTestValidator(t)

	assert.NoError(t, r.validate.Struct(ZoneInput{TimeZone: "America/Denver"}))
	assert.Error(t, r.validate.Struct(ZoneInput{}))
}

func TestValidate_CoordinateRanges(t *testing.T) {
	r := newTestValidator(t)

	assert.NoError(t, r.validate.Struct(CoordinateInput{Latitude: -90, Longitude: 180}))
	assert.NoError(t, r.validate.Struct(CoordinateInput{Latitude: 38.9, Longitude: -77.0364}))
	assert.Error(t, r.validate.Struct(CoordinateInput{Latitude: 90.1, Longitude: 0}))
	assert.Error(t, r.validate.Struct(CoordinateInput{Latitude: 0, Longitude: -180.5}))
}

func TestValidate_IPv4Pattern(t *testing.T) {
	r := newTestValidator(t)

	assert.NoError(t, r.validate.Struct(IPInput{IPAddress: "237.71.232.203"}))
	assert.Error(t, r.validate.Struct(IPInput{IPAddress: "not-an-ip"}))
	assert.Error(t, r.validate.Struct(IPInput{IPAddress: "2001:db8::1"}))
	assert.Error(t, r.validate.Struct(IPInput{}))
}

func TestValidate_DateFormat(t *testing.T) {
	r := newTestValidator(t)

	assert.NoError(t, r.validate.Struct(DateInput{Date: "2026-08-26"}))
	assert.Error(t, r.validate.Struct(DateInput{Date: "26.08.2026"}))
	assert.Error(t, r.validate.Struct(DateInput{Date: "2026-8-26"}))
}

func TestValidate_ConvertInputDateTime(t *testing.T) {
	r := newTestValidator(t)

	valid := ConvertInput{
		FromTimeZone: "America/Denver",
		DateTime:     "2026-08-26 14:30:00",
		ToTimeZone:   "UTC",
	}
	assert.NoError(t, r.validate.Struct(valid))

	invalid := valid
	invalid.DateTime = "2026-08-26T14:30:00"
	assert.Error(t, r.validate.Struct(invalid))
}

func TestValidate_TimeSpanPattern(t *testing.T) {
	r := newTestValidator(t)

	assert.NoError(t, r.validate.Struct(CurrentCalcInput{TimeZone: "UTC", TimeSpan: "0:01:30:00"}))
	assert.NoError(t, r.validate.Struct(CurrentCalcInput{TimeZone: "UTC", TimeSpan: "16:03:45:17"}))
	assert.Error(t, r.validate.Struct(CurrentCalcInput{TimeZone: "UTC", TimeSpan: "1h30m"}))
	assert.Error(t, r.validate.Struct(CurrentCalcInput{TimeZone: "UTC", TimeSpan: "0:1:30:00"}))
}

func TestValidate_DstAmbiguityOptional(t *testing.T) {
	r := newTestValidator(t)

	in := CustomCalcInput{
		TimeZone: "UTC",
		DateTime: "2026-11-01 01:30:00",
		TimeSpan: "0:01:00:00",
	}
	assert.NoError(t, r.validate.Struct(in))

	in.DstAmbiguity = "latest"
	assert.NoError(t, r.validate.Struct(in))
}
