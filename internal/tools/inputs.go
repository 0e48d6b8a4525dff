// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timewright

package tools

// Input contracts for the entrypoints. Field constraints are expressed as
// go-playground/validator tags and enforced by the registry wrapper before
// any network activity; jsonschema tags describe the fields to MCP clients.

// NoInput is the contract for entrypoints that take no arguments.
type NoInput struct{}

// ZoneInput selects a location by IANA time zone identifier.
type ZoneInput struct {
	TimeZone string `json:"timeZone" validate:"required" jsonschema:"IANA time zone identifier such as America/Denver"`
}

// CoordinateInput selects a location by geographic coordinates.
type CoordinateInput struct {
	Latitude  float64 `json:"latitude" validate:"latitude" jsonschema:"latitude in decimal degrees between -90 and 90"`
	Longitude float64 `json:"longitude" validate:"longitude" jsonschema:"longitude in decimal degrees between -180 and 180"`
}

// IPInput selects a location by IPv4 address.
type IPInput struct {
	IPAddress string `json:"ipAddress" validate:"required,ipv4" jsonschema:"IPv4 address such as 237.71.232.203"`
}

// DateInput carries a calendar date for the day-of-week / day-of-year lookups.
type DateInput struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02" jsonschema:"calendar date in yyyy-MM-dd format"`
}

// ConvertInput describes a timezone conversion of a specific local time.
// DstAmbiguity resolves local times duplicated or skipped by daylight-saving
// transitions; an empty value means "not provided" and is omitted from the
// outbound request entirely.
type ConvertInput struct {
	FromTimeZone string `json:"fromTimeZone" validate:"required" jsonschema:"IANA time zone the dateTime is expressed in"`
	DateTime     string `json:"dateTime" validate:"required,localdatetime" jsonschema:"local date-time in yyyy-MM-dd HH:mm:ss format"`
	ToTimeZone   string `json:"toTimeZone" validate:"required" jsonschema:"IANA time zone to convert into"`
	DstAmbiguity string `json:"dstAmbiguity,omitempty" jsonschema:"optional daylight-saving disambiguation for ambiguous local times"`
}

// TranslateInput describes a date-time translation into a target language.
type TranslateInput struct {
	DateTime     string `json:"dateTime" validate:"required,localdatetime" jsonschema:"date-time in yyyy-MM-dd HH:mm:ss format"`
	LanguageCode string `json:"languageCode" validate:"required" jsonschema:"two-letter language code such as de"`
}

// CurrentCalcInput increments or decrements the current time of a zone by a
// time span.
type CurrentCalcInput struct {
	TimeZone string `json:"timeZone" validate:"required" jsonschema:"IANA time zone identifier"`
	TimeSpan string `json:"timeSpan" validate:"required,timespan" jsonschema:"span to apply in d:hh:mm:ss format such as 0:01:30:00"`
}

// CustomCalcInput increments or decrements a caller-supplied date-time by a
// time span. DstAmbiguity follows the same empty-means-omitted rule as in
// [ConvertInput].
type CustomCalcInput struct {
	TimeZone     string `json:"timeZone" validate:"required" jsonschema:"IANA time zone the dateTime is expressed in"`
	DateTime     string `json:"dateTime" validate:"required,localdatetime" jsonschema:"date-time in yyyy-MM-dd HH:mm:ss format"`
	TimeSpan     string `json:"timeSpan" validate:"required,timespan" jsonschema:"span to apply in d:hh:mm:ss format"`
	DstAmbiguity string `json:"dstAmbiguity,omitempty" jsonschema:"optional daylight-saving disambiguation for ambiguous local times"`
}
