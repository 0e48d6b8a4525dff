// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timewright

// Package timeapi implements the outbound request/response pipeline for the
// upstream time-and-timezone REST service.
//
// The pipeline is assembled from small, independently testable pieces:
// URL construction with absent-value query handling (url.go), merging of
// caller-supplied headers onto an accept-seeded base set (headers.go), the
// resty-backed transport that always yields a fully read body (client.go),
// status classification with bounded body previews and the strict
// empty-vs-malformed JSON decode (errors.go, decode.go).
//
// Every failure produced by the pipeline is a [*CallError] tagged with one of
// the four [Kind] values, so callers can discriminate failure classes with
// [errors.As] instead of matching on message text.
package timeapi
