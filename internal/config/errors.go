package config

import "errors"

var (
	// ErrInvalidUpstreamConfig marks an unusable upstream section, such as a
	// negative request timeout.
	ErrInvalidUpstreamConfig = errors.New("invalid upstream configs")
)
