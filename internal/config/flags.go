package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-p/-port listen port
//	-base-url upstream origin, e.g. https://timeapi.io
//	-request-timeout outbound request timeout (e.g. "30s", "1m"; 0 = none)
//	-stdio serve MCP over stdio instead of HTTP
//	-c/-config json file path with configs
func ParseFlags() *Config {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) *Config {
	var port string
	var baseURL string
	var requestTimeout time.Duration
	var stdio bool
	var jsonConfigPath string

	fs := flag.NewFlagSet("timeapi-mcp", flag.ExitOnError)
	fs.StringVar(&port, "p", "", "Listen port")
	fs.StringVar(&port, "port", "", "Listen port (alias)")
	fs.StringVar(&baseURL, "base-url", "", "Upstream base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g. 30s, 1m)")
	fs.BoolVar(&stdio, "stdio", false, "Serve MCP over stdio")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	// ExitOnError makes a failed Parse terminate the process
	_ = fs.Parse(args)

	return &Config{
		Server: Server{
			Port:  port,
			Stdio: stdio,
		},
		Upstream: Upstream{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
