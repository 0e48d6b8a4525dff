package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration is a time.Duration that unmarshals from either a JSON number of
// nanoseconds or a duration string such as "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		*d = Duration(time.Duration(v))
		return nil
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", v, err)
		}
		*d = Duration(parsed)
		return nil
	default:
		return fmt.Errorf("invalid duration value: %v", raw)
	}
}

type jsonConfig struct {
	Server struct {
		Port  string `json:"port"`
		Stdio bool   `json:"stdio"`
	} `json:"server,omitempty"`

	Upstream struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"upstream,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		Server: Server{
			Port:  jsonCfg.Server.Port,
			Stdio: jsonCfg.Server.Stdio,
		},
		Upstream: Upstream{
			BaseURL:        jsonCfg.Upstream.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Upstream.RequestTimeout),
		},
	}

	return cfg, nil
}
