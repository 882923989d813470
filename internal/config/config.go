// Package config loads the optional YAML endpoints file used by the
// compare command, with environment variable expansion and strict
// validation of every endpoint URL.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "10s" parse directly.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config is the root structure of the endpoints file.
type Config struct {
	Endpoints []Endpoint `yaml:"endpoints"`
	Defaults  Defaults   `yaml:"defaults"`
}

// Endpoint names a single RPC endpoint. The URL supports ${VAR} expansion
// so API keys can live in the environment (or a .env file) instead of the
// config file.
type Endpoint struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Defaults holds settings applied when the corresponding flag is not given.
type Defaults struct {
	Timeout Duration `yaml:"timeout,omitempty"` // per-request timeout, e.g. "10s"
}

// Validate checks that every endpoint has a name and a well-formed http(s)
// URL. Called by Load; exported for tests and for configs built in code.
func (c *Config) Validate() error {
	if len(c.Endpoints) == 0 {
		return fmt.Errorf("at least one endpoint is required")
	}

	for i, e := range c.Endpoints {
		if e.Name == "" {
			return fmt.Errorf("endpoint %d: name is required", i+1)
		}
		if e.URL == "" {
			return fmt.Errorf("endpoint %s: url is required", e.Name)
		}

		u, err := url.Parse(e.URL)
		if err != nil {
			return fmt.Errorf("endpoint %s: invalid url: %w", e.Name, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("endpoint %s: invalid url scheme %q (expected http or https)", e.Name, u.Scheme)
		}
		if u.Host == "" {
			return fmt.Errorf("endpoint %s: invalid url (missing host)", e.Name)
		}
	}

	return nil
}

// Load reads and parses a YAML endpoints file, expanding ${VAR} references
// against the environment before decoding.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
