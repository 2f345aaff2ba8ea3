// Package config loads indoornav's YAML configuration.
//
// Values are resolved in this order: built-in defaults, then the YAML file
// (with ${VAR} environment expansion), then command-line flags applied by
// the caller. Unknown keys are an error.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full runtime configuration.
type Config struct {
	// Map is the GeoJSON file to load when none is given on the command line.
	Map     string        `yaml:"map"`
	Log     LogConfig     `yaml:"log"`
	Builder BuilderConfig `yaml:"builder"`
	Nearby  NearbyConfig  `yaml:"nearby"`
	Server  ServerConfig  `yaml:"server"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // text|json
}

type BuilderConfig struct {
	Strict       bool   `yaml:"strict"`
	EdgeIDPrefix string `yaml:"edge_id_prefix"`
}

type NearbyConfig struct {
	Radius float64 `yaml:"radius"`
	Limit  int     `yaml:"limit"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Default returns a working configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Builder: BuilderConfig{
			EdgeIDPrefix: "edge_",
		},
		Nearby: NearbyConfig{
			Radius: 30,
			Limit:  5,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader([]byte(os.ExpandEnv(string(raw)))))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("YAML syntax error in config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	if c.Builder.EdgeIDPrefix == "" {
		return fmt.Errorf("%w: builder.edge_id_prefix is empty", ErrInvalid)
	}
	if c.Nearby.Radius < 0 {
		return fmt.Errorf("%w: nearby.radius %g", ErrInvalid, c.Nearby.Radius)
	}
	if c.Nearby.Limit < 0 {
		return fmt.Errorf("%w: nearby.limit %d", ErrInvalid, c.Nearby.Limit)
	}

	return nil
}
