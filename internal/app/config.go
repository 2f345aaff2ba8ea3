package app

import (
	"errors"

	"github.com/katalvlaran/indoornav/config"
)

// Version is reported by the MCP server.
const Version = "0.1.0"

// Mode selects what Run does after loading the map.
type Mode int

const (
	ModeReport Mode = iota // print graph info, and a route when Start/End are set
	ModeServe              // HTTP API
	ModeMCP                // MCP tools over stdio
)

// Config is everything Run needs.
type Config struct {
	MapPath  string
	Start    string
	End      string
	Mode     Mode
	Settings config.Config
}

// NewConfig validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.MapPath == "" {
		return nil, errors.New("a map file is required")
	}
	if (cfg.Start == "") != (cfg.End == "") {
		return nil, errors.New("start and end must be given together")
	}
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
