package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/indoornav/config"
	"github.com/katalvlaran/indoornav/internal/app"
	"github.com/katalvlaran/indoornav/navigator"
)

// Exit codes.
const (
	ExitFailure    = 1
	ExitUsage      = 2
	ExitUnresolved = 3
)

// ExitError is an error carrying a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("indoornav", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
indoornav - shortest paths and turn-by-turn directions inside a building.

Usage:
  indoornav [options] MAP.geojson [START END]

Arguments:
  MAP.geojson  Feature collection exported by the map editor.
  START END    Node, POI or room IDs. Without them only graph info is printed.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to a YAML configuration file.")
	logLevelFlag := flagSet.String("log-level", "", "Logging level: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format: 'text' or 'json'.")
	nearbyFlag := flagSet.Float64("nearby", 0, "Radius in meters for nearby POIs at the destination.")
	serveFlag := flagSet.String("serve", "", "Serve the HTTP API on this address instead of printing a report.")
	mcpFlag := flagSet.Bool("mcp", false, "Serve MCP tools over stdio instead of printing a report.")
	strictFlag := flagSet.Bool("strict", false, "Fail on the first malformed record instead of skipping it.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	settings, err := config.Load(*configFlag)
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	// Flags override the file only when given explicitly.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			settings.Log.Level = strings.ToLower(*logLevelFlag)
		case "log-format":
			settings.Log.Format = strings.ToLower(*logFormatFlag)
		case "nearby":
			settings.Nearby.Radius = *nearbyFlag
		case "serve":
			settings.Server.Addr = *serveFlag
		case "strict":
			settings.Builder.Strict = *strictFlag
		}
	})

	cfg := app.Config{Settings: settings}
	rest := flagSet.Args()
	switch len(rest) {
	case 0:
		cfg.MapPath = settings.Map
	case 1:
		cfg.MapPath = rest[0]
	case 3:
		cfg.MapPath, cfg.Start, cfg.End = rest[0], rest[1], rest[2]
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: "expected MAP.geojson [START END]"}
	}
	if cfg.MapPath == "" {
		slog.Debug("No map path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	if *serveFlag != "" && *mcpFlag {
		return nil, false, &ExitError{Code: ExitUsage, Message: "-serve and -mcp are mutually exclusive"}
	}
	switch {
	case *serveFlag != "":
		cfg.Mode = app.ModeServe
	case *mcpFlag:
		cfg.Mode = app.ModeMCP
	}

	out, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	slog.Debug("CLI parser finished successfully.", "map", out.MapPath, "mode", out.Mode)

	return out, false, nil
}

// ExitCode maps a run error to a process exit code.
func ExitCode(err error) int {
	var exitErr *ExitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, navigator.ErrUnresolved):
		return ExitUnresolved
	default:
		return ExitFailure
	}
}
