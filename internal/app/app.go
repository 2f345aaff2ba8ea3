package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/indoornav/internal/mcptools"
	"github.com/katalvlaran/indoornav/internal/report"
	"github.com/katalvlaran/indoornav/internal/server"
	"github.com/katalvlaran/indoornav/navigator"
)

// App holds the output streams, logger and configuration of one run.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *Config
}

// NewApp builds an App. Logs go to logW so that outW stays clean for
// reports and the MCP stdio stream.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.Settings.Log.Level, cfg.Settings.Log.Format, logW)
	logger.Debug("logger configured", "level", cfg.Settings.Log.Level, "format", cfg.Settings.Log.Format)

	return &App{outW: outW, logger: logger, cfg: cfg}
}

// Logger returns the app logger.
func (a *App) Logger() *slog.Logger { return a.logger }

func (a *App) open() (*navigator.Navigator, error) {
	nav, err := navigator.Open(a.cfg.MapPath,
		navigator.WithLogger(a.logger),
		navigator.WithStrict(a.cfg.Settings.Builder.Strict),
		navigator.WithEdgeIDPrefix(a.cfg.Settings.Builder.EdgeIDPrefix))
	if err != nil {
		return nil, fmt.Errorf("failed to load map: %w", err)
	}

	return nav, nil
}

// Run loads the map and executes the configured mode.
func (a *App) Run(ctx context.Context) error {
	nav, err := a.open()
	if err != nil {
		return err
	}

	switch a.cfg.Mode {
	case ModeServe:
		return a.serve(ctx, nav)
	case ModeMCP:
		a.logger.Info("serving MCP tools over stdio")
		s := mcptools.NewServer(func() *navigator.Navigator { return nav }, a.cfg.Settings.Nearby, Version)
		return mcptools.Serve(ctx, s)
	default:
		return a.report(nav)
	}
}

func (a *App) serve(ctx context.Context, nav *navigator.Navigator) error {
	if a.cfg.Settings.Server.Addr == "" {
		return errors.New("server address is empty")
	}
	srv := server.New(nav, a.cfg.Settings, a.logger)
	go a.reloadOnSignal(ctx, srv)

	return srv.Run(ctx)
}

// reloadOnSignal rebuilds the navigator from disk on each signal and swaps
// it into srv. A failed reload keeps the current navigator.
func (a *App) reloadOnSignal(ctx context.Context, srv *server.Server) {
	sig := reloadSignals()
	defer stopSignals(sig)

	for {
		select {
		case <-ctx.Done():
			return
		case <-sig:
			nav, err := a.open()
			if err != nil {
				a.logger.Error("reload failed, keeping current map", "err", err)
				continue
			}
			srv.Swap(nav)
			a.logger.Info("map reloaded", "path", a.cfg.MapPath)
		}
	}
}

func (a *App) report(nav *navigator.Navigator) error {
	if err := report.Info(a.outW, nav.Info()); err != nil {
		return err
	}
	if a.cfg.Start == "" {
		a.logger.Debug("no start/end given, graph info only")
		return nil
	}

	route, ok, err := nav.Navigate(a.cfg.Start, a.cfg.End)
	if err != nil {
		return err
	}
	if !ok {
		return report.NoRoute(a.outW, a.cfg.Start, a.cfg.End)
	}
	if err = report.Route(a.outW, route); err != nil {
		return err
	}

	pois, err := nav.NearbyPOIs(a.cfg.End, a.cfg.Settings.Nearby.Radius)
	if err != nil {
		return err
	}

	return report.Nearby(a.outW, pois, a.cfg.Settings.Nearby.Limit)
}
