// SPDX-License-Identifier: MIT
// Package: indoornav/builder
//
// options.go - functional options and the resolved build configuration.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs (nil logger,
//     nil ID scheme). Build itself never panics.
//   • Options apply in order; last wins.

package builder

import (
	"log/slog"
	"strconv"
)

// Option customizes a Build call.
type Option func(*config)

// config aggregates all knobs used by Build. Passed by value.
type config struct {
	logger   *slog.Logger
	edgeIDFn func(n int) string
	strict   bool
}

// defaultEdgeIDPrefix matches the map editor's own auto-numbering.
const defaultEdgeIDPrefix = "edge_"

// newConfig resolves defaults and applies opts in order.
func newConfig(opts ...Option) config {
	cfg := config{
		logger:   slog.Default(),
		edgeIDFn: sequentialEdgeID,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// sequentialEdgeID renders n as "edge_<n>".
func sequentialEdgeID(n int) string {
	return defaultEdgeIDPrefix + strconv.Itoa(n)
}

// WithLogger sets the logger used for skip warnings and the load summary.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithEdgeIDScheme overrides the fallback ID generator for edges without an
// ID. fn receives the number of edges accepted so far. Panics on nil.
func WithEdgeIDScheme(fn func(n int) string) Option {
	if fn == nil {
		panic("builder: WithEdgeIDScheme(nil)")
	}
	return func(c *config) { c.edgeIDFn = fn }
}

// WithStrict makes the first skipped record fail the build with
// ErrMalformedRecord instead of a warning.
func WithStrict() Option {
	return func(c *config) { c.strict = true }
}

// WithEdgeIDPrefix keeps sequential numbering but replaces the "edge_" prefix.
// Panics on an empty prefix.
func WithEdgeIDPrefix(prefix string) Option {
	if prefix == "" {
		panic("builder: WithEdgeIDPrefix(\"\")")
	}
	return WithEdgeIDScheme(func(n int) string { return prefix + strconv.Itoa(n) })
}
