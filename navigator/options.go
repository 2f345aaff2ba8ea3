package navigator

import (
	"log/slog"

	"github.com/katalvlaran/indoornav/builder"
)

// Option customizes New.
type Option func(*options)

type options struct {
	logger       *slog.Logger
	strict       bool
	edgeIDPrefix string
}

func newOptions(opts ...Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o options) builderOptions() []builder.Option {
	out := []builder.Option{builder.WithLogger(o.logger)}
	if o.strict {
		out = append(out, builder.WithStrict())
	}
	if o.edgeIDPrefix != "" {
		out = append(out, builder.WithEdgeIDPrefix(o.edgeIDPrefix))
	}

	return out
}

// WithLogger sets the logger for load-time warnings. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStrict fails loading on the first malformed record.
func WithStrict(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// WithEdgeIDPrefix sets the prefix for auto-numbered edges. Empty keeps "edge_".
func WithEdgeIDPrefix(prefix string) Option {
	return func(o *options) { o.edgeIDPrefix = prefix }
}
