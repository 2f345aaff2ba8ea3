package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source node ID is empty.
	ErrEmptySource = errors.New("dijkstra: source node ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target node does not exist.
	ErrVertexNotFound = errors.New("dijkstra: node not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of Dijkstra.
//
// Source      – starting node ID (required).
// Target      – optional; the search stops once Target is settled.
// ReturnPath  – if true, the predecessor map is returned; otherwise prev is nil.
// MaxDistance – nodes farther than this are left at +Inf. Default +Inf.
type Options struct {
	Source      string
	Target      string
	ReturnPath  bool
	MaxDistance float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node ID.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// Target enables early termination once id is settled.
func Target(id string) Option {
	return func(o *Options) { o.Target = id }
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps exploration. Panics on a negative value.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) { o.MaxDistance = max }
}

// DefaultOptions returns Options with no target, no path, no cap.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		MaxDistance: math.Inf(1),
	}
}

// Path is a single-pair result: the node sequence from source to target and
// its total weight.
type Path struct {
	Nodes []string
	Cost  float64
}

// Len returns the number of nodes on the path.
func (p Path) Len() int { return len(p.Nodes) }
