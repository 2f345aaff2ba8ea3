// Package navigator is the load-once, query-many entry point of indoornav.
//
// A Navigator owns an immutable graph, its all-pairs distance matrix and the
// location resolver. All query methods are read-only and safe for concurrent
// use. Reloading a map means building a new Navigator.
package navigator

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/indoornav/bfs"
	"github.com/katalvlaran/indoornav/builder"
	"github.com/katalvlaran/indoornav/core"
	"github.com/katalvlaran/indoornav/geojson"
	"github.com/katalvlaran/indoornav/locate"
	"github.com/katalvlaran/indoornav/matrix"
)

var (
	// ErrUnresolved indicates an endpoint that names no node, POI or room,
	// or whose access node is not part of the graph.
	ErrUnresolved = errors.New("navigator: location could not be resolved")

	// ErrNilCollection indicates New was called without input.
	ErrNilCollection = errors.New("navigator: nil collection")
)

// Navigator answers route and proximity queries over one loaded map.
type Navigator struct {
	graph    *core.Graph
	dist     *matrix.DistanceMatrix
	resolver *locate.Resolver
	report   builder.Report

	formatVersion string
	edgeType      string
	components    int
	loadedAt      time.Time

	logger *slog.Logger
}

// Open loads the GeoJSON file at path and builds a Navigator from it.
func Open(path string, opts ...Option) (*Navigator, error) {
	c, err := geojson.Load(path)
	if err != nil {
		return nil, err
	}

	return New(c, opts...)
}

// New builds the graph, the distance matrix and the resolver from c.
//
// Malformed records are skipped with a warning unless WithStrict is set,
// in which case the first one fails the call with builder.ErrMalformedRecord.
func New(c *geojson.Collection, opts ...Option) (*Navigator, error) {
	if c == nil {
		return nil, ErrNilCollection
	}
	o := newOptions(opts...)
	log := o.logger

	if c.ExplicitEdgeType() {
		log.Info("loading explicit edge format", "format_version", c.FormatVersion)
	} else {
		log.Warn("unknown edge type, attempting to parse",
			"edge_type", c.EdgeType,
			"format_version", c.FormatVersion)
	}
	for _, s := range c.Skipped {
		if o.strict {
			return nil, fmt.Errorf("%w: %s", builder.ErrMalformedRecord, s)
		}
		log.Warn("feature skipped", "index", s.Index, "type", s.Type, "id", s.ID, "reason", s.Reason)
	}

	g, report, err := builder.Build(c.Nodes, c.Edges, o.builderOptions()...)
	if err != nil {
		return nil, err
	}

	dm, err := matrix.NewDistanceMatrix(g)
	if err != nil {
		return nil, fmt.Errorf("navigator: %w", err)
	}

	reg := locate.NewRegistry()
	for _, loc := range c.POIs {
		if replaced, err := reg.AddPOI(loc); err != nil {
			log.Warn("poi skipped", "id", loc.ID, "err", err)
		} else if replaced {
			log.Warn("duplicate poi id, last wins", "id", loc.ID)
		}
	}
	for _, loc := range c.Rooms {
		if replaced, err := reg.AddRoom(loc); err != nil {
			log.Warn("room skipped", "id", loc.ID, "err", err)
		} else if replaced {
			log.Warn("duplicate room id, last wins", "id", loc.ID)
		}
	}
	resolver := locate.NewResolver(g, reg)
	for _, loc := range resolver.DanglingEntrance() {
		log.Warn("location entrance is not a graph node",
			"id", loc.ID, "kind", loc.Kind, "access_node", loc.AccessNodes[0])
	}

	n := &Navigator{
		graph:         g,
		dist:          dm,
		resolver:      resolver,
		report:        report,
		formatVersion: c.FormatVersion,
		edgeType:      c.EdgeType,
		components:    len(bfs.Components(g)),
		loadedAt:      time.Now(),
		logger:        log,
	}
	pois, rooms := reg.Len()
	log.Info("navigator ready",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"pois", pois,
		"rooms", rooms,
		"components", n.components)

	return n, nil
}

// Graph returns the underlying immutable graph.
func (n *Navigator) Graph() *core.Graph { return n.graph }

// Matrix returns the all-pairs distance matrix.
func (n *Navigator) Matrix() *matrix.DistanceMatrix { return n.dist }

// Resolver returns the location resolver.
func (n *Navigator) Resolver() *locate.Resolver { return n.resolver }

// Report returns the build report (accepted counts and skipped records).
func (n *Navigator) Report() builder.Report { return n.report }

// Resolve maps id to a node of this graph.
func (n *Navigator) Resolve(id string) (string, bool) {
	node, ok := n.resolver.Resolve(id)
	if !ok || !n.graph.HasNode(node) {
		return "", false
	}

	return node, true
}
