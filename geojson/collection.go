package geojson

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/indoornav/builder"
	"github.com/katalvlaran/indoornav/core"
	"github.com/katalvlaran/indoornav/locate"
)

// ErrLoad wraps every failure to read or parse an input file.
var ErrLoad = errors.New("geojson: load failed")

const (
	// DefaultFormatVersion is assumed when the collection does not declare one.
	DefaultFormatVersion = "1.0"

	// ExplicitEdges is the only edge_type marker this decoder understands.
	ExplicitEdges = "explicit"
)

// Feature types.
const (
	TypePoint = "point"
	TypeEdge  = "edge"
	TypeRoom  = "room"
)

// Skipped describes a recognized feature that could not be decoded.
type Skipped struct {
	Index  int // position in the feature array
	Type   string
	ID     string
	Reason string
}

// String implements fmt.Stringer.
func (s Skipped) String() string {
	return fmt.Sprintf("feature #%d (%s %s): %s", s.Index, s.Type, s.ID, s.Reason)
}

// Collection is a decoded map export.
type Collection struct {
	FormatVersion string
	EdgeType      string

	Nodes []builder.NodeRecord
	Edges []builder.EdgeRecord
	POIs  []locate.Location
	Rooms []locate.Location

	Skipped []Skipped
	Ignored int // features with an unrecognized type
}

// ExplicitEdgeType reports whether the declared edge type is the supported one.
func (c *Collection) ExplicitEdgeType() bool { return c.EdgeType == ExplicitEdges }

// Load reads and decodes the file at path.
func Load(path string) (*Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Decode parses a FeatureCollection from r.
func Decode(r io.Reader) (*Collection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	c := &Collection{FormatVersion: DefaultFormatVersion}
	if top, ok := fc.ExtraMembers["properties"].(map[string]interface{}); ok {
		p := props(top)
		c.FormatVersion = p.str("format_version", DefaultFormatVersion)
		c.EdgeType = p.str("edge_type", "")
	}

	for i, f := range fc.Features {
		if f == nil {
			continue
		}
		c.feature(i, f)
	}

	return c, nil
}

func (c *Collection) feature(i int, f *geojson.Feature) {
	p := props(f.Properties)
	typ := p.str("type", "")
	id := p.str("id", "")
	if id == "" {
		if s, ok := f.ID.(string); ok {
			id = s
		}
	}

	switch typ {
	case TypePoint:
		pt, ok := f.Geometry.(orb.Point)
		if !ok {
			c.skip(i, typ, id, "point feature without Point geometry")
			return
		}
		c.Nodes = append(c.Nodes, builder.NodeRecord{
			ID:           id,
			X:            pt.X(),
			Y:            pt.Y(),
			Floor:        p.intPtr("floor"),
			Rotation:     p.str("rotation", ""),
			Index:        p.int("index", 0),
			Intersection: p.str("inct", ""),
			Attrs:        p.extra("type", "id", "floor", "rotation", "index", "inct"),
		})

	case TypeEdge:
		c.Edges = append(c.Edges, builder.EdgeRecord{
			ID:            id,
			From:          p.str("start_node", ""),
			To:            p.str("end_node", ""),
			Distance:      p.float("distance", 0),
			Bidirectional: p.boolPtr("bidirectional"),
			Weight:        p.floatPtr("weight"),
			Floor:         p.intPtr("floor"),
			Attrs: p.extra("type", "id", "start_node", "end_node", "distance",
				"bidirectional", "weight", "floor"),
		})

	default:
		kind, ok := locate.ParseKind(typ)
		if !ok {
			c.Ignored++
			return
		}
		if id == "" {
			c.skip(i, typ, id, "location without id")
			return
		}
		loc := locate.Location{
			ID:          id,
			Name:        p.str("name", id),
			Kind:        kind,
			Floor:       p.int("floor", core.DefaultFloor),
			AccessNodes: locate.ParseAccessNodes(p.str("vertex_id", "")),
		}
		if kind == locate.KindRoom {
			c.Rooms = append(c.Rooms, loc)
		} else {
			c.POIs = append(c.POIs, loc)
		}
	}
}

func (c *Collection) skip(i int, typ, id, reason string) {
	c.Skipped = append(c.Skipped, Skipped{Index: i, Type: typ, ID: id, Reason: reason})
}
