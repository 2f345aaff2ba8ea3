package navigator

import "time"

// Info is a census of the loaded map.
type Info struct {
	FormatVersion string `json:"format_version"`
	EdgeType      string `json:"edge_type"`

	Nodes          int         `json:"nodes"`
	Edges          int         `json:"edges"`
	Bidirectional  int         `json:"bidirectional_edges"`
	Unidirectional int         `json:"unidirectional_edges"`
	NodesPerFloor  map[int]int `json:"nodes_per_floor"`
	Floors         []int       `json:"floors"`

	TotalDistance   float64 `json:"total_distance"`
	AverageDistance float64 `json:"average_edge_length"`

	Components     int `json:"components"`
	POIs           int `json:"pois"`
	Rooms          int `json:"rooms"`
	SkippedRecords int `json:"skipped_records"`

	LoadedAt time.Time `json:"loaded_at"`
}

// Info summarizes the graph and its locations.
func (n *Navigator) Info() Info {
	s := n.graph.Stats()
	pois, rooms := n.resolver.Registry().Len()

	return Info{
		FormatVersion:   n.formatVersion,
		EdgeType:        n.edgeType,
		Nodes:           s.Nodes,
		Edges:           s.Edges,
		Bidirectional:   s.Bidirectional,
		Unidirectional:  s.Unidirectional,
		NodesPerFloor:   s.NodesPerFloor,
		Floors:          s.Floors,
		TotalDistance:   s.TotalDistance,
		AverageDistance: s.AverageDistance,
		Components:      n.components,
		POIs:            pois,
		Rooms:           rooms,
		SkippedRecords:  len(n.report.Warnings),
		LoadedAt:        n.loadedAt,
	}
}
