package mcptools

import "github.com/katalvlaran/indoornav/navigator"

// --- Tool Arguments ---

type NavigateArgs struct {
	From string `json:"from" jsonschema:"Start location: a navigation node, POI or room ID"`
	To   string `json:"to" jsonschema:"Destination: a navigation node, POI or room ID"`
}

type NavigateResult struct {
	Found        bool     `json:"found"`
	StartNode    string   `json:"start_node,omitempty"`
	EndNode      string   `json:"end_node,omitempty"`
	Path         []string `json:"path,omitempty"`
	Distance     float64  `json:"distance"`
	Instructions []string `json:"instructions,omitempty"`
}

type NearbyArgs struct {
	From  string  `json:"from" jsonschema:"Location to search around"`
	Max   float64 `json:"max,omitempty" jsonschema:"Maximum walking distance in meters (server default when omitted)"`
	Limit int     `json:"limit,omitempty" jsonschema:"Max number of results (server default when omitted)"`
}

type NearbyResult struct {
	POIs []navigator.Nearby `json:"pois"`
}
