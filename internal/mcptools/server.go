package mcptools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/katalvlaran/indoornav/config"
)

// NewServer registers the navigate and nearby_pois tools.
func NewServer(nav Provider, nearby config.NearbyConfig, version string) *mcp.Server {
	service := NewService(nav, nearby)

	s := mcp.NewServer(&mcp.Implementation{
		Name:    "indoornav",
		Version: version,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "navigate",
		Description: "Find the shortest walking route between two indoor locations (rooms, POIs or navigation nodes) with turn-by-turn instructions.",
	}, service.Navigate)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "nearby_pois",
		Description: "List points of interest (elevators, stairs, toilets, ...) within walking distance of a location, nearest first.",
	}, service.NearbyPOIs)

	return s
}

// Serve runs s over stdio until ctx is cancelled or the client disconnects.
func Serve(ctx context.Context, s *mcp.Server) error {
	return s.Run(ctx, &mcp.StdioTransport{})
}
