// Package mcptools exposes the navigator as Model Context Protocol tools so
// that an assistant can ask for directions over stdio.
package mcptools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/katalvlaran/indoornav/config"
	"github.com/katalvlaran/indoornav/navigator"
)

// Provider returns the navigator to query. It is called once per tool call.
type Provider func() *navigator.Navigator

// Service implements the tool handlers.
type Service struct {
	nav    Provider
	nearby config.NearbyConfig
}

func NewService(nav Provider, nearby config.NearbyConfig) *Service {
	return &Service{nav: nav, nearby: nearby}
}

// --- Tool Handlers ---

func (s *Service) Navigate(ctx context.Context, req *mcp.CallToolRequest, args NavigateArgs) (*mcp.CallToolResult, NavigateResult, error) {
	if args.From == "" || args.To == "" {
		return nil, NavigateResult{}, errors.New("both 'from' and 'to' are required")
	}

	route, ok, err := s.nav().Navigate(args.From, args.To)
	if err != nil {
		return nil, NavigateResult{}, err
	}
	if !ok {
		return text(fmt.Sprintf("No route found between %s and %s.", args.From, args.To)), NavigateResult{}, nil
	}

	res := NavigateResult{
		Found:        true,
		StartNode:    route.StartNode,
		EndNode:      route.EndNode,
		Path:         route.Path,
		Distance:     route.Distance,
		Instructions: route.Instructions,
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Route %s -> %s, %.1fm in %d steps:\n", args.From, args.To, route.Distance, route.StepCount)
	for i, step := range route.Steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	if len(route.Steps) == 0 {
		fmt.Fprintf(&b, "Already at %s.\n", route.EndNode)
	}

	return text(b.String()), res, nil
}

func (s *Service) NearbyPOIs(ctx context.Context, req *mcp.CallToolRequest, args NearbyArgs) (*mcp.CallToolResult, NearbyResult, error) {
	if args.From == "" {
		return nil, NearbyResult{}, errors.New("'from' is required")
	}
	radius := args.Max
	if radius <= 0 {
		radius = s.nearby.Radius
	}
	limit := args.Limit
	if limit <= 0 {
		limit = s.nearby.Limit
	}

	pois, err := s.nav().NearbyPOIs(args.From, radius)
	if err != nil {
		return nil, NearbyResult{}, err
	}
	if limit > 0 && len(pois) > limit {
		pois = pois[:limit]
	}

	return nil, NearbyResult{POIs: pois}, nil
}

func text(s string) *mcp.CallToolResult {
	return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: s}}}
}
