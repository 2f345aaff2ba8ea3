// Package report renders navigator results as human-readable text.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/indoornav/navigator"
)

const (
	wideRule   = 60
	narrowRule = 50
)

// Info writes the graph census.
func Info(w io.Writer, info navigator.Info) error {
	rule := strings.Repeat("=", narrowRule)
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)

	fmt.Fprintf(tw, "\n%s\nNavigation Graph Information (format v%s)\n%s\n", rule, info.FormatVersion, rule)
	fmt.Fprintf(tw, "Total Nodes:\t%d\n", info.Nodes)
	fmt.Fprintf(tw, "Total Edges:\t%d\n", info.Edges)
	fmt.Fprintf(tw, "Bidirectional Edges:\t%d\n", info.Bidirectional)
	fmt.Fprintf(tw, "Unidirectional Edges:\t%d\n", info.Unidirectional)
	fmt.Fprintf(tw, "Connected Components:\t%d\n", info.Components)
	fmt.Fprintf(tw, "POIs / Rooms:\t%d / %d\n", info.POIs, info.Rooms)
	if info.SkippedRecords > 0 {
		fmt.Fprintf(tw, "Skipped Records:\t%d\n", info.SkippedRecords)
	}

	fmt.Fprintf(tw, "\nNodes per floor:\n")
	for _, f := range info.Floors {
		fmt.Fprintf(tw, "  Floor %d:\t%d nodes\n", f, info.NodesPerFloor[f])
	}

	fmt.Fprintf(tw, "\nEdge Statistics:\n")
	fmt.Fprintf(tw, "  Total Distance:\t%.2fm\n", info.TotalDistance)
	fmt.Fprintf(tw, "  Average Edge Length:\t%.2fm\n", info.AverageDistance)
	fmt.Fprintf(tw, "%s\n\n", rule)

	return tw.Flush()
}

// Route writes a route with its numbered instructions.
func Route(w io.Writer, r navigator.Route) error {
	rule := strings.Repeat("=", wideRule)
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\nRoute: %s -> %s\n%s\n", rule, r.Start, r.End, rule)
	fmt.Fprintf(&b, "Total Distance: %.1fm\n", r.Distance)
	fmt.Fprintf(&b, "Number of Steps: %d\n", r.StepCount)
	fmt.Fprintf(&b, "Path: %s\n", strings.Join(r.Path, " -> "))
	fmt.Fprintf(&b, "\nTurn-by-turn Instructions:\n%s\n", strings.Repeat("-", wideRule))
	for i, s := range r.Steps {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, s.Text)
		fmt.Fprintf(&b, "    Cumulative: %.1fm\n", s.Cumulative)
	}
	fmt.Fprintf(&b, "%s\n\n", rule)

	_, err := io.WriteString(w, b.String())

	return err
}

// NoRoute writes the no-path message.
func NoRoute(w io.Writer, start, end string) error {
	_, err := fmt.Fprintf(w, "\nNo route found between %s and %s\n", start, end)

	return err
}

// Nearby writes up to limit POIs; limit <= 0 writes all.
func Nearby(w io.Writer, pois []navigator.Nearby, limit int) error {
	if limit > 0 && len(pois) > limit {
		pois = pois[:limit]
	}
	var b strings.Builder
	b.WriteString("\nNearby POIs at destination:\n")
	if len(pois) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, p := range pois {
		fmt.Fprintf(&b, "  * %s (%s) - %.1fm\n", p.Name, p.Kind, p.Distance)
	}

	_, err := io.WriteString(w, b.String())

	return err
}
