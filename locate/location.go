// Package locate holds the semantic locations of a building (rooms and
// points of interest) and resolves them to navigation node IDs.
//
// Resolution order, first match wins:
//
//  1. the identifier is a navigation node → returned unchanged;
//  2. the identifier is a known POI → its first access node;
//  3. the identifier is a known room → its first access node;
//  4. otherwise resolution fails.
//
// Node IDs take precedence; room and POI namespaces are not assumed to be
// disjoint from node IDs. Only the first access node of a location is ever
// used, even when the location lists alternative entrances.
package locate

import (
	"fmt"
	"strings"
)

// Kind classifies a Location.
type Kind string

const (
	KindElevator    Kind = "elevator"
	KindStair       Kind = "stair"
	KindMenToilet   Kind = "men_toilet"
	KindWomenToilet Kind = "women_toilet"
	KindPOI         Kind = "poi"
	KindRoom        Kind = "room"
)

// ParseKind maps a feature type to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch k := Kind(s); k {
	case KindElevator, KindStair, KindMenToilet, KindWomenToilet, KindPOI, KindRoom:
		return k, true
	}

	return "", false
}

// IsPOI reports whether k is one of the point-of-interest kinds.
func (k Kind) IsPOI() bool {
	switch k {
	case KindElevator, KindStair, KindMenToilet, KindWomenToilet, KindPOI:
		return true
	}

	return false
}

// Location is a room or POI with its candidate access nodes in declared order.
type Location struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Kind        Kind     `json:"kind"`
	Floor       int      `json:"floor"`
	AccessNodes []string `json:"access_nodes"`
}

// Entrance returns the first access node, the only one used for routing.
func (l Location) Entrance() (string, bool) {
	if len(l.AccessNodes) == 0 {
		return "", false
	}

	return l.AccessNodes[0], true
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return fmt.Sprintf("%s(%s %q, floor %d)", l.Kind, l.ID, l.Name, l.Floor)
}

// ParseAccessNodes splits a semicolon-delimited vertex list. Segments are
// trimmed and blank ones dropped, so "" and ";" yield nil.
func ParseAccessNodes(field string) []string {
	var out []string
	for _, part := range strings.Split(field, ";") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
