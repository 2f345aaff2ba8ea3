package locate

import (
	"errors"
	"fmt"

	"github.com/tidwall/btree"
)

var (
	// ErrEmptyID indicates a location without an identifier.
	ErrEmptyID = errors.New("locate: location ID is empty")

	// ErrWrongKind indicates a room passed to AddPOI or a POI passed to AddRoom.
	ErrWrongKind = errors.New("locate: wrong location kind")
)

// Registry stores POIs and rooms keyed by ID, iterated in ascending ID order.
// It is filled once at load time and read-only afterwards.
type Registry struct {
	pois  *btree.BTreeG[Location]
	rooms *btree.BTreeG[Location]
}

func byID(a, b Location) bool { return a.ID < b.ID }

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		pois:  btree.NewBTreeG[Location](byID),
		rooms: btree.NewBTreeG[Location](byID),
	}
}

// AddPOI stores loc, replacing an earlier POI with the same ID (replaced == true).
// An empty Kind defaults to KindPOI and an empty Name to the ID.
func (r *Registry) AddPOI(loc Location) (replaced bool, err error) {
	if loc.Kind == "" {
		loc.Kind = KindPOI
	}
	if !loc.Kind.IsPOI() {
		return false, fmt.Errorf("%w: %s is %q", ErrWrongKind, loc.ID, loc.Kind)
	}

	return add(r.pois, loc)
}

// AddRoom stores loc as a room, replacing an earlier room with the same ID.
func (r *Registry) AddRoom(loc Location) (replaced bool, err error) {
	if loc.Kind == "" {
		loc.Kind = KindRoom
	}
	if loc.Kind != KindRoom {
		return false, fmt.Errorf("%w: %s is %q", ErrWrongKind, loc.ID, loc.Kind)
	}

	return add(r.rooms, loc)
}

func add(tree *btree.BTreeG[Location], loc Location) (bool, error) {
	if loc.ID == "" {
		return false, ErrEmptyID
	}
	if loc.Name == "" {
		loc.Name = loc.ID
	}
	loc.AccessNodes = append([]string(nil), loc.AccessNodes...)
	_, replaced := tree.Set(loc)

	return replaced, nil
}

// POI looks up a point of interest.
func (r *Registry) POI(id string) (Location, bool) {
	return r.pois.Get(Location{ID: id})
}

// Room looks up a room.
func (r *Registry) Room(id string) (Location, bool) {
	return r.rooms.Get(Location{ID: id})
}

// POIs returns every POI in ascending ID order.
func (r *Registry) POIs() []Location { return collect(r.pois) }

// Rooms returns every room in ascending ID order.
func (r *Registry) Rooms() []Location { return collect(r.rooms) }

// Len returns the POI and room counts.
func (r *Registry) Len() (pois, rooms int) { return r.pois.Len(), r.rooms.Len() }

func collect(tree *btree.BTreeG[Location]) []Location {
	out := make([]Location, 0, tree.Len())
	tree.Scan(func(loc Location) bool {
		out = append(out, loc)
		return true
	})

	return out
}
