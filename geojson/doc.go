// Package geojson decodes the map editor's GeoJSON export into builder
// records and semantic locations.
//
// Each feature carries a "type" property:
//
//	point                                         navigation node (Point geometry)
//	edge                                          explicit edge
//	elevator, stair, men_toilet, women_toilet, poi  point of interest
//	room                                          room
//
// Any other type is ignored. Properties not consumed by the schema are kept
// in the records' Attrs bag. Numeric fields accept JSON numbers or numeric
// strings, booleans accept JSON booleans or "true"/"false".
package geojson
