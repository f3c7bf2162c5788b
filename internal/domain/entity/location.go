package entity

import "github.com/paulmach/orb"

// Coordinate is a WGS84 position in degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Point converts the coordinate to an orb point (longitude first).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// Location is a place where services are performed. Locations are grouped by
// city, which is the unit of operator assignment.
type Location struct {
	ID         string      `json:"id"`
	City       string      `json:"city"`
	Name       string      `json:"name"`
	Area       float64     `json:"area"` // Square meters; zero while unknown.
	Coordinate *Coordinate `json:"coordinate,omitempty"`
}

// HasCoordinate reports whether the location can take part in GPS matching.
func (l Location) HasCoordinate() bool {
	return l.Coordinate != nil
}
