package geo

import "fmt"

// Point is a geographic coordinate stored in GeoJSON order (longitude first).
type Point struct {
	Lng float64
	Lat float64
}

// FromCoordinates builds a Point from a GeoJSON [lng, lat] pair.
func FromCoordinates(coords [2]float64) Point {
	return Point{Lng: coords[0], Lat: coords[1]}
}

// Coordinates returns p as a GeoJSON [lng, lat] pair.
func (p Point) Coordinates() [2]float64 {
	return [2]float64{p.Lng, p.Lat}
}

func (p Point) String() string {
	return fmt.Sprintf("[%.6f,%.6f]", p.Lng, p.Lat)
}

// Radius selects points within Km of Center.
type Radius struct {
	Center Point
	Km     float64
}

// Contains reports whether p lies within the radius, boundary included.
func (r Radius) Contains(p Point) bool {
	return DistanceKm(r.Center, p) <= r.Km
}
