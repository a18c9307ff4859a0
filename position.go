package geokit

import (
	"fmt"

	"github.com/ctessum/geom"
)

// Anything that identifies a place and can be handed to a UTMProjector: a Position, a
// geom.Point in longitude/latitude order, a UTMPosition or a DatumUTMPosition.
type Location interface{}

// A position is a latitude / longitude pair, in degrees. Together with a geodetic datum
// it identifies a place on the Earth. Positions are not normalized.
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewPosition(lat float64, lon float64) Position {
	return Position{
		Latitude:  lat,
		Longitude: lon,
	}
}

// The position as a geom.Point, X holding the longitude and Y the latitude, which is the
// axis order the geom and proj packages use for geographic coordinates.
func (p Position) Point() geom.Point {
	return geom.Point{X: p.Longitude, Y: p.Latitude}
}

// Inverse of Position.Point.
func PositionFromPoint(pt geom.Point) Position {
	return NewPosition(pt.Y, pt.X)
}

func (p Position) String() string {
	return fmt.Sprintf("%.9f,%.9f", p.Latitude, p.Longitude)
}

func (p Position) isFinite() bool {
	return isFinite(p.Latitude) && isFinite(p.Longitude)
}
