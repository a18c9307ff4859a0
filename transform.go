package geokit

import (
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/proj"
)

// Projects locations and geometries onto the grid of one fixed UTM zone. Unlike
// ConvertToUTM, which picks the zone containing each position, a projector keeps every
// coordinate in its own zone, so shapes crossing a zone boundary stay on a single grid.
//
// The Forward and Inverse methods have the proj.Transformer signature, so they can be
// passed to the Transform method of any geom.Geom.
type UTMProjector struct {
	Datum GeodeticDatum
	Zone  UTMZone
}

var (
	_ proj.Transformer = UTMProjector{}.Forward
	_ proj.Transformer = UTMProjector{}.Inverse
)

func NewUTMProjector(gd GeodeticDatum, zone UTMZone) UTMProjector {
	return UTMProjector{
		Datum: gd,
		Zone:  zone,
	}
}

// A projector for the zone containing the given position.
func NewUTMProjectorAt(gd GeodeticDatum, pos Position) UTMProjector {
	return NewUTMProjector(gd, ZoneFromPosition(pos))
}

func (p UTMProjector) Name() string {
	return "utm-" + p.Zone.String()
}

// Project a longitude and latitude, in degrees, to easting and northing in the
// projector's zone.
func (p UTMProjector) Forward(lon float64, lat float64) (x float64, y float64, err error) {
	pos := NewPosition(lat, lon)
	if !pos.isFinite() {
		return 0, 0, NewLocationOutOfBoundsError(pos)
	}
	utm := ConvertToUTMZone(p.Datum, pos, p.Zone)
	return utm.easting, utm.northing, nil
}

// Convert an easting and northing in the projector's zone back to longitude and latitude,
// in degrees.
func (p UTMProjector) Inverse(x float64, y float64) (lon float64, lat float64, err error) {
	if !isFinite(x) || !isFinite(y) {
		return 0, 0, NewLocationOutOfBoundsError(geom.Point{X: x, Y: y})
	}
	pos := NewUTMPosition(p.Zone, x, y).Position(p.Datum)
	return pos.Longitude, pos.Latitude, nil
}

// Project a geometry whose coordinates are longitude (X) and latitude (Y).
func (p UTMProjector) Project(g geom.Geom) (geom.Geom, error) {
	return g.Transform(p.Forward)
}

// Convert a geometry in the projector's zone back to longitude (X) and latitude (Y).
func (p UTMProjector) Unproject(g geom.Geom) (geom.Geom, error) {
	return g.Transform(p.Inverse)
}

// Express any supported location as a UTM position in the projector's zone. UTM positions
// from another zone, or from a different datum, are carried over through their
// latitude / longitude, with no shift between datums. A bare UTMPosition is assumed to
// share the projector's datum.
func (p UTMProjector) ToUTM(loc Location) (UTMPosition, error) {
	switch val := loc.(type) {
	case Position:
		x, y, err := p.Forward(val.Longitude, val.Latitude)
		if err != nil {
			return UTMPosition{}, err
		}
		return NewUTMPosition(p.Zone, x, y), nil
	case geom.Point:
		return p.ToUTM(PositionFromPoint(val))
	case *geom.Point:
		if val == nil {
			return UTMPosition{}, NewLocationNotSupportedError(p.Name(), loc)
		}
		return p.ToUTM(*val)
	case UTMPosition:
		if val.zone == p.Zone {
			return val, nil
		}
		return p.ToUTM(val.Position(p.Datum))
	case DatumUTMPosition:
		if val.zone == p.Zone && val.Datum == p.Datum {
			return val.UTMPosition, nil
		}
		return p.ToUTM(val.Position())
	default:
		return UTMPosition{}, NewLocationNotSupportedError(p.Name(), loc)
	}
}

// Express any supported location as latitude / longitude on the projector's datum.
func (p UTMProjector) ToPosition(loc Location) (Position, error) {
	switch val := loc.(type) {
	case Position:
		return val, nil
	case geom.Point:
		return PositionFromPoint(val), nil
	case UTMPosition:
		return val.Position(p.Datum), nil
	case DatumUTMPosition:
		return val.Position(), nil
	default:
		return Position{}, NewLocationNotSupportedError(p.Name(), loc)
	}
}
