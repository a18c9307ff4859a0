package geokit

import (
	"fmt"
	"math"
	"strings"

	"github.com/ctessum/geom"
	"github.com/spf13/cast"
)

const (
	// False easting, placed at the central meridian of every zone.
	FalseEasting = 500000
	// False northing of 10,000 km, used in the southern hemisphere.
	FalseNorthing = 10000000
	// Scale factor along the central meridian.
	K0 = 0.9996

	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// A UTM position is a zone plus an easting and northing in meters.
//
// A UTM position does not record the datum that produced it. The same datum must be passed
// again to convert it back to a Position; using a different one silently gives a wrong
// answer. Use WithDatum to carry the datum along with the coordinates.
type UTMPosition struct {
	zone     UTMZone
	easting  float64
	northing float64
}

func NewUTMPosition(zone UTMZone, easting float64, northing float64) UTMPosition {
	return UTMPosition{
		zone:     zone,
		easting:  easting,
		northing: northing,
	}
}

// Convert a latitude / longitude position to UTM, in the zone containing the position.
// Any finite position is accepted, but accuracy degrades towards the poles and far from
// the central meridian.
func ConvertToUTM(gd GeodeticDatum, pos Position) UTMPosition {
	return ConvertToUTMZone(gd, pos, ZoneFromPosition(pos))
}

// Convert a position to UTM coordinates relative to the given zone, which need not be the
// zone containing the position. Useful for keeping a shape that straddles a zone boundary
// on one grid. The false northing follows the hemisphere of the zone.
func ConvertToUTMZone(gd GeodeticDatum, pos Position, zone UTMZone) UTMPosition {
	a := gd.EquatorialRadius()
	e2 := gd.EccentricitySquared()
	ep2 := e2 / (1 - e2)
	lat := pos.Latitude * degToRad
	lon := pos.Longitude * degToRad
	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	tanLat := math.Tan(lat)

	// nu is the distance to the polar axis
	nu := a / math.Sqrt(1-e2*sinLat*sinLat)
	p := lon - zone.Meridian()
	t := tanLat * tanLat
	t2 := t * t
	c := ep2 * cosLat * cosLat
	A := p * cosLat
	M := gd.MeridionalArc(lat)

	easting := K0*nu*(A+
		(1-t+c)*math.Pow(A, 3)/6+
		(5-18*t+t2+72*c-58*ep2)*math.Pow(A, 5)/120) + FalseEasting
	northing := K0 * (M + nu*tanLat*(A*A/2+
		(5-t+9*c+4*c*c)*math.Pow(A, 4)/24+
		(61-58*t+t2+600*c-330*ep2)*math.Pow(A, 6)/720))
	// in the southern hemisphere, count from the south pole
	if !zone.northern {
		northing += FalseNorthing
	}
	return UTMPosition{
		zone:     zone,
		easting:  easting,
		northing: northing,
	}
}

func (u UTMPosition) Zone() UTMZone {
	return u.zone
}

// Easting in meters, including the false easting.
func (u UTMPosition) Easting() float64 {
	return u.easting
}

// Northing in meters, including the false northing in the southern hemisphere.
func (u UTMPosition) Northing() float64 {
	return u.northing
}

// Convert back to latitude / longitude. The datum must be the one the coordinates were
// produced with; this is not, and cannot be, checked.
func (u UTMPosition) Position(gd GeodeticDatum) Position {
	a := gd.EquatorialRadius()
	e2 := gd.EccentricitySquared()
	ep2 := e2 / (1 - e2)
	e1 := (1 - math.Sqrt(1-e2)) / (1 + math.Sqrt(1-e2))

	x := u.easting - FalseEasting
	y := u.northing
	if !u.zone.northern {
		y -= FalseNorthing
	}

	M := y / K0
	mu := M / gd.rectifyingScale()

	// footprint latitude
	phi := mu +
		(3*e1/2-27*math.Pow(e1, 3)/32)*math.Sin(2*mu) +
		(21*e1*e1/16-55*math.Pow(e1, 4)/32)*math.Sin(4*mu) +
		(151*math.Pow(e1, 3)/96)*math.Sin(6*mu)

	sinPhi := math.Sin(phi)
	cosPhi := math.Cos(phi)
	tanPhi := math.Tan(phi)
	con := 1 - e2*sinPhi*sinPhi
	n1 := a / math.Sqrt(con)
	t1 := tanPhi * tanPhi
	t2 := t1 * t1
	c1 := ep2 * cosPhi * cosPhi
	c2 := c1 * c1
	r1 := a * (1 - e2) / math.Pow(con, 1.5)
	d := x / (n1 * K0)

	lat := phi - (n1*tanPhi/r1)*(d*d/2-
		(5+3*t1+10*c1-4*c2-9*ep2)*math.Pow(d, 4)/24+
		(61+90*t1+298*c1+45*t2-252*ep2-3*c2)*math.Pow(d, 6)/720)
	lon := (d - (1+2*t1+c1)*math.Pow(d, 3)/6 +
		(5-2*c1+28*t1-3*c2+8*ep2+24*t2)*math.Pow(d, 5)/120) / cosPhi
	lon += u.zone.Meridian()

	return Position{
		Latitude:  lat * radToDeg,
		Longitude: lon * radToDeg,
	}
}

// The easting and northing as a geom.Point.
func (u UTMPosition) Point() geom.Point {
	return geom.Point{X: u.easting, Y: u.northing}
}

// Attach the datum the coordinates were produced with.
func (u UTMPosition) WithDatum(gd GeodeticDatum) DatumUTMPosition {
	return DatumUTMPosition{UTMPosition: u, Datum: gd}
}

// Formats as zone, easting and northing separated by spaces, e.g. "15N 500000.000 4982950.400".
func (u UTMPosition) String() string {
	return fmt.Sprintf("%s %.3f %.3f", u.zone, u.easting, u.northing)
}

// Parse the text produced by UTMPosition.String. Any amount of whitespace may separate
// the three fields.
func ParseUTMPosition(s string) (UTMPosition, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return UTMPosition{}, fmt.Errorf("%q: expected zone, easting and northing: %w", s, ErrMalformedUTM)
	}
	zone, err := ParseUTMZone(fields[0])
	if err != nil {
		return UTMPosition{}, err
	}
	easting, err := cast.ToFloat64E(fields[1])
	if err != nil {
		return UTMPosition{}, fmt.Errorf("easting %q: %w", fields[1], ErrMalformedUTM)
	}
	northing, err := cast.ToFloat64E(fields[2])
	if err != nil {
		return UTMPosition{}, fmt.Errorf("northing %q: %w", fields[2], ErrMalformedUTM)
	}
	return NewUTMPosition(zone, easting, northing), nil
}

// A UTM position bundled with the datum that produced it, so the inverse conversion needs
// no extra argument.
type DatumUTMPosition struct {
	UTMPosition
	Datum GeodeticDatum
}

// Convert a position to UTM and keep the datum with the result.
func ConvertToDatumUTM(gd GeodeticDatum, pos Position) DatumUTMPosition {
	return ConvertToUTM(gd, pos).WithDatum(gd)
}

// Convert back to latitude / longitude with the bundled datum.
func (d DatumUTMPosition) Position() Position {
	return d.UTMPosition.Position(d.Datum)
}
