package geokit

import "math"

// A geodetic datum is an ellipsoid approximating the shape of the Earth, described by
// its equatorial and polar radii. Datums are immutable; the eccentricity is derived once
// when the datum is created. The zero value is not a usable datum, create one with
// NewGeodeticDatum or use one of the catalog values below.
type GeodeticDatum struct {
	equatorialRadius float64 // meters
	polarRadius      float64 // meters
	eccentricity     float64 // first eccentricity, precomputed
}

// Create a new datum from its radii, in meters. Both radii must be finite and positive, and
// the polar radius may not exceed the equatorial radius, which keeps the eccentricity in [0, 1).
func NewGeodeticDatum(equatorialRadius float64, polarRadius float64) (GeodeticDatum, error) {
	if !isFinite(equatorialRadius) || !isFinite(polarRadius) ||
		equatorialRadius <= 0 || polarRadius <= 0 || polarRadius > equatorialRadius {
		return GeodeticDatum{}, NewInvalidDatumError(equatorialRadius, polarRadius)
	}
	ratio := polarRadius / equatorialRadius
	return GeodeticDatum{
		equatorialRadius: equatorialRadius,
		polarRadius:      polarRadius,
		eccentricity:     math.Sqrt(1 - ratio*ratio),
	}, nil
}

func mustGeodeticDatum(equatorialRadius float64, polarRadius float64) GeodeticDatum {
	gd, err := NewGeodeticDatum(equatorialRadius, polarRadius)
	if err != nil {
		panic("geokit: " + err.Error())
	}
	return gd
}

var (
	// World Geodetic System of 1984, used by GPS.
	WGS84 = mustGeodeticDatum(6378137, 6356752.3142)
	// North American Datum of 1983. Its ellipsoid is the same as WGS84.
	NAD83 = WGS84

	GRS80             = mustGeodeticDatum(6378137, 6356752.3141)
	WGS72             = mustGeodeticDatum(6378135, 6356750.5)
	Australian1965    = mustGeodeticDatum(6378160, 6356774.7)
	Krasovsky1940     = mustGeodeticDatum(6378245, 6356863)
	International1924 = mustGeodeticDatum(6378388, 6356911.9)
	Clarke1880        = mustGeodeticDatum(6378249.1, 6356514.9)
	Clarke1866        = mustGeodeticDatum(6378206.4, 6356583.8)
	Airy1830          = mustGeodeticDatum(6377563.4, 6356256.9)
	Bessel1841        = mustGeodeticDatum(6377397.2, 6356079)
	Everest1830       = mustGeodeticDatum(6377276.3, 6356075.4)

	// A perfect sphere with the WGS84 equatorial radius. Only the zoom level scales are
	// derived from it.
	Spherical = mustGeodeticDatum(6378137, 6378137)
)

// Radius at the equator, in meters.
func (gd GeodeticDatum) EquatorialRadius() float64 {
	return gd.equatorialRadius
}

// Radius at the poles, in meters.
func (gd GeodeticDatum) PolarRadius() float64 {
	return gd.polarRadius
}

func (gd GeodeticDatum) Eccentricity() float64 {
	return gd.eccentricity
}

// The square of the eccentricity, which is the form the projection series use.
func (gd GeodeticDatum) EccentricitySquared() float64 {
	return gd.eccentricity * gd.eccentricity
}

// The second eccentricity squared, e²/(1-e²).
func (gd GeodeticDatum) SecondEccentricitySquared() float64 {
	e2 := gd.EccentricitySquared()
	return e2 / (1 - e2)
}

// Flattening of the ellipsoid, (a-b)/a. Zero for a sphere.
func (gd GeodeticDatum) Flattening() float64 {
	return (gd.equatorialRadius - gd.polarRadius) / gd.equatorialRadius
}

// Radius of curvature in the prime vertical at the given latitude (radians), which is the
// distance from the surface to the polar axis along the normal.
func (gd GeodeticDatum) PrimeVerticalRadius(lat float64) float64 {
	sinLat := math.Sin(lat)
	return gd.equatorialRadius / math.Sqrt(1-gd.EccentricitySquared()*sinLat*sinLat)
}

// Arc length along a meridian from the equator to the given latitude (radians), in meters.
// Uses the fourth order series in the eccentricity, which is accurate to well under a
// millimeter up to about 80 degrees of latitude.
func (gd GeodeticDatum) MeridionalArc(lat float64) float64 {
	e2 := gd.EccentricitySquared()
	e4 := e2 * e2
	e6 := e4 * e2
	return gd.equatorialRadius * ((1-e2/4-3*e4/64-5*e6/256)*lat -
		(3*e2/8+3*e4/32+45*e6/1024)*math.Sin(2*lat) +
		(15*e4/256+45*e6/1024)*math.Sin(4*lat) -
		(35*e6/3072)*math.Sin(6*lat))
}

// the footprint latitude divisor, the first term of the meridional arc series
func (gd GeodeticDatum) rectifyingScale() float64 {
	e2 := gd.EccentricitySquared()
	return gd.equatorialRadius * (1 - e2/4 - 3*e2*e2/64 - 5*e2*e2*e2/256)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
