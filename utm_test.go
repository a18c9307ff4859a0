package geokit

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/ctessum/geom/proj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// round trip tolerance, in degrees, for positions within 45 degrees of the equator and
// 2 degrees of the central meridian
const roundTripEpsilon = 0.000000002

// looser tolerance for the full zone width up to 80 degrees, where the truncated
// footprint latitude series loses a few more digits
const wideRoundTripEpsilon = 0.00000001

var catalogDatums = map[string]GeodeticDatum{
	"WGS84":             WGS84,
	"GRS80":             GRS80,
	"WGS72":             WGS72,
	"Australian1965":    Australian1965,
	"Krasovsky1940":     Krasovsky1940,
	"International1924": International1924,
	"Clarke1880":        Clarke1880,
	"Clarke1866":        Clarke1866,
	"Airy1830":          Airy1830,
	"Bessel1841":        Bessel1841,
	"Everest1830":       Everest1830,
	"Spherical":         Spherical,
}

func TestConvertKnownVectors(t *testing.T) {
	testCases := []struct {
		lat      float64
		lon      float64
		zone     int
		easting  float64
		northing float64
	}{
		{45, -93, 15, 500000, 4982950.400429002},
		{45, -94, 15, 421184.69708298746, 4983436.7685517482},
		{39, -122, 10, 586592.67802760156, 4317252.164704174},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%g,%g", tc.lat, tc.lon), func(t *testing.T) {
			utm := ConvertToUTM(WGS84, NewPosition(tc.lat, tc.lon))
			zone, err := NewUTMZone(tc.zone, true)
			require.NoError(t, err)
			assert.Equal(t, zone, utm.Zone())
			assert.InDelta(t, tc.easting, utm.Easting(), 1e-6)
			assert.InDelta(t, tc.northing, utm.Northing(), 1e-6)

			pos := utm.Position(WGS84)
			assert.InDelta(t, tc.lat, pos.Latitude, roundTripEpsilon)
			assert.InDelta(t, tc.lon, pos.Longitude, roundTripEpsilon)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for name, gd := range catalogDatums {
		t.Run(name, func(t *testing.T) {
			for lat := -45.0; lat <= 45; lat += 2.5 {
				for _, offset := range []float64{-1.9, -1.2, -0.5, 0, 0.3, 1.1, 1.9} {
					for _, meridian := range []float64{-177, -93, 3, 21, 171} {
						pos := NewPosition(lat, meridian+offset)
						back := ConvertToUTM(gd, pos).Position(gd)
						if math.Abs(back.Latitude-pos.Latitude) > roundTripEpsilon ||
							math.Abs(back.Longitude-pos.Longitude) > roundTripEpsilon {
							t.Errorf("round trip of %v gave %v", pos, back)
						}
					}
				}
			}
		})
	}
}

func TestRoundTripFullZone(t *testing.T) {
	for name, gd := range catalogDatums {
		t.Run(name, func(t *testing.T) {
			for lat := -79.5; lat < 80; lat += 3 {
				for offset := -2.9; offset < 3; offset += 0.4 {
					pos := NewPosition(lat, -93+offset)
					back := ConvertToUTM(gd, pos).Position(gd)
					if math.Abs(back.Latitude-pos.Latitude) > wideRoundTripEpsilon ||
						math.Abs(back.Longitude-pos.Longitude) > wideRoundTripEpsilon {
						t.Errorf("round trip of %v gave %v", pos, back)
					}
				}
			}
		})
	}
}

func TestSouthernHemisphere(t *testing.T) {
	for _, lat := range []float64{0.5, 10, 33.9, 45, 60, 79} {
		for _, lon := range []float64{-94, 18.4, 151.2} {
			north := ConvertToUTM(WGS84, NewPosition(lat, lon))
			south := ConvertToUTM(WGS84, NewPosition(-lat, lon))
			assert.False(t, south.Zone().Northern())
			assert.Equal(t, north.Zone().Number(), south.Zone().Number())
			assert.InDelta(t, north.Easting(), south.Easting(), 1e-6)
			// mirrored about the equator, counted up from the false northing
			assert.InDelta(t, FalseNorthing-north.Northing(), south.Northing(), 1e-6)
			assert.Less(t, south.Northing(), float64(FalseNorthing))
			assert.Greater(t, south.Northing(), 0.0)

			back := south.Position(WGS84)
			assert.InDelta(t, -lat, back.Latitude, wideRoundTripEpsilon)
			assert.InDelta(t, lon, back.Longitude, wideRoundTripEpsilon)
		}
	}
}

func TestEquator(t *testing.T) {
	utm := ConvertToUTM(WGS84, NewPosition(0, 3))
	assert.True(t, utm.Zone().Northern())
	assert.Equal(t, 31, utm.Zone().Number())
	assert.InDelta(t, float64(FalseEasting), utm.Easting(), 1e-9)
	assert.InDelta(t, 0, utm.Northing(), 1e-9)
}

func TestConvertToUTMZone(t *testing.T) {
	pos := NewPosition(45, -96.5) // zone 14, close to 15
	zone15, err := NewUTMZone(15, true)
	require.NoError(t, err)

	derived := ConvertToUTM(WGS84, pos)
	assert.Equal(t, 14, derived.Zone().Number())
	assert.Equal(t, derived, ConvertToUTMZone(WGS84, pos, derived.Zone()))

	forced := ConvertToUTMZone(WGS84, pos, zone15)
	assert.Equal(t, zone15, forced.Zone())
	assert.Less(t, forced.Easting(), float64(FalseEasting))
	// 3.5 degrees off the meridian the series is good to about a ten millionth of a degree
	back := forced.Position(WGS84)
	assert.InDelta(t, pos.Latitude, back.Latitude, 1e-7)
	assert.InDelta(t, pos.Longitude, back.Longitude, 1e-7)

	// a southern zone applies the false northing to a northern position
	zone15S, err := NewUTMZone(15, false)
	require.NoError(t, err)
	southern := ConvertToUTMZone(WGS84, pos, zone15S)
	assert.InDelta(t, forced.Northing()+FalseNorthing, southern.Northing(), 1e-6)
}

func TestMatchesReferenceUTM(t *testing.T) {
	positions := []Position{
		NewPosition(45, -93),
		NewPosition(45, -94),
		NewPosition(39, -122),
		NewPosition(60, 10.5),
		NewPosition(-33.9, 18.4),
		NewPosition(-45, 170.2),
		NewPosition(70.6, 23.7),
	}
	for _, pos := range positions {
		utm := ConvertToUTM(WGS84, pos)
		def := fmt.Sprintf("+proj=utm +zone=%d +a=%.4f +b=%.4f +no_defs",
			utm.Zone().Number(), WGS84.EquatorialRadius(), WGS84.PolarRadius())
		if !utm.Zone().Northern() {
			def += " +south"
		}
		sr, err := proj.Parse(def)
		require.NoError(t, err)
		forward, _, err := sr.Transformers()
		require.NoError(t, err)

		lat := pos.Latitude * math.Pi / 180
		x, y, err := forward(pos.Longitude*math.Pi/180, lat)
		require.NoError(t, err)
		assert.InDelta(t, x, utm.Easting(), 0.001, "easting of %v", pos)

		// geom/proj evaluates its sin(6φ) meridional arc coefficient as 35/3072 in
		// integer constants, which is zero, so its northings lack up to 2.2 cm of arc
		missing := K0 * WGS84.EquatorialRadius() * 35 * math.Pow(WGS84.EccentricitySquared(), 3) / 3072 * math.Sin(6*lat)
		assert.InDelta(t, 0.0, y-utm.Northing(), 0.03, "northing of %v", pos)
		assert.InDelta(t, y-missing, utm.Northing(), 0.001, "northing of %v", pos)
	}
}

func TestDatumUTMPosition(t *testing.T) {
	pos := NewPosition(51.5, -0.12)
	bundled := ConvertToDatumUTM(Airy1830, pos)
	assert.Equal(t, Airy1830, bundled.Datum)
	assert.Equal(t, ConvertToUTM(Airy1830, pos), bundled.UTMPosition)

	back := bundled.Position()
	assert.InDelta(t, pos.Latitude, back.Latitude, wideRoundTripEpsilon)
	assert.InDelta(t, pos.Longitude, back.Longitude, wideRoundTripEpsilon)

	// the bare coordinates still need the datum, and the wrong one gives a different place
	wrong := bundled.UTMPosition.Position(WGS84)
	assert.Greater(t, math.Abs(wrong.Latitude-pos.Latitude), 1e-6)
}

func TestUTMPositionString(t *testing.T) {
	utm := ConvertToUTM(WGS84, NewPosition(45, -93))
	assert.Equal(t, "15N 500000.000 4982950.400", utm.String())

	parsed, err := ParseUTMPosition(utm.String())
	require.NoError(t, err)
	assert.Equal(t, utm.Zone(), parsed.Zone())
	assert.InDelta(t, utm.Easting(), parsed.Easting(), 0.0005)
	assert.InDelta(t, utm.Northing(), parsed.Northing(), 0.0005)

	south, err := ParseUTMPosition("34S   259583.222\t6245888.045")
	require.NoError(t, err)
	assert.False(t, south.Zone().Northern())
	assert.Equal(t, 34, south.Zone().Number())

	for _, bad := range []string{"", "15N 500000", "15N east 4982950", "15N 500000 north", "15Q 1 2", "15N 1 2 3"} {
		_, err := ParseUTMPosition(bad)
		assert.True(t, errors.Is(err, ErrMalformedUTM), "expected malformed error for %q, got %v", bad, err)
	}
}

func FuzzUTMRoundTrip(f *testing.F) {
	f.Add(45.0, -93.0)
	f.Add(45.0, -94.0)
	f.Add(39.0, -122.0)
	f.Add(-33.9, 18.4)
	f.Add(0.0, 0.0)
	f.Fuzz(func(t *testing.T, lat float64, offset float64) {
		if math.IsNaN(lat) || math.IsNaN(offset) || math.Abs(lat) >= 80 || math.Abs(offset) >= 2.9 {
			t.Skip()
		}
		// keep away from the zone edges, where the zone of the result is ambiguous
		pos := NewPosition(lat, -93+offset)
		utm := ConvertToUTM(WGS84, pos)
		if utm.Zone().Number() != 15 {
			t.Fatalf("expected zone 15 for %v, got %v", pos, utm.Zone())
		}
		back := utm.Position(WGS84)
		if math.Abs(back.Latitude-pos.Latitude) > wideRoundTripEpsilon ||
			math.Abs(back.Longitude-pos.Longitude) > wideRoundTripEpsilon {
			t.Errorf("round trip of %v gave %v", pos, back)
		}
	})
}
