package geokit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	MinZoneNumber = 1
	MaxZoneNumber = 60

	zoneWidth = 6 // degrees of longitude per zone
)

// A UTM zone is one of 60 longitudinal bands, each 6 degrees wide, together with the
// hemisphere. Two zones are equal (==) when both the number and the hemisphere match.
type UTMZone struct {
	number   int
	northern bool
}

// Create a zone from its number (1-60) and hemisphere.
func NewUTMZone(number int, northern bool) (UTMZone, error) {
	if number < MinZoneNumber || number > MaxZoneNumber {
		return UTMZone{}, NewZoneOutOfRangeError(number)
	}
	return UTMZone{number: number, northern: northern}, nil
}

// Derive the zone containing a position. The zone number depends only on the longitude and
// the hemisphere only on the sign of the latitude, with the equator counted as northern.
// Longitudes are not wrapped, so values outside [-180, 180) give numbers outside 1-60.
func ZoneFromPosition(pos Position) UTMZone {
	return UTMZone{
		number:   int(math.Floor((pos.Longitude+180)/zoneWidth)) + 1,
		northern: pos.Latitude >= 0,
	}
}

func (z UTMZone) Number() int {
	return z.number
}

func (z UTMZone) Northern() bool {
	return z.northern
}

// Longitude of the zone's central meridian, in degrees.
func (z UTMZone) CentralMeridian() float64 {
	return float64(-183 + zoneWidth*z.number)
}

// Longitude of the zone's central meridian, in radians.
func (z UTMZone) Meridian() float64 {
	return z.CentralMeridian() * degToRad
}

// Formats the zone as its number followed by N or S, e.g. "15N".
func (z UTMZone) String() string {
	if z.northern {
		return strconv.Itoa(z.number) + "N"
	}
	return strconv.Itoa(z.number) + "S"
}

// Parse a zone written as a number followed by a hemisphere letter, "15N" or "15s".
func ParseUTMZone(s string) (UTMZone, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return UTMZone{}, fmt.Errorf("zone %q: %w", s, ErrMalformedUTM)
	}
	var northern bool
	switch s[len(s)-1] {
	case 'N', 'n':
		northern = true
	case 'S', 's':
		northern = false
	default:
		return UTMZone{}, fmt.Errorf("zone %q has no hemisphere: %w", s, ErrMalformedUTM)
	}
	number, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return UTMZone{}, fmt.Errorf("zone %q: %w", s, ErrMalformedUTM)
	}
	return NewUTMZone(number, northern)
}
