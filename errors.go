package geokit

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedUTM = errors.New("malformed UTM coordinate")
)

type InvalidDatumError struct {
	EquatorialRadius float64
	PolarRadius      float64
}

func NewInvalidDatumError(equatorialRadius float64, polarRadius float64) *InvalidDatumError {
	return &InvalidDatumError{
		EquatorialRadius: equatorialRadius,
		PolarRadius:      polarRadius,
	}
}

func (i InvalidDatumError) Error() string {
	return fmt.Sprintf("invalid datum parameters: equatorial radius %g, polar radius %g", i.EquatorialRadius, i.PolarRadius)
}

type DatumNotFoundError struct {
	Datum string
}

func NewDatumNotFoundError(name string) DatumNotFoundError {
	return DatumNotFoundError{
		Datum: name,
	}
}

func (d DatumNotFoundError) Error() string {
	return fmt.Sprintf("datum '%s' not found in catalog", d.Datum)
}

type ZoneOutOfRangeError struct {
	Zone int
}

func NewZoneOutOfRangeError(zone int) *ZoneOutOfRangeError {
	return &ZoneOutOfRangeError{Zone: zone}
}

func (z ZoneOutOfRangeError) Error() string {
	return fmt.Sprintf("UTM zone %d out of range %d-%d", z.Zone, MinZoneNumber, MaxZoneNumber)
}

type LocationNotSupportedError struct {
	Projector string
	Location  Location
}

func NewLocationNotSupportedError(projector string, location Location) *LocationNotSupportedError {
	return &LocationNotSupportedError{
		Projector: projector,
		Location:  location,
	}
}

func (l LocationNotSupportedError) Error() string {
	return fmt.Sprintf("location %v (%T) not supported by projector %s", l.Location, l.Location, l.Projector)
}

type LocationOutOfBoundsError struct {
	Location Location
}

func NewLocationOutOfBoundsError(location Location) LocationOutOfBoundsError {
	return LocationOutOfBoundsError{Location: location}
}

func (l LocationOutOfBoundsError) Error() string {
	return fmt.Sprintf("location %v was out of bounds", l.Location)
}
