package geokit

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// The named standard datums. Filled once at package initialization and never modified,
// so lookups need no locking.
var datumCatalog = map[string]GeodeticDatum{
	"WGS-84":             WGS84,
	"NAD-83":             NAD83,
	"GRS-80":             GRS80,
	"WGS-72":             WGS72,
	"AUSTRALIAN-1965":    Australian1965,
	"KRASOVSKY-1940":     Krasovsky1940,
	"INTERNATIONAL-1924": International1924,
	"CLARKE-1880":        Clarke1880,
	"CLARKE-1866":        Clarke1866,
	"AIRY-1830":          Airy1830,
	"BESSEL-1841":        Bessel1841,
	"EVEREST-1830":       Everest1830,
	"SPHERICAL":          Spherical,
}

// catalog keys with separators removed, "WGS84" -> "WGS-84"
var datumAliases = func() map[string]string {
	aliases := make(map[string]string, len(datumCatalog))
	for name := range datumCatalog {
		aliases[strings.ReplaceAll(name, "-", "")] = name
	}
	return aliases
}()

// Look up a catalog datum by name. Matching ignores case and accepts '-', '_' or no
// separator between the name and the year, so "wgs84", "WGS_84" and "WGS-84" are the same.
func DatumByName(name string) (GeodeticDatum, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	if canonical, ok := datumAliases[key]; ok {
		return datumCatalog[canonical], nil
	}
	return GeodeticDatum{}, NewDatumNotFoundError(name)
}

// The canonical names of every catalog datum, sorted.
func DatumNames() []string {
	names := maps.Keys(datumCatalog)
	slices.Sort(names)
	return names
}
