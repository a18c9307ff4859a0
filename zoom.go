package geokit

import (
	"math"
	"strconv"
)

// A zoom level of a tile-based mapping system. Zoom level 0 covers the whole planet with
// 256x256 pixels, and each successive level doubles the pixels along each axis. The set of
// levels is closed: Zoom0 through Zoom22.
type ZoomLevel int

const (
	Zoom0 ZoomLevel = iota
	Zoom1
	Zoom2
	Zoom3
	Zoom4
	Zoom5
	Zoom6
	Zoom7
	Zoom8
	Zoom9
	Zoom10
	Zoom11
	Zoom12
	Zoom13
	Zoom14
	Zoom15
	Zoom16
	Zoom17
	Zoom18
	Zoom19
	Zoom20
	Zoom21
	Zoom22

	numZoomLevels = int(Zoom22) + 1
)

const (
	TileSize = 256 // pixels along each axis of a tile
)

type zoomScale struct {
	pixels int     // pixels along each axis for the whole planet
	scale  float64 // meters per pixel at the equator
}

// precomputed per level, never modified after init
var zoomTable [numZoomLevels]zoomScale

func init() {
	circumference := 2 * math.Pi * Spherical.EquatorialRadius()
	for i := range zoomTable {
		pixels := TileSize << i
		zoomTable[i] = zoomScale{
			pixels: pixels,
			scale:  circumference / float64(pixels),
		}
	}
}

// Get the zoom level with the given ordinal. Returns false if there is no such level.
func ZoomLevelFromOrdinal(o int) (ZoomLevel, bool) {
	if o < 0 || o >= numZoomLevels {
		return 0, false
	}
	return ZoomLevel(o), true
}

// All zoom levels, from Zoom0 to Zoom22.
func ZoomLevels() []ZoomLevel {
	levels := make([]ZoomLevel, numZoomLevels)
	for i := range levels {
		levels[i] = ZoomLevel(i)
	}
	return levels
}

// The least zoomed in level whose pixels are no larger than the given size in meters.
// Returns false when even Zoom22 is coarser than requested.
func ZoomLevelForScale(metersPerPixel float64) (ZoomLevel, bool) {
	for i, zs := range zoomTable {
		if zs.scale <= metersPerPixel {
			return ZoomLevel(i), true
		}
	}
	return 0, false
}

func (z ZoomLevel) Ordinal() int {
	return int(z)
}

func (z ZoomLevel) valid() bool {
	return z >= 0 && int(z) < numZoomLevels
}

// Number of pixels along each axis covering the whole planet. Zero for a value outside
// Zoom0 through Zoom22.
func (z ZoomLevel) Pixels() int {
	if !z.valid() {
		return 0
	}
	return zoomTable[z].pixels
}

// Size of one pixel at the equator, in meters. Zero for a value outside Zoom0 through
// Zoom22.
func (z ZoomLevel) Scale() float64 {
	if !z.valid() {
		return 0
	}
	return zoomTable[z].scale
}

func (z ZoomLevel) String() string {
	return "zoom-" + strconv.Itoa(int(z))
}
