package mapview

import (
	"math"

	"github.com/marcos-nsantos/mapview-backend/internal/domain/valueobject"
)

// PanRegion shifts r by the given deltas. Latitudes are clamped to the poles
// while keeping the span; longitudes wrap across the antimeridian.
func PanRegion(r valueobject.Region, dLat, dLng float64) valueobject.Region {
	north, south := clampLatitudes(r.North+dLat, r.South+dLat)

	if r.LngSpan() >= 360 {
		return valueobject.NewRegion(north, south, r.East, r.West)
	}

	east, west := lngEdges(r.East+dLng, r.West+dLng)
	return valueobject.NewRegion(north, south, east, west)
}

// ZoomRegion scales r around its center. factor > 1 zooms in.
func ZoomRegion(r valueobject.Region, factor float64) valueobject.Region {
	c := r.Center()
	latHalf := r.LatSpan() / factor / 2
	north, south := clampLatitudes(c.Latitude+latHalf, c.Latitude-latHalf)

	lngSpan := r.LngSpan() / factor
	if lngSpan >= 360 {
		return valueobject.NewRegion(north, south, 180, -180)
	}

	east, west := lngEdges(c.Longitude+lngSpan/2, c.Longitude-lngSpan/2)
	return valueobject.NewRegion(north, south, east, west)
}

// RecenterRegion moves r so its center lands on loc, keeping both spans.
func RecenterRegion(r valueobject.Region, loc valueobject.Location) valueobject.Region {
	c := r.Center()
	return PanRegion(r, loc.Latitude-c.Latitude, loc.Longitude-c.Longitude)
}

// lngEdges normalizes both longitude bounds. An edge that lands on the
// antimeridian is put on the side that keeps the region from reading as
// crossing it.
func lngEdges(east, west float64) (float64, float64) {
	east = valueobject.NormalizeLongitude(east)
	west = valueobject.NormalizeLongitude(west)
	if east == -180 && west != -180 {
		east = 180
	}
	if west == 180 && east != 180 {
		west = -180
	}
	return east, west
}

func validZoomFactor(factor float64) bool {
	return factor > 0 && !math.IsInf(factor, 0) && !math.IsNaN(factor)
}

func clampLatitudes(north, south float64) (float64, float64) {
	if north > 90 {
		south -= north - 90
		north = 90
	}
	if south < -90 {
		north += -90 - south
		south = -90
	}
	return math.Min(north, 90), south
}
