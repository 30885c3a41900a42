package valueobject

import "math"

// Region is a spherical trapezium: the area between two parallels (North,
// South) and two meridians (East, West), in degrees. East < West means the
// region crosses the antimeridian.
type Region struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

func NewRegion(north, south, east, west float64) Region {
	return Region{
		North: north,
		South: south,
		East:  east,
		West:  west,
	}
}

func (r Region) IsValid() bool {
	return r.North >= r.South &&
		r.South >= -90 && r.North <= 90 &&
		r.West >= -180 && r.West <= 180 &&
		r.East >= -180 && r.East <= 180
}

func (r Region) CrossesAntimeridian() bool {
	return r.East < r.West
}

func (r Region) LatSpan() float64 {
	return r.North - r.South
}

func (r Region) LngSpan() float64 {
	if r.CrossesAntimeridian() {
		return r.East - r.West + 360
	}
	return r.East - r.West
}

// Center returns the midpoint of the region. The longitude is normalized so a
// region crossing the antimeridian has its center on the correct side.
func (r Region) Center() Location {
	return Location{
		Latitude:  (r.North + r.South) / 2,
		Longitude: NormalizeLongitude(r.West + r.LngSpan()/2),
	}
}

func (r Region) Contains(lat, lng float64) bool {
	if lat < r.South || lat > r.North {
		return false
	}
	if r.CrossesAntimeridian() {
		return lng >= r.West || lng <= r.East
	}
	return lng >= r.West && lng <= r.East
}

// Split returns the region as one or two non-crossing parts. A part that
// would only be the antimeridian line itself is left out.
func (r Region) Split() []Region {
	if !r.CrossesAntimeridian() {
		return []Region{r}
	}
	parts := make([]Region, 0, 2)
	if r.West < 180 {
		parts = append(parts, Region{North: r.North, South: r.South, East: 180, West: r.West})
	}
	if r.East > -180 {
		parts = append(parts, Region{North: r.North, South: r.South, East: r.East, West: -180})
	}
	return parts
}

// NormalizeLongitude wraps lng into [-180, 180]. Values already in range,
// both ends included, are returned unchanged; anything else lands in
// [-180, 180).
func NormalizeLongitude(lng float64) float64 {
	if lng >= -180 && lng <= 180 {
		return lng
	}
	lng = math.Mod(lng+180, 360)
	if lng < 0 {
		lng += 360
	}
	return lng - 180
}
