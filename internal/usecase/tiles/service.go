package tiles

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"

	"github.com/marcos-nsantos/mapview-backend/internal/domain"
	"github.com/marcos-nsantos/mapview-backend/internal/domain/entity"
	"github.com/marcos-nsantos/mapview-backend/internal/domain/valueobject"
)

const (
	// maxMercatorLat is the latitude at which web mercator tiles end.
	maxMercatorLat = 85.05112877980659

	MaxCellLevel = 30
)

// Service derives the tiles and S2 cells a renderer needs for a region.
type Service struct {
	maxTiles int
	maxCells int
}

const defaultMaxCells = 8

func NewService(maxTiles, maxCells int) *Service {
	if maxCells < 1 {
		maxCells = defaultMaxCells
	}
	return &Service{maxTiles: maxTiles, maxCells: maxCells}
}

type tileRange struct {
	minX, maxX, minY, maxY uint32
}

func (r tileRange) count() int {
	return int(r.maxX-r.minX+1) * int(r.maxY-r.minY+1)
}

// Tiles returns the slippy map tiles covering region at zoom, west to east
// and north to south. A region crossing the antimeridian yields the tiles of
// its western part first.
func (s *Service) Tiles(region valueobject.Region, zoom int) ([]maptile.Tile, error) {
	if zoom < entity.MinZoomLevel || zoom > entity.MaxZoomLevel {
		return nil, domain.ErrInvalidZoom
	}
	if !region.IsValid() {
		return nil, domain.ErrInvalidRegion
	}

	z := maptile.Zoom(zoom)
	parts := region.Split()
	ranges := make([]tileRange, 0, len(parts))
	total := 0
	for _, part := range parts {
		tr := rangeFor(part, z)
		ranges = append(ranges, tr)
		total += tr.count()
	}
	if s.maxTiles > 0 && total > s.maxTiles {
		return nil, domain.ErrTooManyTiles
	}

	result := make([]maptile.Tile, 0, total)
	for _, tr := range ranges {
		for y := tr.minY; y <= tr.maxY; y++ {
			for x := tr.minX; x <= tr.maxX; x++ {
				result = append(result, maptile.New(x, y, z))
			}
		}
	}
	return result, nil
}

func rangeFor(part valueobject.Region, z maptile.Zoom) tileRange {
	topLeft := tileAt(part.North, part.West, z)
	bottomRight := tileAt(part.South, part.East, z)
	return tileRange{
		minX: topLeft.X,
		maxX: bottomRight.X,
		minY: topLeft.Y,
		maxY: bottomRight.Y,
	}
}

func tileAt(lat, lng float64, z maptile.Zoom) maptile.Tile {
	lat = math.Max(-maxMercatorLat, math.Min(maxMercatorLat, lat))
	t := maptile.At(orb.Point{lng, lat}, z)

	last := uint32(1)<<uint32(z) - 1
	if t.X > last {
		t.X = last
	}
	if t.Y > last {
		t.Y = last
	}
	return t
}

// Cells returns an S2 covering of region using cells no finer than maxLevel.
func (s *Service) Cells(region valueobject.Region, maxLevel int) ([]s2.CellID, error) {
	if maxLevel < 0 || maxLevel > MaxCellLevel {
		return nil, domain.ErrInvalidZoom
	}
	if !region.IsValid() {
		return nil, domain.ErrInvalidRegion
	}

	coverer := &s2.RegionCoverer{
		MinLevel: 0,
		MaxLevel: maxLevel,
		LevelMod: 1,
		MaxCells: s.maxCells,
	}
	return coverer.Covering(RectFromRegion(region)), nil
}

// RectFromRegion converts region to an S2 lat/lng rectangle. East < West
// becomes an inverted longitude interval, which S2 treats as crossing the
// antimeridian.
func RectFromRegion(region valueobject.Region) s2.Rect {
	return s2.Rect{
		Lat: r1.Interval{
			Lo: (s1.Angle(region.South) * s1.Degree).Radians(),
			Hi: (s1.Angle(region.North) * s1.Degree).Radians(),
		},
		Lng: s1.IntervalFromEndpoints(
			(s1.Angle(region.West) * s1.Degree).Radians(),
			(s1.Angle(region.East) * s1.Degree).Radians(),
		),
	}
}
