package response

import (
	"time"

	"github.com/golang/geo/s2"
	"github.com/google/uuid"
	"github.com/paulmach/orb/maptile"

	"github.com/marcos-nsantos/mapview-backend/internal/domain/entity"
	"github.com/marcos-nsantos/mapview-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/mapview-backend/internal/pkg/pagination"
)

type RegionResponse struct {
	North               float64 `json:"north"`
	South               float64 `json:"south"`
	East                float64 `json:"east"`
	West                float64 `json:"west"`
	CrossesAntimeridian bool    `json:"crosses_antimeridian"`
}

type ViewResponse struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Region    RegionResponse `json:"region"`
	ZoomLevel int            `json:"zoom_level"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type CreateViewResponse struct {
	View           ViewResponse `json:"view"`
	Token          string       `json:"token"`
	TokenExpiresAt time.Time    `json:"token_expires_at"`
}

type PaginationResponse struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

type ViewsListResponse struct {
	Views      []ViewResponse     `json:"views"`
	Pagination PaginationResponse `json:"pagination"`
}

type TileResponse struct {
	X uint32 `json:"x"`
	Y uint32 `json:"y"`
	Z uint32 `json:"z"`
}

type TilesResponse struct {
	Zoom  int            `json:"zoom"`
	Tiles []TileResponse `json:"tiles"`
}

type CellsResponse struct {
	MaxLevel int      `json:"max_level"`
	Tokens   []string `json:"tokens"`
}

func RegionFromValue(r valueobject.Region) RegionResponse {
	return RegionResponse{
		North:               r.North,
		South:               r.South,
		East:                r.East,
		West:                r.West,
		CrossesAntimeridian: r.CrossesAntimeridian(),
	}
}

func ViewFromEntity(v *entity.MapView) ViewResponse {
	return ViewResponse{
		ID:        v.ID,
		Name:      v.Name,
		Region:    RegionFromValue(v.Region),
		ZoomLevel: v.ZoomLevel(),
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func ViewsFromEntities(views []entity.MapView) []ViewResponse {
	result := make([]ViewResponse, 0, len(views))
	for i := range views {
		result = append(result, ViewFromEntity(&views[i]))
	}
	return result
}

func TilesFromSet(zoom int, tiles []maptile.Tile) TilesResponse {
	resp := TilesResponse{Zoom: zoom, Tiles: make([]TileResponse, 0, len(tiles))}
	for _, t := range tiles {
		resp.Tiles = append(resp.Tiles, TileResponse{X: t.X, Y: t.Y, Z: uint32(t.Z)})
	}
	return resp
}

func CellsFromIDs(maxLevel int, ids []s2.CellID) CellsResponse {
	resp := CellsResponse{MaxLevel: maxLevel, Tokens: make([]string, 0, len(ids))}
	for _, id := range ids {
		resp.Tokens = append(resp.Tokens, id.ToToken())
	}
	return resp
}

func PaginationFromInfo(info *pagination.Info) PaginationResponse {
	return PaginationResponse{
		Page:       info.Page,
		PerPage:    info.PerPage,
		TotalItems: info.TotalItems,
		TotalPages: info.TotalPages,
		HasNext:    info.HasNext,
		HasPrev:    info.HasPrev,
	}
}
