package handler

import (
	"context"
	"time"

	"github.com/golang/geo/s2"
	"github.com/google/uuid"
	"github.com/paulmach/orb/maptile"

	"github.com/marcos-nsantos/mapview-backend/internal/domain/entity"
	"github.com/marcos-nsantos/mapview-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/mapview-backend/internal/pkg/pagination"
	"github.com/marcos-nsantos/mapview-backend/internal/usecase/mapview"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type ViewService interface {
	Create(ctx context.Context, input mapview.CreateInput) (*entity.MapView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MapView, error)
	List(ctx context.Context, input mapview.ListInput) ([]entity.MapView, *pagination.Info, error)
	SetRegion(ctx context.Context, id uuid.UUID, region valueobject.Region) (*entity.MapView, error)
	Pan(ctx context.Context, id uuid.UUID, dLat, dLng float64) (*entity.MapView, error)
	Zoom(ctx context.Context, id uuid.UUID, factor float64) (*entity.MapView, error)
	Recenter(ctx context.Context, id uuid.UUID, loc valueobject.Location) (*entity.MapView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type TileService interface {
	Tiles(region valueobject.Region, zoom int) ([]maptile.Tile, error)
	Cells(region valueobject.Region, maxLevel int) ([]s2.CellID, error)
}

type TokenIssuer interface {
	GenerateViewToken(viewID uuid.UUID) (string, time.Time, error)
}
