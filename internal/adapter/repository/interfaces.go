package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/mapview-backend/internal/domain/entity"
	"github.com/marcos-nsantos/mapview-backend/internal/pkg/pagination"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

type ViewRepository interface {
	Create(ctx context.Context, view *entity.MapView) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MapView, error)
	List(ctx context.Context, params pagination.Params) ([]entity.MapView, *pagination.Info, error)
	UpdateRegion(ctx context.Context, view *entity.MapView) error
	Delete(ctx context.Context, id uuid.UUID) error
}
