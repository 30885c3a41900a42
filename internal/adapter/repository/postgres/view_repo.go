package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/mapview-backend/internal/domain"
	"github.com/marcos-nsantos/mapview-backend/internal/domain/entity"
	"github.com/marcos-nsantos/mapview-backend/internal/pkg/pagination"
)

type ViewRepo struct {
	pool *pgxpool.Pool
}

func NewViewRepo(pool *pgxpool.Pool) *ViewRepo {
	return &ViewRepo{pool: pool}
}

func (r *ViewRepo) Create(ctx context.Context, view *entity.MapView) error {
	query := `
		INSERT INTO map_views (id, name, north, south, east, west, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		view.ID, view.Name,
		view.Region.North, view.Region.South, view.Region.East, view.Region.West,
		view.CreatedAt, view.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting map view: %w", err)
	}
	return nil
}

func (r *ViewRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.MapView, error) {
	query := `
		SELECT id, name, north, south, east, west, created_at, updated_at
		FROM map_views
		WHERE id = $1
	`
	view, err := scanView(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrViewNotFound
		}
		return nil, fmt.Errorf("querying map view: %w", err)
	}
	return view, nil
}

func (r *ViewRepo) List(ctx context.Context, params pagination.Params) ([]entity.MapView, *pagination.Info, error) {
	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM map_views").Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting map views: %w", err)
	}

	query := `
		SELECT id, name, north, south, east, west, created_at, updated_at
		FROM map_views
		ORDER BY updated_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.pool.Query(ctx, query, params.Limit(), params.Offset())
	if err != nil {
		return nil, nil, fmt.Errorf("querying map views: %w", err)
	}
	defer rows.Close()

	views := make([]entity.MapView, 0, params.Limit())
	for rows.Next() {
		view, err := scanView(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("scanning map view: %w", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating map views: %w", err)
	}

	return views, params.NewInfo(total), nil
}

func (r *ViewRepo) UpdateRegion(ctx context.Context, view *entity.MapView) error {
	query := `
		UPDATE map_views
		SET north = $2, south = $3, east = $4, west = $5, updated_at = $6
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		view.ID,
		view.Region.North, view.Region.South, view.Region.East, view.Region.West,
		view.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating map view region: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrViewNotFound
	}
	return nil
}

func (r *ViewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, "DELETE FROM map_views WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting map view: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrViewNotFound
	}
	return nil
}

func scanView(row pgx.Row) (*entity.MapView, error) {
	var view entity.MapView
	err := row.Scan(
		&view.ID, &view.Name,
		&view.Region.North, &view.Region.South, &view.Region.East, &view.Region.West,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
