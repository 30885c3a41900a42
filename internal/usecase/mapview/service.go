package mapview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/mapview-backend/internal/adapter/cache"
	"github.com/marcos-nsantos/mapview-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/mapview-backend/internal/domain"
	"github.com/marcos-nsantos/mapview-backend/internal/domain/entity"
	"github.com/marcos-nsantos/mapview-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/mapview-backend/internal/pkg/pagination"
)

// ObserverFactory builds an observer bound to one map view. A nil result is
// skipped.
type ObserverFactory func(viewID uuid.UUID) domain.RegionObserver

type Service struct {
	viewRepo  repository.ViewRepository
	cache     cache.RegionCache
	factories []ObserverFactory
	logger    *zap.Logger

	mu    sync.Mutex
	views map[uuid.UUID]*viewState
}

// viewState serializes region changes of a single view so its observers see
// notifications in the order the regions were persisted.
type viewState struct {
	mu       sync.Mutex
	notifier *Notifier
}

// NewService wires the map view use cases. regionCache may be nil.
func NewService(viewRepo repository.ViewRepository, regionCache cache.RegionCache, logger *zap.Logger, factories ...ObserverFactory) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		viewRepo:  viewRepo,
		cache:     regionCache,
		factories: factories,
		logger:    logger,
		views:     make(map[uuid.UUID]*viewState),
	}
}

type CreateInput struct {
	Name   string
	Region valueobject.Region
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*entity.MapView, error) {
	if !input.Region.IsValid() {
		return nil, domain.ErrInvalidRegion
	}

	view := entity.NewMapView(input.Name, input.Region)
	if err := s.viewRepo.Create(ctx, view); err != nil {
		return nil, fmt.Errorf("creating map view: %w", err)
	}

	st := s.stateFor(view.ID)
	st.mu.Lock()
	st.notifier.Notify(view.Region)
	st.mu.Unlock()

	return view, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*entity.MapView, error) {
	view, err := s.viewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		region, ok, err := s.cache.GetRegion(ctx, id)
		switch {
		case err != nil:
			s.logger.Warn("reading cached region", zap.String("view_id", id.String()), zap.Error(err))
		case ok:
			view.Region = region
		}
	}

	return view, nil
}

type ListInput struct {
	Page    int
	PerPage int
}

func (s *Service) List(ctx context.Context, input ListInput) ([]entity.MapView, *pagination.Info, error) {
	views, info, err := s.viewRepo.List(ctx, pagination.NewParams(input.Page, input.PerPage))
	if err != nil {
		return nil, nil, fmt.Errorf("listing map views: %w", err)
	}
	return views, info, nil
}

func (s *Service) SetRegion(ctx context.Context, id uuid.UUID, region valueobject.Region) (*entity.MapView, error) {
	return s.update(ctx, id, func(valueobject.Region) valueobject.Region {
		return region
	})
}

func (s *Service) Pan(ctx context.Context, id uuid.UUID, dLat, dLng float64) (*entity.MapView, error) {
	return s.update(ctx, id, func(current valueobject.Region) valueobject.Region {
		return PanRegion(current, dLat, dLng)
	})
}

func (s *Service) Zoom(ctx context.Context, id uuid.UUID, factor float64) (*entity.MapView, error) {
	if !validZoomFactor(factor) {
		return nil, domain.ErrInvalidZoom
	}
	return s.update(ctx, id, func(current valueobject.Region) valueobject.Region {
		return ZoomRegion(current, factor)
	})
}

func (s *Service) Recenter(ctx context.Context, id uuid.UUID, loc valueobject.Location) (*entity.MapView, error) {
	if !loc.IsValid() {
		return nil, domain.ErrInvalidLocation
	}
	return s.update(ctx, id, func(current valueobject.Region) valueobject.Region {
		return RecenterRegion(current, loc)
	})
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if st, ok := s.loadState(id); ok {
		st.mu.Lock()
		defer st.mu.Unlock()
	}

	if err := s.viewRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrViewNotFound) {
			s.forget(id)
		}
		return err
	}

	s.invalidateRegion(ctx, id)
	s.forget(id)
	return nil
}

// Subscribe attaches obs to the view's notifier. The returned func detaches it.
func (s *Service) Subscribe(ctx context.Context, id uuid.UUID, obs domain.RegionObserver) (func(), error) {
	if _, err := s.viewRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	st := s.stateFor(id)
	st.mu.Lock()
	defer st.mu.Unlock()

	// A concurrent Delete may have removed the view after the first lookup.
	if _, err := s.viewRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrViewNotFound) {
			s.forget(id)
		}
		return nil, err
	}

	return st.notifier.Subscribe(obs), nil
}

// Close tears down every view's observers.
func (s *Service) Close() {
	s.mu.Lock()
	ids := make([]uuid.UUID, 0, len(s.views))
	for id := range s.views {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	for _, id := range ids {
		s.forget(id)
	}
}

func (s *Service) update(ctx context.Context, id uuid.UUID, next func(valueobject.Region) valueobject.Region) (*entity.MapView, error) {
	st := s.stateFor(id)
	st.mu.Lock()
	defer st.mu.Unlock()

	view, err := s.viewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrViewNotFound) {
			s.forget(id)
		}
		return nil, err
	}

	region := next(view.Region)
	if !region.IsValid() {
		return nil, domain.ErrInvalidRegion
	}

	// The cached region must never outlive the stored one, so it is dropped
	// before persisting and rewritten by the cache observer afterwards.
	s.invalidateRegion(ctx, id)

	view.SetRegion(region)
	if err := s.viewRepo.UpdateRegion(ctx, view); err != nil {
		if errors.Is(err, domain.ErrViewNotFound) {
			s.forget(id)
		}
		return nil, fmt.Errorf("updating map view region: %w", err)
	}

	s.logger.Debug("map view region changed",
		zap.String("view_id", id.String()),
		zap.Int("observers", st.notifier.Len()),
	)
	st.notifier.Notify(view.Region)

	return view, nil
}

func (s *Service) invalidateRegion(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteRegion(ctx, id); err != nil {
		s.logger.Warn("deleting cached region", zap.String("view_id", id.String()), zap.Error(err))
	}
}

func (s *Service) loadState(id uuid.UUID) (*viewState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.views[id]
	return st, ok
}

func (s *Service) stateFor(id uuid.UUID) *viewState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.views[id]; ok {
		return st
	}

	st := &viewState{notifier: NewNotifier(s.logger)}
	for _, factory := range s.factories {
		if obs := factory(id); obs != nil {
			st.notifier.Subscribe(obs)
		}
	}
	s.views[id] = st
	return st
}

func (s *Service) forget(id uuid.UUID) {
	s.mu.Lock()
	st, ok := s.views[id]
	delete(s.views, id)
	s.mu.Unlock()

	if !ok {
		return
	}

	for _, obs := range st.notifier.Observers() {
		closer, ok := obs.(io.Closer)
		if !ok {
			continue
		}
		if err := closer.Close(); err != nil {
			s.logger.Warn("closing region observer", zap.String("view_id", id.String()), zap.Error(err))
		}
	}
}
