package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/mapview-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/mapview-backend/internal/domain/entity"
	"github.com/marcos-nsantos/mapview-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/mapview-backend/internal/infrastructure/auth"
	"github.com/marcos-nsantos/mapview-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/mapview-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/mapview-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/mapview-backend/internal/mocks"
)

func newTestRouter(t *testing.T, viewSvc handler.ViewService) *server.Router {
	t.Helper()

	ctrl := gomock.NewController(t)
	jwtSvc := auth.NewJWTService("router-test-secret", time.Hour)
	registry := prometheus.NewRegistry()

	return server.NewRouter(server.RouterConfig{
		ViewHandler:    handler.NewViewHandler(viewSvc, jwtSvc),
		TileHandler:    handler.NewTileHandler(viewSvc, mocks.NewMockTileService(ctrl)),
		AuthMiddleware: middleware.NewAuthMiddleware(jwtSvc),
		HTTPMetrics:    observability.NewHTTPMetrics(registry),
		Gatherer:       registry,
		Logger:         zap.NewNop(),
		Environment:    "test",
	})
}

func TestRouter(t *testing.T) {
	t.Run("health", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		router := newTestRouter(t, mocks.NewMockViewService(ctrl))

		w := httptest.NewRecorder()
		router.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("metrics", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		router := newTestRouter(t, mocks.NewMockViewService(ctrl))

		w := httptest.NewRecorder()
		router.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("get view is public", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		viewSvc := mocks.NewMockViewService(ctrl)
		router := newTestRouter(t, viewSvc)

		v := &entity.MapView{ID: uuid.New(), Name: "public", Region: valueobject.NewRegion(1, 0, 1, 0)}
		viewSvc.EXPECT().GetByID(gomock.Any(), v.ID).Return(v, nil)

		w := httptest.NewRecorder()
		router.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/views/"+v.ID.String(), nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("mutations require a view token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		router := newTestRouter(t, mocks.NewMockViewService(ctrl))

		id := uuid.New().String()
		requests := []*http.Request{
			httptest.NewRequest(http.MethodPut, "/api/v1/views/"+id+"/region", nil),
			httptest.NewRequest(http.MethodPost, "/api/v1/views/"+id+"/pan", nil),
			httptest.NewRequest(http.MethodPost, "/api/v1/views/"+id+"/zoom", nil),
			httptest.NewRequest(http.MethodPost, "/api/v1/views/"+id+"/recenter", nil),
			httptest.NewRequest(http.MethodDelete, "/api/v1/views/"+id, nil),
		}

		for _, req := range requests {
			w := httptest.NewRecorder()
			router.Engine().ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", req.Method, req.URL.Path)
		}
	})
}
