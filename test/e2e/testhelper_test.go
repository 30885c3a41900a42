package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/mapview-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/mapview-backend/internal/adapter/observer"
	pgRepo "github.com/marcos-nsantos/mapview-backend/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/mapview-backend/internal/domain"
	"github.com/marcos-nsantos/mapview-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/mapview-backend/internal/infrastructure/auth"
	"github.com/marcos-nsantos/mapview-backend/internal/infrastructure/database"
	"github.com/marcos-nsantos/mapview-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/mapview-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/mapview-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/mapview-backend/internal/usecase/mapview"
	"github.com/marcos-nsantos/mapview-backend/internal/usecase/tiles"
)

const (
	testDBUser     = "testuser"
	testDBPassword = "testpass"
	testDBName     = "testdb"
	testJWTSecret  = "test-secret-key-for-e2e-tests"
	apiBasePath    = "/api/v1"
)

type TestApp struct {
	Server     *httptest.Server
	Pool       *pgxpool.Pool
	Container  testcontainers.Container
	BaseURL    string
	Regions    *regionLog
	Published  *memoryPublisher
	ViewSvc    *mapview.Service
	httpClient *http.Client
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	err = database.RunMigrations(ctx, pool, getMigrationsPath(), zap.NewNop())
	require.NoError(t, err)

	logger := zap.NewNop()
	registry := prometheus.NewRegistry()
	regionMetrics := observability.NewRegionMetrics(registry)

	regions := newRegionLog()
	published := &memoryPublisher{}

	viewSvc := mapview.NewService(pgRepo.NewViewRepo(pool), nil, logger,
		func(viewID uuid.UUID) domain.RegionObserver {
			return observer.NewLoggingObserver(viewID, logger)
		},
		func(uuid.UUID) domain.RegionObserver {
			return observer.NewMetricsObserver(regionMetrics)
		},
		func(viewID uuid.UUID) domain.RegionObserver {
			return observer.NewPublisherObserver(viewID, published, "mapview.region", logger)
		},
		regions.factory,
	)
	tileSvc := tiles.NewService(4096, 64)
	jwtSvc := auth.NewJWTService(testJWTSecret, time.Hour)

	router := server.NewRouter(server.RouterConfig{
		ViewHandler:    handler.NewViewHandler(viewSvc, jwtSvc),
		TileHandler:    handler.NewTileHandler(viewSvc, tileSvc),
		AuthMiddleware: middleware.NewAuthMiddleware(jwtSvc),
		HTTPMetrics:    observability.NewHTTPMetrics(registry),
		Gatherer:       registry,
		Logger:         logger,
		Environment:    "test",
	})

	ts := httptest.NewServer(router.Engine())

	return &TestApp{
		Server:    ts,
		Pool:      pool,
		Container: pgContainer,
		BaseURL:   ts.URL,
		Regions:   regions,
		Published: published,
		ViewSvc:   viewSvc,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()
	app.ViewSvc.Close()
	app.Pool.Close()

	ctx := context.Background()
	if err := app.Container.Terminate(ctx); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) request(method, path string, body any, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, app.BaseURL+apiBasePath+path, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil, headers)
}

func (app *TestApp) post(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPost, path, body, headers)
}

func (app *TestApp) put(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPut, path, body, headers)
}

func (app *TestApp) delete(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodDelete, path, nil, headers)
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

func authHeader(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}

// regionLog records every region delivered to each view's observers.
type regionLog struct {
	mu     sync.Mutex
	byView map[uuid.UUID][]valueobject.Region
}

func newRegionLog() *regionLog {
	return &regionLog{byView: make(map[uuid.UUID][]valueobject.Region)}
}

func (l *regionLog) factory(viewID uuid.UUID) domain.RegionObserver {
	return domain.RegionObserverFunc(func(region valueobject.Region) {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.byView[viewID] = append(l.byView[viewID], region)
	})
}

func (l *regionLog) For(viewID uuid.UUID) []valueobject.Region {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]valueobject.Region(nil), l.byView[viewID]...)
}

// memoryPublisher stands in for a NATS connection.
type memoryPublisher struct {
	mu       sync.Mutex
	subjects []string
}

func (p *memoryPublisher) Publish(subject string, _ []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subjects = append(p.subjects, subject)
	return nil
}

func (p *memoryPublisher) Subjects() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.subjects...)
}

func getMigrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	testDir := filepath.Dir(filename)
	return filepath.Join(testDir, "..", "..", "migrations")
}
