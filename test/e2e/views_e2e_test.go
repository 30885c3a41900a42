package e2e_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/mapview-backend/internal/domain/valueobject"
)

func createView(t *testing.T, app *TestApp, name string, region map[string]float64) (uuid.UUID, string) {
	t.Helper()

	resp, err := app.post("/views", map[string]any{"name": name, "region": region}, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var createResp map[string]any
	parseResponse(t, resp, &createResp)

	view := createResp["view"].(map[string]any)
	id, err := uuid.Parse(view["id"].(string))
	require.NoError(t, err)
	return id, createResp["token"].(string)
}

func TestE2E_Views_Lifecycle(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	viewID, token := createView(t, app, "downtown", map[string]float64{
		"north": 45, "south": 40, "east": -70, "west": -75,
	})
	path := "/views/" + viewID.String()

	t.Run("create notifies the initial region", func(t *testing.T) {
		assert.Equal(t, []valueobject.Region{valueobject.NewRegion(45, 40, -70, -75)}, app.Regions.For(viewID))
		assert.Contains(t, app.Published.Subjects(), "mapview.region."+viewID.String())
	})

	t.Run("get view", func(t *testing.T) {
		resp, err := app.get(path, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var viewResp map[string]any
		parseResponse(t, resp, &viewResp)
		assert.Equal(t, "downtown", viewResp["name"])
		assert.Equal(t, 6.0, viewResp["zoom_level"])
	})

	t.Run("list views", func(t *testing.T) {
		resp, err := app.get("/views?page=1&per_page=10", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var listResp map[string]any
		parseResponse(t, resp, &listResp)
		assert.Len(t, listResp["views"], 1)
	})

	t.Run("pan", func(t *testing.T) {
		resp, err := app.post(path+"/pan", map[string]float64{"delta_lat": 1, "delta_lng": 2}, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var viewResp map[string]any
		parseResponse(t, resp, &viewResp)
		region := viewResp["region"].(map[string]any)
		assert.Equal(t, 46.0, region["north"])
		assert.Equal(t, -73.0, region["west"])
	})

	t.Run("set region across the antimeridian", func(t *testing.T) {
		resp, err := app.put(path+"/region", map[string]float64{
			"north": 10, "south": -10, "east": -170, "west": 170,
		}, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var viewResp map[string]any
		parseResponse(t, resp, &viewResp)
		assert.Equal(t, true, viewResp["region"].(map[string]any)["crosses_antimeridian"])
	})

	t.Run("zoom", func(t *testing.T) {
		resp, err := app.post(path+"/zoom", map[string]float64{"factor": 2}, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("observers saw every update in order", func(t *testing.T) {
		regions := app.Regions.For(viewID)
		require.Len(t, regions, 4)
		assert.Equal(t, valueobject.NewRegion(46, 41, -68, -73), regions[1])
		assert.Equal(t, valueobject.NewRegion(10, -10, -170, 170), regions[2])
		assert.Equal(t, valueobject.NewRegion(5, -5, -175, 175), regions[3])
	})

	t.Run("tiles split at the antimeridian", func(t *testing.T) {
		resp, err := app.get(path+"/tiles?zoom=2", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var tilesResp map[string]any
		parseResponse(t, resp, &tilesResp)
		tiles := tilesResp["tiles"].([]any)
		require.NotEmpty(t, tiles)

		xs := map[float64]bool{}
		for _, tile := range tiles {
			xs[tile.(map[string]any)["x"].(float64)] = true
		}
		assert.True(t, xs[0])
		assert.True(t, xs[3])
	})

	t.Run("cells", func(t *testing.T) {
		resp, err := app.get(path+"/cells?level=6", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var cellsResp map[string]any
		parseResponse(t, resp, &cellsResp)
		assert.NotEmpty(t, cellsResp["tokens"])
	})

	t.Run("metrics endpoint exposes region updates", func(t *testing.T) {
		resp, err := app.httpClient.Get(app.BaseURL + "/metrics")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(body), "mapview_region_updates_total 4"))
	})

	t.Run("delete", func(t *testing.T) {
		resp, err := app.delete(path, authHeader(token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		resp.Body.Close()

		resp, err = app.get(path, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestE2E_Views_Authorization(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	region := map[string]float64{"north": 1, "south": 0, "east": 1, "west": 0}
	firstID, _ := createView(t, app, "first", region)
	_, secondToken := createView(t, app, "second", region)
	path := "/views/" + firstID.String() + "/pan"

	t.Run("missing token", func(t *testing.T) {
		resp, err := app.post(path, map[string]float64{"delta_lat": 1}, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("invalid token", func(t *testing.T) {
		resp, err := app.post(path, map[string]float64{"delta_lat": 1}, authHeader("not-a-jwt"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("token for another view", func(t *testing.T) {
		resp, err := app.post(path, map[string]float64{"delta_lat": 1}, authHeader(secondToken))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		resp.Body.Close()

		assert.Len(t, app.Regions.For(firstID), 1)
	})

	t.Run("inverted region is rejected", func(t *testing.T) {
		resp, err := app.post("/views", map[string]any{
			"name":   "inverted",
			"region": map[string]float64{"north": 0, "south": 1, "east": 1, "west": 0},
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var errResp map[string]any
		parseResponse(t, resp, &errResp)
		assert.Equal(t, "INVALID_REGION", errResp["code"])
	})
}
