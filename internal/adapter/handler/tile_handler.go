package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/mapview-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/mapview-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/mapview-backend/internal/pkg/httputil"
)

type TileHandler struct {
	viewSvc ViewService
	tileSvc TileService
}

func NewTileHandler(viewSvc ViewService, tileSvc TileService) *TileHandler {
	return &TileHandler{viewSvc: viewSvc, tileSvc: tileSvc}
}

// Tiles lists the tiles covering the view's current region. Without a zoom
// query parameter the view's own zoom level is used.
func (h *TileHandler) Tiles(c *gin.Context) {
	viewID, ok := parseViewID(c)
	if !ok {
		return
	}

	var req request.TilesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	v, err := h.viewSvc.GetByID(c.Request.Context(), viewID)
	if err != nil {
		handleViewError(c, err)
		return
	}

	zoom := v.ZoomLevel()
	if req.Zoom != nil {
		zoom = *req.Zoom
	}

	tiles, err := h.tileSvc.Tiles(v.Region, zoom)
	if err != nil {
		handleViewError(c, err)
		return
	}

	httputil.OK(c, response.TilesFromSet(zoom, tiles))
}

func (h *TileHandler) Cells(c *gin.Context) {
	viewID, ok := parseViewID(c)
	if !ok {
		return
	}

	var req request.CellsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	v, err := h.viewSvc.GetByID(c.Request.Context(), viewID)
	if err != nil {
		handleViewError(c, err)
		return
	}

	cells, err := h.tileSvc.Cells(v.Region, req.Level)
	if err != nil {
		handleViewError(c, err)
		return
	}

	httputil.OK(c, response.CellsFromIDs(req.Level, cells))
}
