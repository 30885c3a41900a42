package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marcos-nsantos/mapview-backend/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/mapview-backend/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/mapview-backend/internal/domain"
	"github.com/marcos-nsantos/mapview-backend/internal/domain/entity"
	"github.com/marcos-nsantos/mapview-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/mapview-backend/internal/pkg/apperror"
	"github.com/marcos-nsantos/mapview-backend/internal/pkg/httputil"
	"github.com/marcos-nsantos/mapview-backend/internal/usecase/mapview"
)

type ViewHandler struct {
	viewSvc ViewService
	tokens  TokenIssuer
}

func NewViewHandler(viewSvc ViewService, tokens TokenIssuer) *ViewHandler {
	return &ViewHandler{viewSvc: viewSvc, tokens: tokens}
}

func (h *ViewHandler) Create(c *gin.Context) {
	var req request.CreateViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	region := valueobject.NewRegion(*req.Region.North, *req.Region.South, *req.Region.East, *req.Region.West)

	v, err := h.viewSvc.Create(c.Request.Context(), mapview.CreateInput{
		Name:   req.Name,
		Region: region,
	})
	if err != nil {
		handleViewError(c, err)
		return
	}

	token, expiresAt, err := h.tokens.GenerateViewToken(v.ID)
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.Created(c, response.CreateViewResponse{
		View:           response.ViewFromEntity(v),
		Token:          token,
		TokenExpiresAt: expiresAt,
	})
}

func (h *ViewHandler) List(c *gin.Context) {
	var req request.ListViewsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	views, pageInfo, err := h.viewSvc.List(c.Request.Context(), mapview.ListInput{
		Page:    req.Page,
		PerPage: req.PerPage,
	})
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.ViewsListResponse{
		Views:      response.ViewsFromEntities(views),
		Pagination: response.PaginationFromInfo(pageInfo),
	})
}

func (h *ViewHandler) Get(c *gin.Context) {
	viewID, ok := parseViewID(c)
	if !ok {
		return
	}

	v, err := h.viewSvc.GetByID(c.Request.Context(), viewID)
	if err != nil {
		handleViewError(c, err)
		return
	}

	httputil.OK(c, response.ViewFromEntity(v))
}

func (h *ViewHandler) SetRegion(c *gin.Context) {
	viewID, ok := h.authorizedViewID(c)
	if !ok {
		return
	}

	var req request.RegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	region := valueobject.NewRegion(*req.North, *req.South, *req.East, *req.West)
	h.respondUpdate(c, func() (*entity.MapView, error) {
		return h.viewSvc.SetRegion(c.Request.Context(), viewID, region)
	})
}

func (h *ViewHandler) Pan(c *gin.Context) {
	viewID, ok := h.authorizedViewID(c)
	if !ok {
		return
	}

	var req request.PanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	h.respondUpdate(c, func() (*entity.MapView, error) {
		return h.viewSvc.Pan(c.Request.Context(), viewID, req.DeltaLat, req.DeltaLng)
	})
}

func (h *ViewHandler) Zoom(c *gin.Context) {
	viewID, ok := h.authorizedViewID(c)
	if !ok {
		return
	}

	var req request.ZoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	h.respondUpdate(c, func() (*entity.MapView, error) {
		return h.viewSvc.Zoom(c.Request.Context(), viewID, req.Factor)
	})
}

func (h *ViewHandler) Recenter(c *gin.Context) {
	viewID, ok := h.authorizedViewID(c)
	if !ok {
		return
	}

	var req request.RecenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	loc := valueobject.NewLocation(*req.Latitude, *req.Longitude)
	h.respondUpdate(c, func() (*entity.MapView, error) {
		return h.viewSvc.Recenter(c.Request.Context(), viewID, loc)
	})
}

func (h *ViewHandler) Delete(c *gin.Context) {
	viewID, ok := h.authorizedViewID(c)
	if !ok {
		return
	}

	if err := h.viewSvc.Delete(c.Request.Context(), viewID); err != nil {
		handleViewError(c, err)
		return
	}

	httputil.NoContent(c)
}

func (h *ViewHandler) respondUpdate(c *gin.Context, update func() (*entity.MapView, error)) {
	v, err := update()
	if err != nil {
		handleViewError(c, err)
		return
	}
	httputil.OK(c, response.ViewFromEntity(v))
}

// authorizedViewID parses the :id param and checks it against the view the
// request token was issued for.
func (h *ViewHandler) authorizedViewID(c *gin.Context) (uuid.UUID, bool) {
	viewID, ok := parseViewID(c)
	if !ok {
		return uuid.Nil, false
	}

	if httputil.GetViewID(c) != viewID {
		httputil.ErrorWithCode(c, http.StatusForbidden, "FORBIDDEN", "token does not grant access to this view")
		return uuid.Nil, false
	}

	return viewID, true
}

func parseViewID(c *gin.Context) (uuid.UUID, bool) {
	viewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid view id")
		return uuid.Nil, false
	}
	return viewID, true
}

func handleViewError(c *gin.Context, err error) {
	httputil.HandleError(c, toAppError(err))
}

func toAppError(err error) *apperror.AppError {
	switch {
	case errors.Is(err, domain.ErrViewNotFound):
		return apperror.NotFound("map view")
	case errors.Is(err, domain.ErrInvalidRegion):
		return apperror.New("INVALID_REGION", "invalid region", http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidLocation):
		return apperror.New("INVALID_LOCATION", "invalid coordinates", http.StatusBadRequest)
	case errors.Is(err, domain.ErrInvalidZoom):
		return apperror.New("INVALID_ZOOM", "invalid zoom", http.StatusBadRequest)
	case errors.Is(err, domain.ErrTooManyTiles):
		return apperror.New("TOO_MANY_TILES", "region covers too many tiles at this zoom", http.StatusUnprocessableEntity)
	case errors.Is(err, domain.ErrForbidden):
		return apperror.Forbidden("access denied")
	default:
		return apperror.Internal(err)
	}
}
