package request

type RegionRequest struct {
	North *float64 `json:"north" binding:"required,min=-90,max=90"`
	South *float64 `json:"south" binding:"required,min=-90,max=90"`
	East  *float64 `json:"east" binding:"required,min=-180,max=180"`
	West  *float64 `json:"west" binding:"required,min=-180,max=180"`
}

type CreateViewRequest struct {
	Name   string        `json:"name" binding:"required,max=255"`
	Region RegionRequest `json:"region"`
}

type ListViewsRequest struct {
	Page    int `form:"page" binding:"omitempty,min=1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1,max=100"`
}

type PanRequest struct {
	DeltaLat float64 `json:"delta_lat" binding:"min=-180,max=180"`
	DeltaLng float64 `json:"delta_lng" binding:"min=-360,max=360"`
}

type ZoomRequest struct {
	Factor float64 `json:"factor" binding:"required,gt=0"`
}

type RecenterRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" binding:"required,min=-180,max=180"`
}

type TilesRequest struct {
	Zoom *int `form:"zoom" binding:"omitempty,min=0,max=22"`
}

type CellsRequest struct {
	Level int `form:"level,default=12" binding:"min=0,max=30"`
}
