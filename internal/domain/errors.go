package domain

import "errors"

var (
	ErrViewNotFound    = errors.New("map view not found")
	ErrInvalidRegion   = errors.New("invalid region")
	ErrInvalidLocation = errors.New("invalid location")
	ErrInvalidZoom     = errors.New("invalid zoom")
	ErrTooManyTiles    = errors.New("too many tiles")
	ErrForbidden       = errors.New("forbidden")
	ErrTokenInvalid    = errors.New("token invalid")
)
