package mapview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcos-nsantos/mapview-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/mapview-backend/internal/usecase/mapview"
)

func assertRegion(t *testing.T, want, got valueobject.Region) {
	t.Helper()
	assert.InDelta(t, want.North, got.North, 1e-9, "north")
	assert.InDelta(t, want.South, got.South, 1e-9, "south")
	assert.InDelta(t, want.East, got.East, 1e-9, "east")
	assert.InDelta(t, want.West, got.West, 1e-9, "west")
}

func TestPanRegion(t *testing.T) {
	tests := []struct {
		name       string
		region     valueobject.Region
		dLat, dLng float64
		want       valueobject.Region
	}{
		{
			name:   "shifts both axes",
			region: valueobject.NewRegion(45, 40, -70, -75),
			dLat:   1,
			dLng:   2,
			want:   valueobject.NewRegion(46, 41, -68, -73),
		},
		{
			name:   "clamps at the north pole keeping the span",
			region: valueobject.NewRegion(80, 70, 10, 0),
			dLat:   20,
			want:   valueobject.NewRegion(90, 80, 10, 0),
		},
		{
			name:   "clamps at the south pole keeping the span",
			region: valueobject.NewRegion(-70, -80, 10, 0),
			dLat:   -20,
			want:   valueobject.NewRegion(-80, -90, 10, 0),
		},
		{
			name:   "wraps across the antimeridian",
			region: valueobject.NewRegion(10, -10, 175, 165),
			dLng:   10,
			want:   valueobject.NewRegion(10, -10, -175, 175),
		},
		{
			name:   "east edge landing on the antimeridian stays at 180",
			region: valueobject.NewRegion(10, 0, -170, -180),
			dLng:   -10,
			want:   valueobject.NewRegion(10, 0, 180, 170),
		},
		{
			name:   "west edge landing on the antimeridian moves to -180",
			region: valueobject.NewRegion(10, 0, -170, 170),
			dLng:   10,
			want:   valueobject.NewRegion(10, 0, -160, -180),
		},
		{
			name:   "point on the antimeridian stays a point",
			region: valueobject.NewRegion(10, 0, 170, 170),
			dLng:   10,
			want:   valueobject.NewRegion(10, 0, 180, 180),
		},
		{
			name:   "whole world keeps its longitudes",
			region: valueobject.NewRegion(90, -90, 180, -180),
			dLng:   45,
			want:   valueobject.NewRegion(90, -90, 180, -180),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRegion(t, tt.want, mapview.PanRegion(tt.region, tt.dLat, tt.dLng))
		})
	}
}

func TestZoomRegion(t *testing.T) {
	t.Run("zooms in around the center", func(t *testing.T) {
		got := mapview.ZoomRegion(valueobject.NewRegion(40, 20, 30, 10), 2)
		assertRegion(t, valueobject.NewRegion(35, 25, 25, 15), got)
	})

	t.Run("zooms out around the center", func(t *testing.T) {
		got := mapview.ZoomRegion(valueobject.NewRegion(10, -10, 10, -10), 0.5)
		assertRegion(t, valueobject.NewRegion(20, -20, 20, -20), got)
	})

	t.Run("caps at the whole world", func(t *testing.T) {
		got := mapview.ZoomRegion(valueobject.NewRegion(80, -80, 90, -90), 0.1)
		assertRegion(t, valueobject.NewRegion(90, -90, 180, -180), got)
	})

	t.Run("keeps antimeridian crossing", func(t *testing.T) {
		got := mapview.ZoomRegion(valueobject.NewRegion(10, -10, -170, 170), 2)
		assertRegion(t, valueobject.NewRegion(5, -5, -175, 175), got)
		assert.True(t, got.CrossesAntimeridian())
	})
}

func TestRecenterRegion(t *testing.T) {
	got := mapview.RecenterRegion(valueobject.NewRegion(45, 40, -70, -75), valueobject.NewLocation(0, 0))
	assertRegion(t, valueobject.NewRegion(2.5, -2.5, 2.5, -2.5), got)
}
