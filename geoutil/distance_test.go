package geoutil

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistance_IdenticalPointsAreZero(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{12.930, 77.583},
		{-33.8688, 151.2093},
		{89.9, -179.9},
	}
	for _, p := range points {
		assert.Equal(t, 0.0, Distance(p[0], p[1], p[0], p[1]))
	}
}

func TestDistance_Symmetric(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
	}{
		{"nearby points", 12.930, 77.583, 12.9305, 77.5831},
		{"across the equator", -1.5, 36.8, 1.5, 36.8},
		{"across the antimeridian", 10, 179.5, 10, -179.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab := Distance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			ba := Distance(tt.lat2, tt.lon2, tt.lat1, tt.lon1)
			assert.InDelta(t, ab, ba, 1e-9)
		})
	}
}

func TestDistance_KnownValue(t *testing.T) {
	// Roughly 57 m between these two points near Bengaluru.
	d := Distance(12.930, 77.583, 12.9305, 77.5831)
	assert.InDelta(t, 56.6, d, 1.0)
	assert.Less(t, d, 100.0)
	assert.Greater(t, d, 10.0)
}

func TestPointDistance(t *testing.T) {
	a := orb.Point{77.583, 12.930}
	b := orb.Point{77.5831, 12.9305}
	assert.InDelta(t, Distance(12.930, 77.583, 12.9305, 77.5831), PointDistance(a, b), 1e-9)
}

func TestValidCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		want     bool
	}{
		{"valid", 12.93, 77.58, true},
		{"edges", 90, 180, true},
		{"negative edges", -90, -180, true},
		{"latitude too large", 90.1, 0, false},
		{"longitude too large", 0, 180.1, false},
		{"latitude too small", -91, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCoordinates(tt.lat, tt.lon))
		})
	}
}
