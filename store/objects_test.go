package store

import (
	"testing"

	"civic-reporter-be/geoutil"
	"civic-reporter-be/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geo(lon, lat float64) *models.GeoPoint {
	g := models.NewGeoPoint(lon, lat)
	return &g
}

func TestFilterNearby(t *testing.T) {
	near := models.CivicObject{ID: "OBJ-1", Address: "5th & Main", Location: geo(77.583, 12.930)}
	far := models.CivicObject{ID: "OBJ-2", Address: "Other side of town", Location: geo(77.640, 12.990)}
	noLocation := models.CivicObject{ID: "OBJ-3", Address: "No coordinates"}
	malformed := models.CivicObject{ID: "OBJ-4", Address: "Broken", Location: &models.GeoPoint{Type: "Point", Coordinates: []float64{77.583}}}

	objects := []models.CivicObject{near, far, noLocation, malformed}

	// Query point ~57 m from OBJ-1.
	got := FilterNearby(objects, 12.9305, 77.5831, 100)
	require.Len(t, got, 1)
	assert.Equal(t, "OBJ-1", got[0].ID)

	// Tighter radius excludes it.
	assert.Empty(t, FilterNearby(objects, 12.9305, 77.5831, 10))

	// Malformed locations are skipped, never an error.
	assert.Empty(t, FilterNearby([]models.CivicObject{noLocation, malformed}, 12.9305, 77.5831, 1e9))
}

func TestFilterNearby_BoundaryInclusive(t *testing.T) {
	obj := models.CivicObject{ID: "OBJ-1", Location: geo(77.583, 12.930)}
	d := geoutil.Distance(12.9305, 77.5831, 12.930, 77.583)

	got := FilterNearby([]models.CivicObject{obj}, 12.9305, 77.5831, d)
	require.Len(t, got, 1)

	assert.Empty(t, FilterNearby([]models.CivicObject{obj}, 12.9305, 77.5831, d*0.999))
}

func TestDualKeyFilters(t *testing.T) {
	// A 24-char hex key resolves as storage _id first, public id second.
	filters := dualKeyFilters("507f1f77bcf86cd799439011")
	require.Len(t, filters, 2)
	assert.Contains(t, filters[0], "_id")
	assert.Equal(t, "507f1f77bcf86cd799439011", filters[1]["id"])

	// A public id only gets the public-id lookup.
	filters = dualKeyFilters("OBJ-1714412345678-A1B2C3D4E")
	require.Len(t, filters, 1)
	assert.Equal(t, "OBJ-1714412345678-A1B2C3D4E", filters[0]["id"])
}
