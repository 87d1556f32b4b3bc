package migration

import (
	"strings"
	"testing"
	"time"

	"civic-reporter-be/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFromMapObject_PreservesOriginalMetadata(t *testing.T) {
	oid := primitive.NewObjectID()
	createdAt := time.Date(2023, 4, 1, 10, 0, 0, 0, time.UTC)
	loc := models.NewGeoPoint(77.583, 12.930)

	got := fromMapObject(legacyMapObject{
		OID:        oid,
		ID:         "OBJ-1700000000000-ABCDEF123",
		ObjectType: "streetlight",
		Location:   &loc,
		Address:    "5th & Main",
		CreatedBy:  "STAFF-42",
		CreatedAt:  createdAt,
	})

	assert.Equal(t, oid, got.OID)
	assert.Equal(t, "OBJ-1700000000000-ABCDEF123", got.ID)
	assert.Equal(t, models.Streetlight, got.ObjectType)
	assert.Equal(t, "5th & Main", got.Address)
	assert.Equal(t, "STAFF-42", got.CreatedBy)
	assert.Equal(t, createdAt, got.CreatedAt)
	assert.Empty(t, got.QRCodeID)
}

func TestFromMapObject_RelaxedValidation(t *testing.T) {
	// Migrated records may carry an empty address; they are kept, not
	// rejected.
	got := fromMapObject(legacyMapObject{ID: "OBJ-1", ObjectType: "road"})
	assert.Equal(t, "", got.Address)

	// A missing public id is minted.
	got = fromMapObject(legacyMapObject{ObjectType: "road"})
	assert.True(t, strings.HasPrefix(got.ID, "OBJ-"))

	// Unknown types are coerced like any other write.
	got = fromMapObject(legacyMapObject{ID: "OBJ-2", ObjectType: "lamppost"})
	assert.Equal(t, models.OtherObject, got.ObjectType)
}

func TestFromQRCode_UsesLegacyDescription(t *testing.T) {
	loc := models.NewGeoPoint(77.583, 12.93)

	got := fromQRCode(legacyQRCode{
		QRCodeID:       "QR-1700000000000-ABCDEF123",
		ObjectLocation: "Garbage can by the park gate",
		ObjectType:     "garbage_can",
		Location:       &loc,
		CreatedBy:      "STAFF-42",
	})

	assert.Equal(t, "QR-1700000000000-ABCDEF123", got.ID)
	assert.Equal(t, "QR-1700000000000-ABCDEF123", got.QRCodeID)
	assert.Equal(t, "Garbage can by the park gate", got.Address)
	assert.Equal(t, models.GarbageCan, got.ObjectType)
}

func TestFromQRCode_SynthesizesAddressFromCoordinates(t *testing.T) {
	loc := models.NewGeoPoint(77.583, 12.93)

	got := fromQRCode(legacyQRCode{
		QRCodeID:   "QR-1",
		ObjectType: "streetlight",
		Location:   &loc,
	})

	assert.Equal(t, "streetlight at 12.93, 77.583", got.Address)
}

func TestFromQRCode_NoDescriptionNoCoordinates(t *testing.T) {
	got := fromQRCode(legacyQRCode{QRCodeID: "QR-2", ObjectType: "park"})
	assert.Equal(t, "", got.Address)

	// Malformed coordinates behave like missing ones.
	got = fromQRCode(legacyQRCode{
		QRCodeID:   "QR-3",
		ObjectType: "park",
		Location:   &models.GeoPoint{Type: "Point", Coordinates: []float64{77.583}},
	})
	assert.Equal(t, "", got.Address)
}

func TestFromQRCode_WhitespaceDescriptionFallsBack(t *testing.T) {
	loc := models.NewGeoPoint(77.583, 12.93)

	got := fromQRCode(legacyQRCode{
		QRCodeID:       "QR-4",
		ObjectLocation: "   ",
		ObjectType:     "road",
		Location:       &loc,
	})

	require.NotEmpty(t, got.Address)
	assert.Equal(t, "road at 12.93, 77.583", got.Address)
}
