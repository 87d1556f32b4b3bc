package models

import (
	"fmt"
	"strings"
	"time"

	"civic-reporter-be/apperr"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectType enum
type ObjectType string

const (
	Streetlight ObjectType = "streetlight"
	GarbageCan  ObjectType = "garbage_can"
	Road        ObjectType = "road"
	Sidewalk    ObjectType = "sidewalk"
	Park        ObjectType = "park"
	OtherObject ObjectType = "other"
)

// NormalizeObjectType coerces unrecognized values to "other" at write time.
func NormalizeObjectType(s string) ObjectType {
	switch ObjectType(s) {
	case Streetlight, GarbageCan, Road, Sidewalk, Park, OtherObject:
		return ObjectType(s)
	default:
		return OtherObject
	}
}

// GeoPoint is a GeoJSON point. Coordinates are [longitude, latitude] -
// longitude first, everywhere, always.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewGeoPoint builds a GeoJSON point from a longitude/latitude pair.
func NewGeoPoint(lon, lat float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lon, lat}}
}

// Point returns the lon/lat pair as an orb.Point. The second return is
// false when the stored document carries malformed location data.
func (g *GeoPoint) Point() (orb.Point, bool) {
	if g == nil || len(g.Coordinates) < 2 {
		return orb.Point{}, false
	}
	return orb.Point{g.Coordinates[0], g.Coordinates[1]}, true
}

// CivicObject is a physical municipal asset, addressable by a generated
// public ID and optionally tagged with a QR code ID.
type CivicObject struct {
	OID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ID         string             `bson:"id" json:"id"`
	ObjectType ObjectType         `bson:"objectType" json:"objectType"`
	Location   *GeoPoint          `bson:"location,omitempty" json:"location,omitempty"`
	Address    string             `bson:"address" json:"address"`
	CreatedBy  string             `bson:"createdBy" json:"createdBy"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	QRCodeID   string             `bson:"qrCodeId,omitempty" json:"qrCodeId,omitempty"`
}

// NewPublicID mints a user-facing identifier of the form
// <prefix>-<unix-ms>-<9-char token>, e.g. OBJ-1714412345678-A1B2C3D4E.
func NewPublicID(prefix string) string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:9]
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), token)
}

// ValidateAddress trims the address and enforces the 5-character minimum
// citizens rely on to recognize an object.
func ValidateAddress(address string) (string, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return "", apperr.Validation("Address is required")
	}
	if len(trimmed) < 5 {
		return "", apperr.Validation("Address must be at least 5 characters long")
	}
	return trimmed, nil
}
