package store

import (
	"context"
	"time"

	"civic-reporter-be/apperr"
	"civic-reporter-be/geoutil"
	"civic-reporter-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ObjectStore owns the unified civicObjects collection.
type ObjectStore struct {
	col *mongo.Collection
}

func NewObjectStore(db *mongo.Database) *ObjectStore {
	return &ObjectStore{col: db.Collection("civicObjects")}
}

// Create registers a manually pinned civic object and returns its public ID.
func (s *ObjectStore) Create(ctx context.Context, objectType, address string, latitude, longitude *float64, createdBy string) (string, error) {
	trimmed, err := models.ValidateAddress(address)
	if err != nil {
		return "", err
	}
	if latitude == nil || longitude == nil {
		return "", apperr.Validation("Latitude and longitude are required")
	}

	obj := models.CivicObject{
		ID:         models.NewPublicID("OBJ"),
		ObjectType: models.NormalizeObjectType(objectType),
		Location:   ptrGeoPoint(models.NewGeoPoint(*longitude, *latitude)),
		Address:    trimmed,
		CreatedBy:  createdBy,
		CreatedAt:  time.Now(),
	}

	if _, err := s.col.InsertOne(ctx, obj); err != nil {
		zap.L().Error("failed to insert civic object", zap.Error(err))
		return "", apperr.Store("Failed to create object")
	}
	return obj.ID, nil
}

// CreateQR stores a scannable QR entry as a civic object whose public ID is
// the QR code ID itself.
func (s *ObjectStore) CreateQR(ctx context.Context, objectLocation, objectType, createdBy string, latitude, longitude *float64) (string, error) {
	trimmed, err := models.ValidateAddress(objectLocation)
	if err != nil {
		return "", err
	}
	if latitude == nil || longitude == nil {
		return "", apperr.Validation("Missing latitude or longitude")
	}

	qrCodeID := models.NewPublicID("QR")
	obj := models.CivicObject{
		ID:         qrCodeID,
		QRCodeID:   qrCodeID,
		ObjectType: models.NormalizeObjectType(objectType),
		Location:   ptrGeoPoint(models.NewGeoPoint(*longitude, *latitude)),
		Address:    trimmed,
		CreatedBy:  createdBy,
		CreatedAt:  time.Now(),
	}

	if _, err := s.col.InsertOne(ctx, obj); err != nil {
		zap.L().Error("failed to insert QR civic object", zap.Error(err))
		return "", apperr.Store("Failed to generate QR code")
	}
	return qrCodeID, nil
}

// Get resolves an object by either its public ID or its storage ObjectID.
func (s *ObjectStore) Get(ctx context.Context, key string) (*models.CivicObject, error) {
	var obj models.CivicObject
	for _, filter := range dualKeyFilters(key) {
		err := s.col.FindOne(ctx, filter).Decode(&obj)
		if err == nil {
			return &obj, nil
		}
		if err != mongo.ErrNoDocuments {
			zap.L().Error("failed to load civic object", zap.String("key", key), zap.Error(err))
			return nil, apperr.Store("Failed to retrieve object")
		}
	}
	return nil, apperr.ErrObjectNotFound
}

// GetByQRCode resolves an object by its QR code ID.
func (s *ObjectStore) GetByQRCode(ctx context.Context, qrCodeID string) (*models.CivicObject, error) {
	var obj models.CivicObject
	err := s.col.FindOne(ctx, bson.M{"qrCodeId": qrCodeID}).Decode(&obj)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.ErrObjectNotFound
	}
	if err != nil {
		zap.L().Error("failed to load QR civic object", zap.String("qrCodeId", qrCodeID), zap.Error(err))
		return nil, apperr.Store("Failed to retrieve object")
	}
	return &obj, nil
}

// ListAll returns every civic object.
func (s *ObjectStore) ListAll(ctx context.Context) ([]models.CivicObject, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		zap.L().Error("failed to list civic objects", zap.Error(err))
		return nil, apperr.Store("Failed to retrieve objects")
	}
	defer cursor.Close(ctx)

	objects := []models.CivicObject{}
	if err := cursor.All(ctx, &objects); err != nil {
		zap.L().Error("failed to decode civic objects", zap.Error(err))
		return nil, apperr.Store("Failed to decode objects")
	}
	return objects, nil
}

// Update applies a partial field update, matching by either key. An address
// update re-validates the 5-character minimum.
func (s *ObjectStore) Update(ctx context.Context, key string, fields bson.M) error {
	if raw, ok := fields["address"]; ok {
		address, _ := raw.(string)
		trimmed, err := models.ValidateAddress(address)
		if err != nil {
			return apperr.Validation("Address must be at least 5 characters")
		}
		fields["address"] = trimmed
	}
	if raw, ok := fields["objectType"]; ok {
		objectType, _ := raw.(string)
		fields["objectType"] = models.NormalizeObjectType(objectType)
	}

	for _, filter := range dualKeyFilters(key) {
		result, err := s.col.UpdateOne(ctx, filter, bson.M{"$set": fields})
		if err != nil {
			zap.L().Error("failed to update civic object", zap.String("key", key), zap.Error(err))
			return apperr.Store("Failed to update object")
		}
		if result.MatchedCount > 0 {
			return nil
		}
	}
	return apperr.ErrObjectNotFound
}

// Delete removes an object, matching by either key.
func (s *ObjectStore) Delete(ctx context.Context, key string) error {
	for _, filter := range dualKeyFilters(key) {
		result, err := s.col.DeleteOne(ctx, filter)
		if err != nil {
			zap.L().Error("failed to delete civic object", zap.String("key", key), zap.Error(err))
			return apperr.Store("Failed to delete object")
		}
		if result.DeletedCount > 0 {
			return nil
		}
	}
	return apperr.ErrObjectNotFound
}

// FindNear returns the objects within radiusMeters of the given point. The
// whole collection is scanned and filtered in memory by Haversine distance,
// a deliberate trade-off that avoids a geospatial index dependency.
func (s *ObjectStore) FindNear(ctx context.Context, latitude, longitude, radiusMeters float64) ([]models.CivicObject, error) {
	all, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterNearby(all, latitude, longitude, radiusMeters), nil
}

// FilterNearby retains the objects whose distance from the query point is
// within the radius, boundary inclusive. Objects with malformed location
// data are logged and skipped, never failing the whole query.
func FilterNearby(objects []models.CivicObject, latitude, longitude, radiusMeters float64) []models.CivicObject {
	nearby := []models.CivicObject{}
	for _, obj := range objects {
		point, ok := obj.Location.Point()
		if !ok {
			zap.L().Warn("skipping object with invalid location data", zap.String("id", obj.ID))
			continue
		}
		if geoutil.Distance(latitude, longitude, point.Lat(), point.Lon()) <= radiusMeters {
			nearby = append(nearby, obj)
		}
	}
	return nearby
}

// dualKeyFilters yields the lookups to try in sequence: the storage _id
// when the key parses as one, then the public string id.
func dualKeyFilters(key string) []bson.M {
	filters := []bson.M{}
	if oid, err := primitive.ObjectIDFromHex(key); err == nil {
		filters = append(filters, bson.M{"_id": oid})
	}
	return append(filters, bson.M{"id": key})
}

func ptrGeoPoint(g models.GeoPoint) *models.GeoPoint {
	return &g
}
