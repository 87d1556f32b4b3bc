// Package migration merges the two legacy collections (mapObjects and
// qrCodes) into the unified civicObjects collection. It runs once; re-runs
// are cheap no-ops.
package migration

import (
	"context"
	"fmt"
	"strings"
	"time"

	"civic-reporter-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// markerID identifies the completion document in the migrations collection.
const markerID = "unify-civic-objects"

// Stats reports what one run processed. Legacy collections are never
// deleted; counts are additive evidence for the audit trail.
type Stats struct {
	MapObjectsSeen     int  `bson:"mapObjectsSeen" json:"mapObjectsSeen"`
	MapObjectsMigrated int  `bson:"mapObjectsMigrated" json:"mapObjectsMigrated"`
	QRCodesSeen        int  `bson:"qrCodesSeen" json:"qrCodesSeen"`
	QRCodesMigrated    int  `bson:"qrCodesMigrated" json:"qrCodesMigrated"`
	Archived           int  `bson:"archived" json:"archived"`
	AlreadyComplete    bool `bson:"-" json:"alreadyComplete"`
}

type marker struct {
	ID          string    `bson:"_id"`
	CompletedAt time.Time `bson:"completedAt"`
	Stats       Stats     `bson:"stats"`
}

type Migrator struct {
	db  *mongo.Database
	log *zap.Logger
}

func NewMigrator(db *mongo.Database, log *zap.Logger) *Migrator {
	return &Migrator{db: db, log: log}
}

// Run executes the one-shot merge. A completion marker short-circuits
// re-runs with zero writes; underneath it, every insert is guarded by an
// existence check so a partially failed run is also safe to resume.
func (m *Migrator) Run(ctx context.Context) (Stats, error) {
	var done marker
	err := m.db.Collection("migrations").FindOne(ctx, bson.M{"_id": markerID}).Decode(&done)
	if err == nil {
		m.log.Info("migration already complete, skipping", zap.Time("completedAt", done.CompletedAt))
		stats := done.Stats
		stats.AlreadyComplete = true
		return stats, nil
	}
	if err != mongo.ErrNoDocuments {
		return Stats{}, fmt.Errorf("checking migration marker: %w", err)
	}

	var stats Stats

	if err := m.migrateMapObjects(ctx, &stats); err != nil {
		return stats, err
	}
	if err := m.migrateQRCodes(ctx, &stats); err != nil {
		return stats, err
	}
	if err := m.archiveQRCodes(ctx, &stats); err != nil {
		return stats, err
	}

	_, err = m.db.Collection("migrations").InsertOne(ctx, marker{
		ID:          markerID,
		CompletedAt: time.Now(),
		Stats:       stats,
	})
	if err != nil {
		return stats, fmt.Errorf("recording migration marker: %w", err)
	}

	m.log.Info("collection migration complete",
		zap.Int("mapObjectsMigrated", stats.MapObjectsMigrated),
		zap.Int("qrCodesMigrated", stats.QRCodesMigrated),
		zap.Int("archived", stats.Archived))
	return stats, nil
}

// legacyMapObject is a record from the pre-unification tagged-object
// collection. Fields are optional; migrated data gets relaxed validation.
type legacyMapObject struct {
	OID        primitive.ObjectID `bson:"_id,omitempty"`
	ID         string             `bson:"id,omitempty"`
	ObjectType string             `bson:"objectType,omitempty"`
	Location   *models.GeoPoint   `bson:"location,omitempty"`
	Address    string             `bson:"address,omitempty"`
	CreatedBy  string             `bson:"createdBy,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt,omitempty"`
}

// legacyQRCode is a record from the pre-unification QR collection.
type legacyQRCode struct {
	OID            primitive.ObjectID `bson:"_id,omitempty"`
	QRCodeID       string             `bson:"qrCodeId,omitempty"`
	ObjectLocation string             `bson:"objectLocation,omitempty"`
	ObjectType     string             `bson:"objectType,omitempty"`
	Location       *models.GeoPoint   `bson:"location,omitempty"`
	CreatedBy      string             `bson:"createdBy,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt,omitempty"`
}

func (m *Migrator) migrateMapObjects(ctx context.Context, stats *Stats) error {
	unified := m.db.Collection("civicObjects")

	cursor, err := m.db.Collection("mapObjects").Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("reading mapObjects: %w", err)
	}
	defer cursor.Close(ctx)

	var records []legacyMapObject
	if err := cursor.All(ctx, &records); err != nil {
		return fmt.Errorf("decoding mapObjects: %w", err)
	}
	stats.MapObjectsSeen = len(records)

	for _, rec := range records {
		count, err := unified.CountDocuments(ctx, bson.M{"id": rec.ID})
		if err != nil {
			return fmt.Errorf("checking existing object %s: %w", rec.ID, err)
		}
		if count > 0 {
			continue
		}
		if _, err := unified.InsertOne(ctx, fromMapObject(rec)); err != nil {
			return fmt.Errorf("inserting migrated object %s: %w", rec.ID, err)
		}
		stats.MapObjectsMigrated++
	}

	m.log.Info("mapObjects pass done",
		zap.Int("seen", stats.MapObjectsSeen),
		zap.Int("migrated", stats.MapObjectsMigrated))
	return nil
}

func (m *Migrator) migrateQRCodes(ctx context.Context, stats *Stats) error {
	unified := m.db.Collection("civicObjects")

	cursor, err := m.db.Collection("qrCodes").Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("reading qrCodes: %w", err)
	}
	defer cursor.Close(ctx)

	var records []legacyQRCode
	if err := cursor.All(ctx, &records); err != nil {
		return fmt.Errorf("decoding qrCodes: %w", err)
	}
	stats.QRCodesSeen = len(records)

	for _, rec := range records {
		count, err := unified.CountDocuments(ctx, bson.M{"qrCodeId": rec.QRCodeID})
		if err != nil {
			return fmt.Errorf("checking existing QR %s: %w", rec.QRCodeID, err)
		}
		if count > 0 {
			continue
		}
		obj := fromQRCode(rec)
		if obj.Address == "" {
			m.log.Warn("QR record has no usable address", zap.String("qrCodeId", rec.QRCodeID))
		}
		if _, err := unified.InsertOne(ctx, obj); err != nil {
			return fmt.Errorf("inserting migrated QR %s: %w", rec.QRCodeID, err)
		}
		stats.QRCodesMigrated++
	}

	m.log.Info("qrCodes pass done",
		zap.Int("seen", stats.QRCodesSeen),
		zap.Int("migrated", stats.QRCodesMigrated))
	return nil
}

// archiveQRCodes copies the legacy QR records verbatim into qrCodes_archive
// for audit retention, only if the archive is still empty.
func (m *Migrator) archiveQRCodes(ctx context.Context, stats *Stats) error {
	archive := m.db.Collection("qrCodes_archive")

	archived, err := archive.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("checking archive: %w", err)
	}
	if archived > 0 {
		m.log.Info("qrCodes archive already populated, skipping")
		return nil
	}

	cursor, err := m.db.Collection("qrCodes").Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("reading qrCodes for archive: %w", err)
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return fmt.Errorf("decoding qrCodes for archive: %w", err)
	}
	if len(raw) == 0 {
		return nil
	}

	docs := make([]interface{}, len(raw))
	for i, doc := range raw {
		docs[i] = doc
	}
	if _, err := archive.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("archiving qrCodes: %w", err)
	}
	stats.Archived = len(docs)
	return nil
}

// fromMapObject transforms a legacy tagged object into the unified entity,
// preserving the original creation metadata. A missing address stays empty
// instead of being rejected.
func fromMapObject(rec legacyMapObject) models.CivicObject {
	id := rec.ID
	if id == "" {
		id = models.NewPublicID("OBJ")
	}
	return models.CivicObject{
		OID:        rec.OID,
		ID:         id,
		ObjectType: models.NormalizeObjectType(rec.ObjectType),
		Location:   rec.Location,
		Address:    rec.Address,
		CreatedBy:  rec.CreatedBy,
		CreatedAt:  rec.CreatedAt,
	}
}

// fromQRCode transforms a legacy QR record into the unified entity. The QR
// ID becomes the public ID. The address is the legacy description when one
// exists, otherwise it is synthesized from type and coordinates.
func fromQRCode(rec legacyQRCode) models.CivicObject {
	address := strings.TrimSpace(rec.ObjectLocation)
	if address == "" {
		if point, ok := rec.Location.Point(); ok {
			address = fmt.Sprintf("%s at %v, %v", rec.ObjectType, point.Lat(), point.Lon())
		}
	}
	return models.CivicObject{
		OID:        rec.OID,
		ID:         rec.QRCodeID,
		QRCodeID:   rec.QRCodeID,
		ObjectType: models.NormalizeObjectType(rec.ObjectType),
		Location:   rec.Location,
		Address:    address,
		CreatedBy:  rec.CreatedBy,
		CreatedAt:  rec.CreatedAt,
	}
}
