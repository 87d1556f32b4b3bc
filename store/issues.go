package store

import (
	"context"
	"sort"
	"strings"
	"time"

	"civic-reporter-be/apperr"
	"civic-reporter-be/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// activeIssuesLimit bounds the staff triage page.
const activeIssuesLimit = 20

// IssueStore owns the issues collection.
type IssueStore struct {
	col *mongo.Collection
}

func NewIssueStore(db *mongo.Database) *IssueStore {
	return &IssueStore{col: db.Collection("issues")}
}

// CreateIssueInput carries the citizen-submitted fields of a new report.
type CreateIssueInput struct {
	Title          string
	Description    string
	ImageURL       string
	QRCodeID       string
	ObjectLocation string
	ObjectType     string
	AadharNumber   string
}

// Create validates and persists a new issue, returning the user-facing
// tracking ID and the storage ID.
func (s *IssueStore) Create(ctx context.Context, in CreateIssueInput) (trackingID, issueID string, err error) {
	if strings.TrimSpace(in.AadharNumber) == "" {
		return "", "", apperr.Validation("Aadhar number is required")
	}
	if strings.TrimSpace(in.Title) == "" {
		return "", "", apperr.Validation("Title is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return "", "", apperr.Validation("Description is required")
	}
	if strings.TrimSpace(in.ObjectLocation) == "" {
		return "", "", apperr.Validation("Object location is required")
	}
	if strings.TrimSpace(in.ObjectType) == "" {
		return "", "", apperr.Validation("Object type is required")
	}

	now := time.Now()
	issue := models.Issue{
		OID:            primitive.NewObjectID(),
		TrackingID:     models.NewPublicID("ISSUE"),
		UserID:         in.AadharNumber,
		AadharNumber:   in.AadharNumber,
		Title:          in.Title,
		Description:    in.Description,
		ImageURL:       in.ImageURL,
		QRCodeID:       in.QRCodeID,
		ObjectLocation: in.ObjectLocation,
		ObjectType:     models.NormalizeObjectType(in.ObjectType),
		Status:         models.StatusOpen,
		Comments:       []models.Comment{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := s.col.InsertOne(ctx, issue); err != nil {
		zap.L().Error("failed to insert issue", zap.Error(err))
		return "", "", apperr.Store("Failed to create issue")
	}
	return issue.TrackingID, issue.OID.Hex(), nil
}

// AppendComment pushes a staff comment and refreshes updatedAt.
func (s *IssueStore) AppendComment(ctx context.Context, issueID string, comment models.Comment) error {
	oid, err := primitive.ObjectIDFromHex(issueID)
	if err != nil {
		return apperr.ErrIssueNotFound
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	result, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$push": bson.M{"comments": comment},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
	if err != nil {
		zap.L().Error("failed to append comment", zap.String("issueId", issueID), zap.Error(err))
		return apperr.Store("Failed to add comment")
	}
	if result.MatchedCount == 0 {
		return apperr.ErrIssueNotFound
	}
	return nil
}

// UpdateStatus moves an issue through its lifecycle and refreshes updatedAt.
func (s *IssueStore) UpdateStatus(ctx context.Context, issueID, status string) error {
	if !models.ValidStatus(status) {
		return apperr.Validation("Invalid status")
	}
	oid, err := primitive.ObjectIDFromHex(issueID)
	if err != nil {
		return apperr.ErrIssueNotFound
	}

	result, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"status": status, "updatedAt": time.Now()},
	})
	if err != nil {
		zap.L().Error("failed to update status", zap.String("issueId", issueID), zap.Error(err))
		return apperr.Store("Failed to update status")
	}
	if result.MatchedCount == 0 {
		return apperr.ErrIssueNotFound
	}
	return nil
}

// ListByUser returns a citizen's issues, most recent first.
func (s *IssueStore) ListByUser(ctx context.Context, aadharNumber string) ([]models.Issue, error) {
	return s.list(ctx, bson.M{"aadharNumber": aadharNumber}, 0)
}

// ListActive returns the newest open and processing issues, bounded to a
// single triage page.
func (s *IssueStore) ListActive(ctx context.Context) ([]models.Issue, error) {
	filter := bson.M{"status": bson.M{"$in": []string{
		string(models.StatusOpen), string(models.StatusProcessing),
	}}}
	return s.list(ctx, filter, activeIssuesLimit)
}

// ListAll returns every issue, most recent first.
func (s *IssueStore) ListAll(ctx context.Context) ([]models.Issue, error) {
	return s.list(ctx, bson.M{}, 0)
}

func (s *IssueStore) list(ctx context.Context, filter bson.M, limit int64) ([]models.Issue, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		findOptions.SetLimit(limit)
	}

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		zap.L().Error("failed to list issues", zap.Error(err))
		return nil, apperr.Store("Failed to retrieve issues")
	}
	defer cursor.Close(ctx)

	issues := []models.Issue{}
	if err := cursor.All(ctx, &issues); err != nil {
		zap.L().Error("failed to decode issues", zap.Error(err))
		return nil, apperr.Store("Failed to decode issues")
	}
	return issues, nil
}

// LocationGroup buckets the issues filed against one object location, for
// the staff dashboard. It is a derived read, never persisted.
type LocationGroup struct {
	ObjectLocation string            `json:"objectLocation"`
	ObjectType     models.ObjectType `json:"objectType"`
	QRCodeID       string            `json:"qrCodeId,omitempty"`
	Count          int               `json:"count"`
	Issues         []models.Issue    `json:"issues"`
}

// GroupByLocation buckets issues by objectLocation, ordered by descending
// issue count (ties broken by location for a stable view).
func GroupByLocation(issues []models.Issue) []LocationGroup {
	byLocation := map[string]*LocationGroup{}
	order := []string{}

	for _, issue := range issues {
		group, ok := byLocation[issue.ObjectLocation]
		if !ok {
			group = &LocationGroup{
				ObjectLocation: issue.ObjectLocation,
				ObjectType:     issue.ObjectType,
				QRCodeID:       issue.QRCodeID,
			}
			byLocation[issue.ObjectLocation] = group
			order = append(order, issue.ObjectLocation)
		}
		group.Count++
		group.Issues = append(group.Issues, issue)
	}

	groups := make([]LocationGroup, 0, len(order))
	for _, location := range order {
		groups = append(groups, *byLocation[location])
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].ObjectLocation < groups[j].ObjectLocation
	})
	return groups
}
