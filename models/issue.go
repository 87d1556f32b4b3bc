package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IssueStatus enum
type IssueStatus string

const (
	StatusOpen       IssueStatus = "open"
	StatusProcessing IssueStatus = "processing"
	StatusClosed     IssueStatus = "closed"
)

// ValidStatus reports whether s is one of the three lifecycle states.
func ValidStatus(s string) bool {
	switch IssueStatus(s) {
	case StatusOpen, StatusProcessing, StatusClosed:
		return true
	}
	return false
}

// Comment is a staff note on an issue. The comments array is append-only.
type Comment struct {
	Text      string    `bson:"text" json:"text"`
	StaffID   string    `bson:"staffId" json:"staffId"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Issue represents a citizen-filed report. ObjectLocation and ObjectType
// are a denormalized snapshot of the referenced civic object, so the issue
// survives object deletion.
type Issue struct {
	OID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TrackingID     string             `bson:"trackingId" json:"trackingId"`
	UserID         string             `bson:"userId" json:"userId"`
	AadharNumber   string             `bson:"aadharNumber" json:"aadharNumber"`
	Title          string             `bson:"title" json:"title"`
	Description    string             `bson:"description" json:"description"`
	ImageURL       string             `bson:"imageUrl" json:"imageUrl"`
	QRCodeID       string             `bson:"qrCodeId,omitempty" json:"qrCodeId,omitempty"`
	ObjectLocation string             `bson:"objectLocation" json:"objectLocation"`
	ObjectType     ObjectType         `bson:"objectType" json:"objectType"`
	Status         IssueStatus        `bson:"status" json:"status"`
	Comments       []Comment          `bson:"comments" json:"comments"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
