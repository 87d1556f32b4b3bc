package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"civic-reporter-be/config"
	"civic-reporter-be/geofence"
	"civic-reporter-be/models"
	"civic-reporter-be/store"

	"github.com/gin-gonic/gin"
)

var issueStore = sync.OnceValue(func() *store.IssueStore {
	return store.NewIssueStore(config.ConnectDB())
})

var fenceValidator = geofence.NewValidator()

// CreateIssue files a new citizen report. When the report originates from a
// QR scan of an object that carries coordinates, the citizen's fix is
// checked against the geofence; only an out-of-range fix blocks submission.
func CreateIssue(c *gin.Context) {
	aadharVal, exists := c.Get("aadhar_number")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	aadharNumber, _ := aadharVal.(string)

	var input struct {
		Title          string   `json:"title" binding:"required,max=200"`
		Description    string   `json:"description" binding:"required,max=1000"`
		ImageURL       string   `json:"imageUrl,omitempty"`
		QRCodeID       string   `json:"qrCodeId,omitempty"`
		ObjectLocation string   `json:"objectLocation" binding:"required"`
		ObjectType     string   `json:"objectType" binding:"required"`
		Latitude       *float64 `json:"latitude,omitempty"`
		Longitude      *float64 `json:"longitude,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if input.QRCodeID != "" && input.Latitude != nil && input.Longitude != nil {
		if obj, err := objectStore().GetByQRCode(ctx, input.QRCodeID); err == nil {
			if point, ok := obj.Location.Point(); ok {
				fix := geofence.StaticFix{Latitude: *input.Latitude, Longitude: *input.Longitude}
				decision := fenceValidator.Evaluate(ctx, &point, fix)
				if !decision.Permitted() {
					c.JSON(http.StatusForbidden, gin.H{
						"error":    "You must be within 100 meters of the object to report an issue",
						"distance": decision.DistanceMeters,
					})
					return
				}
			}
		}
	}

	trackingID, issueID, err := issueStore().Create(ctx, store.CreateIssueInput{
		Title:          input.Title,
		Description:    input.Description,
		ImageURL:       input.ImageURL,
		QRCodeID:       input.QRCodeID,
		ObjectLocation: input.ObjectLocation,
		ObjectType:     input.ObjectType,
		AadharNumber:   aadharNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"trackingId": trackingID,
		"issueId":    issueID,
	})
}

// MyIssues returns the calling citizen's issues, most recent first
func MyIssues(c *gin.Context) {
	aadharNumber := c.Query("aadharNumber")
	if aadharNumber == "" {
		if v, exists := c.Get("aadhar_number"); exists {
			aadharNumber, _ = v.(string)
		}
	}
	if aadharNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Aadhar number required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issues, err := issueStore().ListByUser(ctx, aadharNumber)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"issues": issues})
}

// ActiveIssues returns the newest open and processing issues
func ActiveIssues(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issues, err := issueStore().ListActive(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"issues": issues})
}

// AllIssues returns every issue, most recent first
func AllIssues(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issues, err := issueStore().ListAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"issues": issues})
}

// GroupedIssues returns issues bucketed by object location for the staff
// dashboard, busiest locations first
func GroupedIssues(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	issues, err := issueStore().ListAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"groups": store.GroupByLocation(issues)})
}

// UpdateIssueStatus moves an issue through its lifecycle
func UpdateIssueStatus(c *gin.Context) {
	var input struct {
		IssueID string `json:"issueId" binding:"required"`
		Status  string `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := issueStore().UpdateStatus(ctx, input.IssueID, input.Status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AddComment appends a staff comment to an issue
func AddComment(c *gin.Context) {
	var input struct {
		IssueID string `json:"issueId" binding:"required"`
		Comment struct {
			Text    string `json:"text" binding:"required"`
			StaffID string `json:"staffId,omitempty"`
		} `json:"comment" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	staffID := input.Comment.StaffID
	if v, exists := c.Get("staff_id"); exists {
		if s, ok := v.(string); ok && s != "" {
			staffID = s
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	comment := models.Comment{
		Text:      input.Comment.Text,
		StaffID:   staffID,
		CreatedAt: time.Now(),
	}
	if err := issueStore().AppendComment(ctx, input.IssueID, comment); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
