package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"civic-reporter-be/config"
	"civic-reporter-be/geoutil"
	"civic-reporter-be/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

var objectStore = sync.OnceValue(func() *store.ObjectStore {
	return store.NewObjectStore(config.ConnectDB())
})

// CreateObject registers a manually pinned civic object
func CreateObject(c *gin.Context) {
	var input struct {
		ObjectType string   `json:"objectType" binding:"required"`
		Address    string   `json:"address"`
		Latitude   *float64 `json:"latitude,omitempty"`
		Longitude  *float64 `json:"longitude,omitempty"`
		CreatedBy  string   `json:"createdBy,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	createdBy := input.CreatedBy
	if staffID, exists := c.Get("staff_id"); exists {
		if s, ok := staffID.(string); ok && s != "" {
			createdBy = s
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objectID, err := objectStore().Create(ctx, input.ObjectType, input.Address, input.Latitude, input.Longitude, createdBy)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"objectId": objectID})
}

// AllObjects returns every civic object
func AllObjects(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objects, err := objectStore().ListAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"objects": objects})
}

// UpdateObject applies a partial update, matching by public or storage id
func UpdateObject(c *gin.Context) {
	var input struct {
		ID         string   `json:"id" binding:"required"`
		ObjectType *string  `json:"objectType,omitempty"`
		Address    *string  `json:"address,omitempty"`
		Latitude   *float64 `json:"latitude,omitempty"`
		Longitude  *float64 `json:"longitude,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := bson.M{}
	if input.ObjectType != nil {
		fields["objectType"] = *input.ObjectType
	}
	if input.Address != nil {
		fields["address"] = *input.Address
	}
	if input.Latitude != nil && input.Longitude != nil {
		fields["location"] = bson.M{
			"type":        "Point",
			"coordinates": []float64{*input.Longitude, *input.Latitude},
		}
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := objectStore().Update(ctx, input.ID, fields); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteObject removes an object, matching by public or storage id
func DeleteObject(c *gin.Context) {
	var input struct {
		ID string `json:"id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing object id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := objectStore().Delete(ctx, input.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// NearbyObjects returns the objects within maxDistance meters of a point
func NearbyObjects(c *gin.Context) {
	var input struct {
		Latitude    *float64 `json:"latitude" binding:"required"`
		Longitude   *float64 `json:"longitude" binding:"required"`
		MaxDistance float64  `json:"maxDistance" binding:"required,gt=0"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !geoutil.ValidCoordinates(*input.Latitude, *input.Longitude) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objects, err := objectStore().FindNear(ctx, *input.Latitude, *input.Longitude, input.MaxDistance)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"objects": objects})
}

// GenerateQR stores a scannable QR entry as a civic object
func GenerateQR(c *gin.Context) {
	var input struct {
		ObjectLocation string   `json:"objectLocation"`
		ObjectType     string   `json:"objectType" binding:"required"`
		CreatedBy      string   `json:"createdBy,omitempty"`
		Latitude       *float64 `json:"latitude,omitempty"`
		Longitude      *float64 `json:"longitude,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	createdBy := input.CreatedBy
	if staffID, exists := c.Get("staff_id"); exists {
		if s, ok := staffID.(string); ok && s != "" {
			createdBy = s
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	qrCodeID, err := objectStore().CreateQR(ctx, input.ObjectLocation, input.ObjectType, createdBy, input.Latitude, input.Longitude)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "qrCodeId": qrCodeID})
}
