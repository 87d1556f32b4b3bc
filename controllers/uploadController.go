package controllers

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const uploadsDir = "public/uploads/images"

// UploadImage accepts either a multipart file or a base64 payload and
// returns the relative URL of the stored image.
func UploadImage(c *gin.Context) {
	data, err := readImagePayload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:7]
	filename := fmt.Sprintf("issue-%d-%s.jpg", time.Now().UnixMilli(), token)
	if err := os.WriteFile(filepath.Join(uploadsDir, filename), data, 0o644); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"imageUrl": "/uploads/images/" + filename,
	})
}

func readImagePayload(c *gin.Context) ([]byte, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		file, err := c.FormFile("file")
		if err != nil {
			return nil, fmt.Errorf("No file provided")
		}
		src, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("Failed to read file")
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			return nil, fmt.Errorf("Failed to read file")
		}
		return data, nil
	}

	var input struct {
		ImageData string `json:"imageData" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		return nil, fmt.Errorf("No file provided")
	}

	payload := input.ImageData
	// Strip a data URL prefix such as "data:image/jpeg;base64,"
	if idx := strings.Index(payload, ","); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("Invalid base64 image data")
	}
	return data, nil
}
