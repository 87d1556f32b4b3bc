package controllers

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"civic-reporter-be/config"
	"civic-reporter-be/models"
	authUtils "civic-reporter-be/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// SignUp handles user registration for citizens and staff
func SignUp(c *gin.Context) {
	var input struct {
		AadharNumber string `json:"aadharNumber" binding:"required,len=12"`
		Password     string `json:"password" binding:"required,min=6"`
		Role         string `json:"role" binding:"required,oneof=citizen staff"`
		StaffID      string `json:"staffId,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Role == string(models.RoleStaff) && input.StaffID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Staff ID required for staff role"})
		return
	}

	userCollection := config.GetCollection("users")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := userCollection.CountDocuments(ctx, bson.M{
		"aadharNumber": input.AadharNumber,
		"role":         input.Role,
	})
	if err != nil {
		log.Println("Error checking existing user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		return
	}

	user := models.User{
		AadharNumber: input.AadharNumber,
		Password:     input.Password,
		Role:         models.UserRole(input.Role),
		CreatedAt:    time.Now(),
	}
	if input.Role == string(models.RoleStaff) {
		user.StaffID = input.StaffID
	}

	if err := user.HashPassword(); err != nil {
		log.Println("Error hashing password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	if _, err := userCollection.InsertOne(ctx, user); err != nil {
		log.Println("Error inserting user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
}

// Login authenticates a user and sets the auth_token cookie
func Login(c *gin.Context) {
	var input struct {
		AadharNumber string `json:"aadharNumber" binding:"required"`
		Password     string `json:"password" binding:"required"`
		Role         string `json:"role" binding:"required,oneof=citizen staff"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userCollection := config.GetCollection("users")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := userCollection.FindOne(ctx, bson.M{
		"aadharNumber": input.AadharNumber,
		"role":         input.Role,
	}).Decode(&user)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !user.ComparePassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := authUtils.GenerateAndSetToken(user.AadharNumber, string(user.Role), user.StaffID)
	if err != nil {
		log.Println("Error generating token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")

	// For production, don't set domain to allow cross-origin cookies
	if environment == "production" {
		domain = ""
	}

	cookie := &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		MaxAge:   3600, // 1 hour
		Path:     "/",
		Domain:   domain,
		Secure:   environment == "production",
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	}
	http.SetCookie(c.Writer, cookie)

	c.JSON(http.StatusOK, gin.H{
		"aadharNumber": user.AadharNumber,
		"role":         user.Role,
		"staffId":      user.StaffID,
		"createdAt":    user.CreatedAt,
	})
}

// GetMe retrieves the authenticated user's information
func GetMe(c *gin.Context) {
	aadharNumber, exists := c.Get("aadhar_number")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	role, _ := c.Get("role")

	userCollection := config.GetCollection("users")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := userCollection.FindOne(ctx, bson.M{
		"aadharNumber": aadharNumber,
		"role":         role,
	}).Decode(&user)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"aadharNumber": user.AadharNumber,
		"role":         user.Role,
		"staffId":      user.StaffID,
		"createdAt":    user.CreatedAt,
	})
}

// Logout clears the auth_token cookie
func Logout(c *gin.Context) {
	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")

	c.SetCookie("auth_token", "", -1, "/", domain, environment == "production", true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}
