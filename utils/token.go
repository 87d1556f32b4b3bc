package authUtils

import (
	"fmt"
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// GenerateAndSetToken generates a JWT token carrying the authenticated
// principal: role, aadhaar number and, for staff, the staff ID.
func GenerateAndSetToken(aadharNumber, role, staffID string) (string, error) {
	secretStr := os.Getenv("JWT_SECRET")
	if secretStr == "" {
		return "", fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	jwtSecret := []byte(secretStr)

	claims := jwt.MapClaims{
		"aadhar_number": aadharNumber,
		"role":          role,
		"exp":           time.Now().Add(time.Hour * 72).Unix(), // Token expires in 72 hours
	}
	if staffID != "" {
		claims["staff_id"] = staffID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
