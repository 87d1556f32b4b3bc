package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// UserRole enum
type UserRole string

const (
	RoleCitizen UserRole = "citizen"
	RoleStaff   UserRole = "staff"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AadharNumber string             `bson:"aadharNumber" json:"aadharNumber"`
	Password     string             `bson:"password,omitempty" json:"-"`
	Role         UserRole           `bson:"role" json:"role"`
	StaffID      string             `bson:"staffId,omitempty" json:"staffId,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate))
	return err == nil
}
