package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the read-only author reference for reviews. Account management
// and sessions are owned by the auth collaborator, not this service.
type User struct {
	ID    string `gorm:"type:uuid;primaryKey"`
	Name  string `gorm:"size:128"`
	Email string `gorm:"size:255;uniqueIndex"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (u *User) TableName() string {
	return "users"
}
