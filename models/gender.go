package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gender is the audience lookup dimension (men, women, kids).
type Gender struct {
	ID    string `gorm:"type:uuid;primaryKey"`
	Label string `gorm:"size:64;not null"`
	Slug  string `gorm:"size:64;uniqueIndex;not null"`
}

func (g *Gender) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

func (g *Gender) TableName() string {
	return "genders"
}
