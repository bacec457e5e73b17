package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Brand is a manufacturer lookup dimension.
type Brand struct {
	ID      string `gorm:"type:uuid;primaryKey"`
	Name    string `gorm:"size:128;not null"`
	Slug    string `gorm:"size:128;uniqueIndex;not null"`
	LogoURL string
}

func (b *Brand) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

func (b *Brand) TableName() string {
	return "brands"
}
