package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Color is a variant-grain lookup dimension. HexCode backs the swatch
// rendered by the filter rail.
type Color struct {
	ID      string `gorm:"type:uuid;primaryKey"`
	Name    string `gorm:"size:64;not null"`
	Slug    string `gorm:"size:64;uniqueIndex;not null"`
	HexCode string `gorm:"size:7;not null"`
}

func (c *Color) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (c *Color) TableName() string {
	return "colors"
}
