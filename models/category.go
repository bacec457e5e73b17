package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a flat product grouping (e.g. shoes, apparel). The slug is
// the external filter token; the id is used for joins.
type Category struct {
	ID   string `gorm:"type:uuid;primaryKey"`
	Name string `gorm:"size:128;not null"`
	Slug string `gorm:"size:128;uniqueIndex;not null"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (c *Category) TableName() string {
	return "categories"
}
