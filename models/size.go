package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Size is a variant-grain lookup dimension. SortOrder fixes the display
// order of the size picker, which is not alphabetical.
type Size struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Name      string `gorm:"size:32;not null"`
	Slug      string `gorm:"size:32;uniqueIndex;not null"`
	SortOrder int    `gorm:"not null;default:0"`
}

func (s *Size) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (s *Size) TableName() string {
	return "sizes"
}
