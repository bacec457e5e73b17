package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductImage is a single catalog image. A nil VariantID marks a
// generic product-level image; a set VariantID scopes the image to one
// variant. Display order is primary flag first, then ascending sort
// order.
type ProductImage struct {
	ID        string  `gorm:"type:uuid;primaryKey"`
	ProductID string  `gorm:"type:uuid;not null;index"`
	VariantID *string `gorm:"type:uuid;index"`
	URL       string  `gorm:"not null"`
	SortOrder int     `gorm:"not null;default:0"`
	IsPrimary bool    `gorm:"not null;default:false"`
}

func (i *ProductImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

func (i *ProductImage) TableName() string {
	return "product_images"
}
