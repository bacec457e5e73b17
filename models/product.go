package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a sellable item in the catalog. Pricing, stock and
// color/size live on its variants; the product itself carries display
// fields and the lookup-dimension references used for filtering.
// Unpublished products never appear in listings.
type Product struct {
	ID               string   `gorm:"type:uuid;primaryKey"`
	Name             string   `gorm:"size:255;not null"`
	Description      string   `gorm:"type:text"`
	CategoryID       string   `gorm:"type:uuid;not null;index"`
	Category         Category `gorm:"foreignKey:CategoryID"`
	GenderID         string   `gorm:"type:uuid;not null;index"`
	Gender           Gender   `gorm:"foreignKey:GenderID"`
	BrandID          string   `gorm:"type:uuid;not null;index"`
	Brand            Brand    `gorm:"foreignKey:BrandID"`
	IsPublished      bool     `gorm:"not null;default:true"`
	DefaultVariantID *string  `gorm:"type:uuid"`
	Variants         []ProductVariant `gorm:"foreignKey:ProductID"`
	Images           []ProductImage   `gorm:"foreignKey:ProductID"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (p *Product) TableName() string {
	return "products"
}
