package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Dimensions describes the physical size of a variant's packaging, in
// centimeters.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ProductVariant is one purchasable configuration of a product: a
// concrete color/size combination with its own SKU, price and stock.
// SalePrice, when set, is the effective price; Price stays the
// undiscounted baseline.
type ProductVariant struct {
	ID         string           `gorm:"type:uuid;primaryKey"`
	ProductID  string           `gorm:"type:uuid;not null;index"`
	SKU        string           `gorm:"size:64;uniqueIndex;not null"`
	Price      decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	SalePrice  *decimal.Decimal `gorm:"type:decimal(10,2)"`
	ColorID    string           `gorm:"type:uuid;not null;index"`
	Color      Color            `gorm:"foreignKey:ColorID"`
	SizeID     string           `gorm:"type:uuid;not null;index"`
	Size       Size             `gorm:"foreignKey:SizeID"`
	InStock    int              `gorm:"not null;default:0"`
	Weight     float64          `gorm:"not null;default:0"`
	Dimensions *Dimensions      `gorm:"type:text;serializer:json"`
	Images     []ProductImage   `gorm:"foreignKey:VariantID"`
	CreatedAt  time.Time
}

// EffectivePrice returns the sale price when present, else the base price.
func (v *ProductVariant) EffectivePrice() decimal.Decimal {
	if v.SalePrice != nil {
		return *v.SalePrice
	}
	return v.Price
}

func (v *ProductVariant) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

func (v *ProductVariant) TableName() string {
	return "product_variants"
}
