package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxReviewPageSize bounds how many reviews a single read returns.
const MaxReviewPageSize = 50

// Review is a customer rating for a product. Rating is 1 through 5.
type Review struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	ProductID string `gorm:"type:uuid;not null;index"`
	UserID    string `gorm:"type:uuid;not null;index"`
	User      User   `gorm:"foreignKey:UserID"`
	Rating    int    `gorm:"not null"`
	Comment   string `gorm:"type:text"`
	CreatedAt time.Time
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

func (r *Review) TableName() string {
	return "reviews"
}
