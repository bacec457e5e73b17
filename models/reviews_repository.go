package models

import (
	"context"

	"gorm.io/gorm"
)

type ReviewsRepository struct {
	db *gorm.DB
}

func NewReviewsRepository(db *gorm.DB) *ReviewsRepository {
	return &ReviewsRepository{
		db: db,
	}
}

// ListForProduct returns the most recent reviews for a product, newest
// first, with the author preloaded when the user row still exists.
func (r *ReviewsRepository) ListForProduct(ctx context.Context, productID string, limit int) ([]Review, error) {
	if limit <= 0 || limit > MaxReviewPageSize {
		limit = MaxReviewPageSize
	}

	var reviews []Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("product_id = ?", productID).
		Order("created_at DESC, id ASC").
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
