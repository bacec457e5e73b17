package models

import (
	"context"

	"gorm.io/gorm"
)

// DimensionsRepository reads the five flat lookup dimensions the filter
// rail is built from.
type DimensionsRepository struct {
	db *gorm.DB
}

func NewDimensionsRepository(db *gorm.DB) *DimensionsRepository {
	return &DimensionsRepository{
		db: db,
	}
}

func (r *DimensionsRepository) GetAllBrands(ctx context.Context) ([]Brand, error) {
	var brands []Brand
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *DimensionsRepository) GetAllCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *DimensionsRepository) GetAllGenders(ctx context.Context) ([]Gender, error) {
	var genders []Gender
	if err := r.db.WithContext(ctx).Order("label ASC").Find(&genders).Error; err != nil {
		return nil, err
	}
	return genders, nil
}

func (r *DimensionsRepository) GetAllColors(ctx context.Context) ([]Color, error) {
	var colors []Color
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&colors).Error; err != nil {
		return nil, err
	}
	return colors, nil
}

// Sizes come back in picker order, not alphabetical.
func (r *DimensionsRepository) GetAllSizes(ctx context.Context) ([]Size, error) {
	var sizes []Size
	if err := r.db.WithContext(ctx).Order("sort_order ASC").Find(&sizes).Error; err != nil {
		return nil, err
	}
	return sizes, nil
}
