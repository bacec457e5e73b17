package models

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// effectivePrice is the price a variant actually sells at.
const effectivePrice = "COALESCE(product_variants.sale_price, product_variants.price)"

const cardColumns = "products.id, products.name, products.description, products.created_at, " +
	"brands.name AS brand_name, categories.name AS category_name, genders.label AS gender_label, " +
	"COALESCE(MIN(" + effectivePrice + "), 0) AS min_price, " +
	"COALESCE(MAX(" + effectivePrice + "), 0) AS max_price"

const cardGrouping = "products.id, products.name, products.description, products.created_at, " +
	"brands.name, categories.name, genders.label"

// ProductCard is one row of a product listing: the product joined with
// its display names, effective-price range and representative image.
type ProductCard struct {
	ID           string
	Name         string
	Description  string
	BrandName    string
	CategoryName string
	GenderLabel  string
	MinPrice     decimal.Decimal
	MaxPrice     decimal.Decimal
	ImageURL     *string `gorm:"-"`
	CreatedAt    time.Time
}

type ProductsRepository struct {
	db *gorm.DB
}

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

// listQuery assembles the joined, filtered product query shared by the
// page read and the count read. Variant-grain predicates (color, size,
// price bounds) restrict variant rows before any grouping, so a product
// matches when at least one of its variants satisfies them and the price
// aggregates only cover the surviving rows. Aggregates are never
// filtered after grouping.
func (r *ProductsRepository) listQuery(ctx context.Context, f CatalogFilters) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&Product{}).
		Joins("LEFT JOIN brands ON brands.id = products.brand_id").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Joins("LEFT JOIN genders ON genders.id = products.gender_id").
		Joins("LEFT JOIN product_variants ON product_variants.product_id = products.id").
		Joins("LEFT JOIN colors ON colors.id = product_variants.color_id").
		Joins("LEFT JOIN sizes ON sizes.id = product_variants.size_id")

	if !f.IncludeUnpublished {
		q = q.Where("products.is_published = ?", true)
	}

	if s := strings.TrimSpace(f.Search); s != "" {
		term := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"(LOWER(products.name) LIKE ? OR LOWER(COALESCE(products.description, '')) LIKE ?"+
				" OR LOWER(brands.name) LIKE ? OR LOWER(categories.name) LIKE ?)",
			term, term, term, term,
		)
	}

	if len(f.Brand) > 0 {
		q = q.Where("brands.slug IN ?", f.Brand)
	}
	if len(f.Category) > 0 {
		q = q.Where("categories.slug IN ?", f.Category)
	}
	if len(f.Gender) > 0 {
		q = q.Where("genders.slug IN ?", f.Gender)
	}
	if len(f.Color) > 0 {
		q = q.Where("colors.slug IN ?", f.Color)
	}
	if len(f.Size) > 0 {
		q = q.Where("sizes.slug IN ?", f.Size)
	}
	if f.PriceMin != nil {
		q = q.Where(effectivePrice+" >= ?", *f.PriceMin)
	}
	if f.PriceMax != nil {
		q = q.Where(effectivePrice+" <= ?", *f.PriceMax)
	}

	return q
}

// orderClause maps the sort key to an order-by expression. Every order
// ends on products.id: aggregate-sorted ties are storage-order-dependent
// otherwise.
func orderClause(f CatalogFilters) string {
	switch f.SortBy {
	case SortPriceAsc:
		return "MIN(" + effectivePrice + ") ASC, products.id ASC"
	case SortPriceDesc:
		return "MAX(" + effectivePrice + ") DESC, products.id ASC"
	case SortNewest:
		return "products.created_at DESC, products.id ASC"
	default:
		// featured: defer to storage order, kept stable by id.
		return "products.id ASC"
	}
}

// ListProducts returns one page of listing cards plus the total distinct
// match count. The two reads share one predicate set but are independent,
// so they run concurrently; the count must not see LIMIT/OFFSET.
func (r *ProductsRepository) ListProducts(ctx context.Context, f CatalogFilters) ([]ProductCard, int64, error) {
	var (
		cards []ProductCard
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.listQuery(gctx, f).
			Select(cardColumns).
			Group(cardGrouping).
			Order(orderClause(f)).
			Limit(f.PageSize()).
			Offset(f.Offset()).
			Scan(&cards).Error
	})
	g.Go(func() error {
		return r.listQuery(gctx, f).Distinct("products.id").Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	if err := r.attachCardImages(ctx, cards, f.ColorFilterActive(), false); err != nil {
		return nil, 0, err
	}
	return cards, total, nil
}

// GetByID loads the full detail graph for one product: brand, category
// and gender objects, variants ordered by SKU with their color, size and
// scoped images, and the generic product-level images in display order.
func (r *ProductsRepository) GetByID(ctx context.Context, id string) (*Product, error) {
	var product Product
	err := r.db.WithContext(ctx).
		Preload("Brand").
		Preload("Category").
		Preload("Gender").
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_variants.sku ASC")
		}).
		Preload("Variants.Color").
		Preload("Variants.Size").
		Preload("Variants.Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC, sort_order ASC")
		}).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Where("variant_id IS NULL").Order("is_primary DESC, sort_order ASC")
		}).
		Where("products.id = ?", id).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// GetRecommended returns up to limit other published products sharing
// the subject's category, brand and gender, newest first. Candidates
// without a single image are excluded outright rather than rendered with
// a placeholder.
func (r *ProductsRepository) GetRecommended(ctx context.Context, productID string, limit int) ([]ProductCard, error) {
	var subject Product
	err := r.db.WithContext(ctx).
		Select("id", "category_id", "brand_id", "gender_id").
		Where("id = ?", productID).
		First(&subject).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	var cards []ProductCard
	err = r.db.WithContext(ctx).Model(&Product{}).
		Joins("LEFT JOIN brands ON brands.id = products.brand_id").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Joins("LEFT JOIN genders ON genders.id = products.gender_id").
		Joins("LEFT JOIN product_variants ON product_variants.product_id = products.id").
		Where("products.id <> ?", subject.ID).
		Where("products.is_published = ?", true).
		Where("products.category_id = ? AND products.brand_id = ? AND products.gender_id = ?",
			subject.CategoryID, subject.BrandID, subject.GenderID).
		Where("EXISTS (SELECT 1 FROM product_images WHERE product_images.product_id = products.id)").
		Select(cardColumns).
		Group(cardGrouping).
		Order("products.created_at DESC, products.id ASC").
		Limit(limit).
		Scan(&cards).Error
	if err != nil {
		return nil, err
	}

	// Rail cards prefer the generic image but may fall back to a
	// variant-scoped one; the EXISTS guard above already ensured there
	// is something to show.
	if err := r.attachCardImages(ctx, cards, false, true); err != nil {
		return nil, err
	}
	return cards, nil
}

// attachCardImages resolves one representative image per card through
// the shared BestImage rule. fallback permits the opposite scope when
// the preferred one has no image.
func (r *ProductsRepository) attachCardImages(ctx context.Context, cards []ProductCard, variantScoped, fallback bool) error {
	if len(cards) == 0 {
		return nil
	}

	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}

	var images []ProductImage
	if err := r.db.WithContext(ctx).Where("product_id IN ?", ids).Find(&images).Error; err != nil {
		return err
	}

	byProduct := make(map[string][]ProductImage, len(cards))
	for _, img := range images {
		byProduct[img.ProductID] = append(byProduct[img.ProductID], img)
	}

	for i := range cards {
		imgs := byProduct[cards[i].ID]
		best := BestImage(imgs, variantScoped)
		if best == nil && fallback {
			best = BestImage(imgs, !variantScoped)
		}
		if best != nil {
			url := best.URL
			cards[i].ImageURL = &url
		}
	}
	return nil
}
