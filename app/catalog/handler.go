package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/urbankicks/storefront/models"
)

// recommendationLimit caps the "you might also like" rail.
const recommendationLimit = 6

type ListResponse struct {
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
	Products []Product `json:"products"`
}

// Product is the listing-card DTO.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Brand       string    `json:"brand,omitempty"`
	Category    string    `json:"category,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	MinPrice    float64   `json:"minPrice"`
	MaxPrice    float64   `json:"maxPrice"`
	ImageURL    *string   `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Brand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Gender struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Slug  string `json:"slug"`
}

type Color struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	HexCode string `json:"hexCode"`
}

type Size struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Variant struct {
	ID        string   `json:"id"`
	SKU       string   `json:"sku"`
	Price     float64  `json:"price"`
	SalePrice *float64 `json:"salePrice"`
	Color     *Color   `json:"color"`
	Size      *Size    `json:"size"`
	InStock   int      `json:"inStock"`
	Images    []string `json:"images"`
}

type ProductDetail struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Brand       *Brand    `json:"brand"`
	Category    *Category `json:"category"`
	Gender      *Gender   `json:"gender"`
	Variants    []Variant `json:"variants"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Review struct {
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProductProvider interface {
	ListProducts(ctx context.Context, filters models.CatalogFilters) ([]models.ProductCard, int64, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetRecommended(ctx context.Context, id string, limit int) ([]models.ProductCard, error)
}

type ReviewProvider interface {
	ListForProduct(ctx context.Context, productID string, limit int) ([]models.Review, error)
}

type CatalogHandler struct {
	products ProductProvider
	reviews  ReviewProvider
}

func NewCatalogHandler(p ProductProvider, r ReviewProvider) *CatalogHandler {
	return &CatalogHandler{
		products: p,
		reviews:  r,
	}
}

func (h *CatalogHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	filters := ParseFilterParams(r.URL.Query())

	cards, total, err := h.products.ListProducts(r.Context(), filters)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get products")
		return
	}

	products := make([]Product, len(cards))
	for i, c := range cards {
		products[i] = newProductCard(c)
	}

	writeJSON(w, http.StatusOK, ListResponse{
		Total:    total,
		Page:     filters.Page,
		Limit:    filters.PageSize(),
		Products: products,
	})
}

func (h *CatalogHandler) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.products.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get product")
		return
	}

	writeJSON(w, http.StatusOK, newProductDetail(product))
}

func (h *CatalogHandler) HandleGetReviews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	reviews, err := h.reviews.ListForProduct(r.Context(), id, models.MaxReviewPageSize)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get reviews")
		return
	}

	out := make([]Review, len(reviews))
	for i, rv := range reviews {
		author := "Anonymous"
		if rv.User.Name != "" {
			author = rv.User.Name
		}
		out[i] = Review{
			Rating:    rv.Rating,
			Comment:   rv.Comment,
			Author:    author,
			CreatedAt: rv.CreatedAt,
		}
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *CatalogHandler) HandleGetRecommended(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	cards, err := h.products.GetRecommended(r.Context(), id, recommendationLimit)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get recommendations")
		return
	}

	out := make([]Product, len(cards))
	for i, c := range cards {
		out[i] = newProductCard(c)
	}

	writeJSON(w, http.StatusOK, out)
}

func newProductCard(c models.ProductCard) Product {
	return Product{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Brand:       c.BrandName,
		Category:    c.CategoryName,
		Gender:      c.GenderLabel,
		MinPrice:    c.MinPrice.InexactFloat64(),
		MaxPrice:    c.MaxPrice.InexactFloat64(),
		ImageURL:    c.ImageURL,
		CreatedAt:   c.CreatedAt,
	}
}

func newProductDetail(p *models.Product) ProductDetail {
	detail := ProductDetail{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Images:      imageURLs(p.Images),
		CreatedAt:   p.CreatedAt,
	}

	if p.Brand.ID != "" {
		detail.Brand = &Brand{ID: p.Brand.ID, Name: p.Brand.Name, Slug: p.Brand.Slug}
	}
	if p.Category.ID != "" {
		detail.Category = &Category{ID: p.Category.ID, Name: p.Category.Name, Slug: p.Category.Slug}
	}
	if p.Gender.ID != "" {
		detail.Gender = &Gender{ID: p.Gender.ID, Label: p.Gender.Label, Slug: p.Gender.Slug}
	}

	detail.Variants = make([]Variant, len(p.Variants))
	for i, v := range p.Variants {
		variant := Variant{
			ID:      v.ID,
			SKU:     v.SKU,
			Price:   v.Price.InexactFloat64(),
			InStock: v.InStock,
			Images:  imageURLs(v.Images),
		}
		if v.SalePrice != nil {
			sale := v.SalePrice.InexactFloat64()
			variant.SalePrice = &sale
		}
		if v.Color.ID != "" {
			variant.Color = &Color{ID: v.Color.ID, Name: v.Color.Name, Slug: v.Color.Slug, HexCode: v.Color.HexCode}
		}
		if v.Size.ID != "" {
			variant.Size = &Size{ID: v.Size.ID, Name: v.Size.Name, Slug: v.Size.Slug}
		}
		detail.Variants[i] = variant
	}

	return detail
}

func imageURLs(images []models.ProductImage) []string {
	models.SortImages(images)
	urls := make([]string, len(images))
	for i, img := range images {
		urls[i] = img.URL
	}
	return urls
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
