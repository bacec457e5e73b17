package models

// SortKey selects the listing order.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
)

// Paging bounds for product listings.
const (
	DefaultPageSize = 24
	MaxPageSize     = 60
)

// CatalogFilters is the typed filter set applied to a product listing.
// Empty slices and nil price bounds mean "no filter" for that dimension.
// Slugs within one dimension are OR-ed; dimensions are AND-ed together.
type CatalogFilters struct {
	Search   string
	Brand    []string
	Category []string
	Gender   []string
	Color    []string
	Size     []string
	PriceMin *float64
	PriceMax *float64
	SortBy   SortKey
	Page     int
	Limit    int

	// IncludeUnpublished lifts the published-only restriction for
	// internal callers. Never set from request input.
	IncludeUnpublished bool
}

// ColorFilterActive reports whether a color filter is applied. The flag
// switches the representative-image strategy for listing cards.
func (f CatalogFilters) ColorFilterActive() bool {
	return len(f.Color) > 0
}

// PageSize returns the limit clamped to [1, MaxPageSize], defaulting
// when unset.
func (f CatalogFilters) PageSize() int {
	switch {
	case f.Limit <= 0:
		return DefaultPageSize
	case f.Limit > MaxPageSize:
		return MaxPageSize
	default:
		return f.Limit
	}
}

// Offset converts the 1-based page into a row offset.
func (f CatalogFilters) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.PageSize()
}
