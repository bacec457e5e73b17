package catalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbankicks/storefront/models"
)

func TestParseFilterParams(t *testing.T) {
	testCases := []struct {
		name     string
		rawQuery string
		expected models.CatalogFilters
	}{
		{
			name:     "empty query falls back to defaults",
			rawQuery: "",
			expected: models.CatalogFilters{
				SortBy: models.SortNewest,
				Page:   1,
				Limit:  models.DefaultPageSize,
			},
		},
		{
			name:     "comma-joined list is split trimmed and deduplicated",
			rawQuery: "brand=nike,%20adidas,nike,",
			expected: models.CatalogFilters{
				Brand:  []string{"nike", "adidas"},
				SortBy: models.SortNewest,
				Page:   1,
				Limit:  models.DefaultPageSize,
			},
		},
		{
			name:     "repeated keys merge into one list",
			rawQuery: "color=red&color=black,red",
			expected: models.CatalogFilters{
				Color:  []string{"red", "black"},
				SortBy: models.SortNewest,
				Page:   1,
				Limit:  models.DefaultPageSize,
			},
		},
		{
			name:     "full filter set",
			rawQuery: "search=air%20max&brand=nike&category=shoes&gender=men&color=red&size=7,8&priceMin=50&priceMax=100.5&sortBy=price_asc&page=3&limit=12",
			expected: models.CatalogFilters{
				Search:   "air max",
				Brand:    []string{"nike"},
				Category: []string{"shoes"},
				Gender:   []string{"men"},
				Color:    []string{"red"},
				Size:     []string{"7", "8"},
				PriceMin: fptr(50),
				PriceMax: fptr(100.5),
				SortBy:   models.SortPriceAsc,
				Page:     3,
				Limit:    12,
			},
		},
		{
			name:     "malformed numbers are ignored",
			rawQuery: "priceMin=abc&priceMax=-10&page=abc&limit=xyz",
			expected: models.CatalogFilters{
				SortBy: models.SortNewest,
				Page:   1,
				Limit:  models.DefaultPageSize,
			},
		},
		{
			name:     "unknown sort token keeps the default",
			rawQuery: "sortBy=bogus",
			expected: models.CatalogFilters{
				SortBy: models.SortNewest,
				Page:   1,
				Limit:  models.DefaultPageSize,
			},
		},
		{
			name:     "page below one keeps the default",
			rawQuery: "page=0",
			expected: models.CatalogFilters{
				SortBy: models.SortNewest,
				Page:   1,
				Limit:  models.DefaultPageSize,
			},
		},
		{
			name:     "limit is clamped to the maximum",
			rawQuery: "limit=200",
			expected: models.CatalogFilters{
				SortBy: models.SortNewest,
				Page:   1,
				Limit:  models.MaxPageSize,
			},
		},
		{
			name:     "limit below one is clamped up",
			rawQuery: "limit=0",
			expected: models.CatalogFilters{
				SortBy: models.SortNewest,
				Page:   1,
				Limit:  1,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query, err := url.ParseQuery(tc.rawQuery)
			require.NoError(t, err)

			assert.Equal(t, tc.expected, ParseFilterParams(query))
		})
	}
}

func TestStringifyFilterParamsRoundTrip(t *testing.T) {
	testCases := []struct {
		name    string
		filters models.CatalogFilters
	}{
		{
			name: "defaults collapse to an empty string",
			filters: models.CatalogFilters{
				SortBy: models.SortNewest,
				Page:   1,
				Limit:  models.DefaultPageSize,
			},
		},
		{
			name: "full filter set survives a round trip",
			filters: models.CatalogFilters{
				Search:   "air max",
				Brand:    []string{"nike", "adidas"},
				Category: []string{"shoes"},
				Gender:   []string{"men"},
				Color:    []string{"red"},
				Size:     []string{"7", "8"},
				PriceMin: fptr(50),
				PriceMax: fptr(100.5),
				SortBy:   models.SortPriceDesc,
				Page:     2,
				Limit:    12,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw := StringifyFilterParams(tc.filters)

			query, err := url.ParseQuery(raw)
			require.NoError(t, err)

			assert.Equal(t, tc.filters, ParseFilterParams(query))
		})
	}
}

func TestStringifyFilterParamsOmitsDefaults(t *testing.T) {
	raw := StringifyFilterParams(models.CatalogFilters{
		Brand:  []string{"nike"},
		SortBy: models.SortNewest,
		Page:   1,
		Limit:  models.DefaultPageSize,
	})

	assert.Equal(t, "brand=nike", raw)
}

func fptr(v float64) *float64 {
	return &v
}
