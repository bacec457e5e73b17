package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbankicks/storefront/models"
)

// MockProductRepo serves canned cards and records the last call so tests
// can assert on what the handler passed down.
type MockProductRepo struct {
	SourceCards []models.ProductCard
	Detail      *models.Product
	Recommended []models.ProductCard
	Err         error

	lastFilters  models.CatalogFilters
	lastID       string
	lastRecLimit int
}

func (m *MockProductRepo) ListProducts(_ context.Context, filters models.CatalogFilters) ([]models.ProductCard, int64, error) {
	m.lastFilters = filters
	if m.Err != nil {
		return nil, 0, m.Err
	}

	start := filters.Offset()
	if start > len(m.SourceCards) {
		start = len(m.SourceCards)
	}
	end := start + filters.PageSize()
	if end > len(m.SourceCards) {
		end = len(m.SourceCards)
	}
	return m.SourceCards[start:end], int64(len(m.SourceCards)), nil
}

func (m *MockProductRepo) GetByID(_ context.Context, id string) (*models.Product, error) {
	m.lastID = id
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Detail == nil || m.Detail.ID != id {
		return nil, models.ErrProductNotFound
	}
	return m.Detail, nil
}

func (m *MockProductRepo) GetRecommended(_ context.Context, id string, limit int) ([]models.ProductCard, error) {
	m.lastID = id
	m.lastRecLimit = limit
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Detail == nil || m.Detail.ID != id {
		return nil, models.ErrProductNotFound
	}
	if limit < len(m.Recommended) {
		return m.Recommended[:limit], nil
	}
	return m.Recommended, nil
}

type MockReviewRepo struct {
	SourceReviews []models.Review
	Err           error

	lastProductID string
	lastLimit     int
}

func (m *MockReviewRepo) ListForProduct(_ context.Context, productID string, limit int) ([]models.Review, error) {
	m.lastProductID = productID
	m.lastLimit = limit
	if m.Err != nil {
		return nil, m.Err
	}
	if limit < len(m.SourceReviews) {
		return m.SourceReviews[:limit], nil
	}
	return m.SourceReviews, nil
}

func newTestCard(id, name string, min, max float64) models.ProductCard {
	url := "/img/" + id + ".jpg"
	return models.ProductCard{
		ID:           id,
		Name:         name,
		BrandName:    "Nike",
		CategoryName: "Shoes",
		GenderLabel:  "Men",
		MinPrice:     decimal.NewFromFloat(min),
		MaxPrice:     decimal.NewFromFloat(max),
		ImageURL:     &url,
		CreatedAt:    time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHandleList(t *testing.T) {
	cards := []models.ProductCard{
		newTestCard("p1", "Air Max 90", 80, 120),
		newTestCard("p2", "Air Force 1", 90, 90),
		newTestCard("p3", "Pegasus", 100, 110),
		newTestCard("p4", "Vomero", 130, 130),
	}

	testCases := []struct {
		name            string
		target          string
		repo            *MockProductRepo
		expectedStatus  int
		expectedTotal   int64
		expectedPage    int
		expectedLimit   int
		expectedIDs     []string
		expectedFilters *models.CatalogFilters
		expectedError   string
	}{
		{
			name:           "default pagination returns the whole page",
			target:         "/api/products",
			repo:           &MockProductRepo{SourceCards: cards},
			expectedStatus: http.StatusOK,
			expectedTotal:  4,
			expectedPage:   1,
			expectedLimit:  models.DefaultPageSize,
			expectedIDs:    []string{"p1", "p2", "p3", "p4"},
		},
		{
			name:           "custom page and limit slice the source",
			target:         "/api/products?page=2&limit=2",
			repo:           &MockProductRepo{SourceCards: cards},
			expectedStatus: http.StatusOK,
			expectedTotal:  4,
			expectedPage:   2,
			expectedLimit:  2,
			expectedIDs:    []string{"p3", "p4"},
		},
		{
			name:           "limit above the cap is clamped",
			target:         "/api/products?limit=500",
			repo:           &MockProductRepo{SourceCards: cards},
			expectedStatus: http.StatusOK,
			expectedTotal:  4,
			expectedPage:   1,
			expectedLimit:  models.MaxPageSize,
			expectedIDs:    []string{"p1", "p2", "p3", "p4"},
		},
		{
			name:           "filters are parsed and passed to the repository",
			target:         "/api/products?brand=nike,adidas&color=red&gender=men&search=air&priceMin=50&priceMax=100&sortBy=price_asc",
			repo:           &MockProductRepo{SourceCards: cards[:1]},
			expectedStatus: http.StatusOK,
			expectedTotal:  1,
			expectedPage:   1,
			expectedLimit:  models.DefaultPageSize,
			expectedIDs:    []string{"p1"},
			expectedFilters: &models.CatalogFilters{
				Search:   "air",
				Brand:    []string{"nike", "adidas"},
				Gender:   []string{"men"},
				Color:    []string{"red"},
				PriceMin: fptr(50),
				PriceMax: fptr(100),
				SortBy:   models.SortPriceAsc,
				Page:     1,
				Limit:    models.DefaultPageSize,
			},
		},
		{
			name:           "empty result",
			target:         "/api/products?brand=unknown",
			repo:           &MockProductRepo{},
			expectedStatus: http.StatusOK,
			expectedTotal:  0,
			expectedPage:   1,
			expectedLimit:  models.DefaultPageSize,
			expectedIDs:    []string{},
		},
		{
			name:           "repository error maps to 500",
			target:         "/api/products",
			repo:           &MockProductRepo{Err: assert.AnError},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to get products",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewCatalogHandler(tc.repo, &MockReviewRepo{})

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rec := httptest.NewRecorder()
			handler.HandleList(rec, req)

			require.Equal(t, tc.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tc.expectedError != "" {
				body := decodeJSON[map[string]string](t, rec)
				assert.Equal(t, tc.expectedError, body["error"])
				return
			}

			resp := decodeJSON[ListResponse](t, rec)
			assert.Equal(t, tc.expectedTotal, resp.Total)
			assert.Equal(t, tc.expectedPage, resp.Page)
			assert.Equal(t, tc.expectedLimit, resp.Limit)

			ids := make([]string, len(resp.Products))
			for i, p := range resp.Products {
				ids[i] = p.ID
			}
			assert.Equal(t, tc.expectedIDs, ids)

			if tc.expectedFilters != nil {
				assert.Equal(t, *tc.expectedFilters, tc.repo.lastFilters)
			}
		})
	}
}

func TestHandleListCardMapping(t *testing.T) {
	repo := &MockProductRepo{SourceCards: []models.ProductCard{newTestCard("p1", "Air Max 90", 80, 120)}}
	handler := NewCatalogHandler(repo, &MockReviewRepo{})

	rec := httptest.NewRecorder()
	handler.HandleList(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[ListResponse](t, rec)
	require.Len(t, resp.Products, 1)

	card := resp.Products[0]
	assert.Equal(t, "Air Max 90", card.Name)
	assert.Equal(t, "Nike", card.Brand)
	assert.Equal(t, "Shoes", card.Category)
	assert.Equal(t, "Men", card.Gender)
	assert.Equal(t, 80.0, card.MinPrice)
	assert.Equal(t, 120.0, card.MaxPrice)
	require.NotNil(t, card.ImageURL)
	assert.Equal(t, "/img/p1.jpg", *card.ImageURL)
}
