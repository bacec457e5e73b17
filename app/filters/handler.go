package filters

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/urbankicks/storefront/models"
)

type Option struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type GenderOption struct {
	Label string `json:"label"`
	Slug  string `json:"slug"`
}

type ColorOption struct {
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	HexCode string `json:"hexCode"`
}

// Response carries every lookup dimension the filter rail renders.
type Response struct {
	Brands     []Option       `json:"brands"`
	Categories []Option       `json:"categories"`
	Genders    []GenderOption `json:"genders"`
	Colors     []ColorOption  `json:"colors"`
	Sizes      []Option       `json:"sizes"`
}

type DimensionProvider interface {
	GetAllBrands(ctx context.Context) ([]models.Brand, error)
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	GetAllGenders(ctx context.Context) ([]models.Gender, error)
	GetAllColors(ctx context.Context) ([]models.Color, error)
	GetAllSizes(ctx context.Context) ([]models.Size, error)
}

type FiltersHandler struct {
	repo DimensionProvider
}

func NewFiltersHandler(r DimensionProvider) *FiltersHandler {
	return &FiltersHandler{repo: r}
}

func (h *FiltersHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	brands, err := h.repo.GetAllBrands(ctx)
	if err != nil {
		writeError(w, "failed to fetch filters")
		return
	}
	categories, err := h.repo.GetAllCategories(ctx)
	if err != nil {
		writeError(w, "failed to fetch filters")
		return
	}
	genders, err := h.repo.GetAllGenders(ctx)
	if err != nil {
		writeError(w, "failed to fetch filters")
		return
	}
	colors, err := h.repo.GetAllColors(ctx)
	if err != nil {
		writeError(w, "failed to fetch filters")
		return
	}
	sizes, err := h.repo.GetAllSizes(ctx)
	if err != nil {
		writeError(w, "failed to fetch filters")
		return
	}

	response := Response{
		Brands:     make([]Option, len(brands)),
		Categories: make([]Option, len(categories)),
		Genders:    make([]GenderOption, len(genders)),
		Colors:     make([]ColorOption, len(colors)),
		Sizes:      make([]Option, len(sizes)),
	}
	for i, b := range brands {
		response.Brands[i] = Option{Name: b.Name, Slug: b.Slug}
	}
	for i, c := range categories {
		response.Categories[i] = Option{Name: c.Name, Slug: c.Slug}
	}
	for i, g := range genders {
		response.Genders[i] = GenderOption{Label: g.Label, Slug: g.Slug}
	}
	for i, c := range colors {
		response.Colors[i] = ColorOption{Name: c.Name, Slug: c.Slug, HexCode: c.HexCode}
	}
	for i, s := range sizes {
		response.Sizes[i] = Option{Name: s.Name, Slug: s.Slug}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
