package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/urbankicks/storefront/models"
)

var validate = validator.New()

const sortTokenRule = "oneof=featured newest price_asc price_desc"

// ParseFilterParams normalizes raw query tokens into a typed filter set.
// List tokens accept repeated keys or comma-joined values and come back
// deduplicated in first-seen order. Malformed numeric input falls back
// to the default instead of failing; missing values mean "no filter".
func ParseFilterParams(query url.Values) models.CatalogFilters {
	f := models.CatalogFilters{
		Search:   strings.TrimSpace(query.Get("search")),
		Brand:    parseList(query["brand"]),
		Category: parseList(query["category"]),
		Gender:   parseList(query["gender"]),
		Color:    parseList(query["color"]),
		Size:     parseList(query["size"]),
		PriceMin: parsePrice(query.Get("priceMin")),
		PriceMax: parsePrice(query.Get("priceMax")),
		SortBy:   models.SortNewest,
		Page:     1,
		Limit:    models.DefaultPageSize,
	}

	if sort := query.Get("sortBy"); sort != "" {
		if err := validate.Var(sort, sortTokenRule); err == nil {
			f.SortBy = models.SortKey(sort)
		}
	}

	if p, err := strconv.Atoi(query.Get("page")); err == nil && p >= 1 {
		f.Page = p
	}

	if l, err := strconv.Atoi(query.Get("limit")); err == nil {
		switch {
		case l < 1:
			f.Limit = 1
		case l > models.MaxPageSize:
			f.Limit = models.MaxPageSize
		default:
			f.Limit = l
		}
	}

	return f
}

// StringifyFilterParams renders a filter set back into a canonical query
// string. Defaults are omitted, so a round trip through ParseFilterParams
// preserves the semantic filter set even when token order differs.
func StringifyFilterParams(f models.CatalogFilters) string {
	var parts []string
	add := func(key, value string) {
		parts = append(parts, key+"="+url.QueryEscape(value))
	}
	addList := func(key string, values []string) {
		if len(values) > 0 {
			add(key, strings.Join(values, ","))
		}
	}

	if f.Search != "" {
		add("search", f.Search)
	}
	addList("brand", f.Brand)
	addList("category", f.Category)
	addList("gender", f.Gender)
	addList("color", f.Color)
	addList("size", f.Size)
	if f.PriceMin != nil {
		add("priceMin", strconv.FormatFloat(*f.PriceMin, 'f', -1, 64))
	}
	if f.PriceMax != nil {
		add("priceMax", strconv.FormatFloat(*f.PriceMax, 'f', -1, 64))
	}
	if f.SortBy != "" && f.SortBy != models.SortNewest {
		add("sortBy", string(f.SortBy))
	}
	if f.Page > 1 {
		add("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 && f.Limit != models.DefaultPageSize {
		add("limit", strconv.Itoa(f.Limit))
	}

	return strings.Join(parts, "&")
}

func parseList(values []string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if _, dup := seen[part]; dup {
				continue
			}
			seen[part] = struct{}{}
			out = append(out, part)
		}
	}
	return out
}

func parsePrice(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}
