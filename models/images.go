package models

import "sort"

// BestImage picks the representative image from a product's image set.
// With variantScoped true (a color filter is active) only images bound to
// a variant are considered; otherwise only generic product-level images
// are. Ranking: primary flag first, then ascending sort order. Returns
// nil when no image of the wanted scope exists; the UI substitutes a
// placeholder.
//
// Listing cards and detail views must both go through this function so
// the two paths cannot drift apart.
func BestImage(images []ProductImage, variantScoped bool) *ProductImage {
	var best *ProductImage
	for i := range images {
		img := &images[i]
		if (img.VariantID != nil) != variantScoped {
			continue
		}
		if best == nil || imageRankedAbove(img, best) {
			best = img
		}
	}
	return best
}

// SortImages orders a slice in display order: primary first, then sort
// order.
func SortImages(images []ProductImage) {
	sort.SliceStable(images, func(i, j int) bool {
		return imageRankedAbove(&images[i], &images[j])
	})
}

func imageRankedAbove(a, b *ProductImage) bool {
	if a.IsPrimary != b.IsPrimary {
		return a.IsPrimary
	}
	return a.SortOrder < b.SortOrder
}
