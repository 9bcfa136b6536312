// Package catalog holds the pure filter/sort pipeline applied to the
// in-memory product list. No I/O, no state: the same inputs always produce
// the same output, and the output is always a subset of the input.
package catalog

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/VGuerra123/TiendaOnline-sub000/internal/domain"
)

// Apply narrows and orders the product list according to state. Stages run
// in a fixed order (tab, search, brand, category, price, sort); each stage
// narrows the previous stage's output. Predicates are independent, so the
// order only matters for performance.
func Apply(products []domain.Product, state domain.FilterState) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !matchesTab(p, state.Tab) {
			continue
		}
		if !matchesQuery(p, state.Query) {
			continue
		}
		if !matchesFacet(p.Vendor, state.Brands) {
			continue
		}
		if !matchesFacet(p.ProductType, state.Categories) {
			continue
		}
		if !matchesPrice(p, state.MinPrice, state.MaxPrice) {
			continue
		}
		out = append(out, p)
	}
	sortProducts(out, state.Sort)
	return out
}

// matchesTab is the page-specific pre-filter: exact productType match,
// empty tab keeps everything
func matchesTab(p domain.Product, tab string) bool {
	return tab == "" || p.ProductType == tab
}

// matchesQuery is a case-insensitive substring match against title,
// description and tags; any hit keeps the product, empty query keeps all
func matchesQuery(p domain.Product, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// matchesFacet keeps products whose label is in the selected set. An empty
// set means no filtering (inclusive default, not exclusive).
func matchesFacet(label string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == label {
			return true
		}
	}
	return false
}

// matchesPrice bounds the minimum variant price, rounded to integer
// currency units, inclusive on both ends
func matchesPrice(p domain.Product, min, max *float64) bool {
	if min == nil && max == nil {
		return true
	}
	price := MinPrice(p)
	if min != nil && price < *min {
		return false
	}
	if max != nil && price > *max {
		return false
	}
	return true
}

// MinPrice is the product's minimum variant price rounded to integer
// currency units. Unparseable amounts count as 0.
func MinPrice(p domain.Product) float64 {
	f, err := strconv.ParseFloat(p.PriceRange.MinVariantPrice.Amount, 64)
	if err != nil {
		return 0
	}
	return math.Round(f)
}

func sortProducts(products []domain.Product, key domain.SortKey) {
	switch key {
	case domain.SortPriceAscending:
		sort.SliceStable(products, func(i, j int) bool {
			return MinPrice(products[i]) < MinPrice(products[j])
		})
	case domain.SortPriceDescending:
		sort.SliceStable(products, func(i, j int) bool {
			return MinPrice(products[i]) > MinPrice(products[j])
		})
	case domain.SortRatingDescending:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case domain.SortNewest:
		// Ordered by creation timestamp, not by ID string: product IDs are
		// opaque and not guaranteed lexically time-ordered.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	default:
		// Featured: stable partition, featured products first, relative
		// order preserved within each partition. Idempotent.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Featured && !products[j].Featured
		})
	}
}
