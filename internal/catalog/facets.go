package catalog

import (
	"sort"

	"github.com/VGuerra123/TiendaOnline-sub000/internal/domain"
)

// FacetMetadata is everything the filter panel needs to render its
// controls: the distinct facet values and the price bounds of the
// unfiltered catalog.
type FacetMetadata struct {
	Brands       []string         `json:"brands"`
	Categories   []string         `json:"categories"`
	PriceRange   PriceRangeData   `json:"priceRange"`
	Availability AvailabilityData `json:"availability"`
}

// PriceRangeData represents the minimum and maximum price in the catalog
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// AvailabilityData represents product availability counts
type AvailabilityData struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}

// Facets derives filter-panel metadata from the full product list
func Facets(products []domain.Product) FacetMetadata {
	brandSet := make(map[string]struct{})
	categorySet := make(map[string]struct{})
	meta := FacetMetadata{
		Brands:     []string{},
		Categories: []string{},
	}

	for i, p := range products {
		if p.Vendor != "" {
			brandSet[p.Vendor] = struct{}{}
		}
		if p.ProductType != "" {
			categorySet[p.ProductType] = struct{}{}
		}
		price := MinPrice(p)
		if i == 0 {
			meta.PriceRange.Min = price
			meta.PriceRange.Max = price
		} else {
			if price < meta.PriceRange.Min {
				meta.PriceRange.Min = price
			}
			if price > meta.PriceRange.Max {
				meta.PriceRange.Max = price
			}
		}
		if p.AvailableForSale {
			meta.Availability.InStock++
		} else {
			meta.Availability.OutOfStock++
		}
	}

	for b := range brandSet {
		meta.Brands = append(meta.Brands, b)
	}
	for c := range categorySet {
		meta.Categories = append(meta.Categories, c)
	}
	sort.Strings(meta.Brands)
	sort.Strings(meta.Categories)
	return meta
}
