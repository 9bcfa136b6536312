package domain

// SortKey selects the catalog sort order
type SortKey string

const (
	// SortFeatured is the default: featured products first, relative order
	// preserved within each partition
	SortFeatured SortKey = "featured"
	// SortPriceAscending orders by minimum variant price, cheapest first
	SortPriceAscending SortKey = "price-ascending"
	// SortPriceDescending orders by minimum variant price, priciest first
	SortPriceDescending SortKey = "price-descending"
	// SortRatingDescending orders by rating, best first
	SortRatingDescending SortKey = "rating-descending"
	// SortNewest orders by creation timestamp, newest first
	SortNewest SortKey = "newest-first"
)

// IsValid checks if the sort key is one of the supported orders
func (s SortKey) IsValid() bool {
	switch s {
	case SortFeatured, SortPriceAscending, SortPriceDescending,
		SortRatingDescending, SortNewest:
		return true
	default:
		return false
	}
}

// FilterState is the combined catalog filter. Zero value matches everything.
type FilterState struct {
	// Tab is a page-specific category label; exact match, empty = skip
	Tab string
	// Query is a case-insensitive substring matched against title,
	// description and tags
	Query string
	// Brands keeps products whose vendor is a member; empty = keep all
	Brands []string
	// Categories keeps products whose productType is a member; empty = keep all
	Categories []string
	// MinPrice/MaxPrice bound the minimum variant price (rounded to integer
	// currency units), inclusive on both ends; nil = unbounded
	MinPrice *float64
	MaxPrice *float64
	// Sort defaults to SortFeatured when empty or unknown
	Sort SortKey
}
