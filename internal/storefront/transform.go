package storefront

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/VGuerra123/TiendaOnline-sub000/internal/domain"
)

// featuredTags mark products the storefront pins first under the default sort
var featuredTags = []string{"featured", "bestseller", "destacado"}

// transformProduct normalizes one GraphQL product node into the flat
// application model: edges/node wrappers unwrapped, altText falling back to
// the product title, amount strings passed through unparsed.
func transformProduct(n productNode) (domain.Product, error) {
	if n.ID == "" {
		return domain.Product{}, fmt.Errorf("product node missing id")
	}
	if n.Title == "" {
		return domain.Product{}, fmt.Errorf("product node %s missing title", n.ID)
	}

	createdAt, err := time.Parse(time.RFC3339, n.CreatedAt)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product node %s: bad createdAt %q: %w", n.ID, n.CreatedAt, err)
	}
	updatedAt, err := time.Parse(time.RFC3339, n.UpdatedAt)
	if err != nil {
		return domain.Product{}, fmt.Errorf("product node %s: bad updatedAt %q: %w", n.ID, n.UpdatedAt, err)
	}

	images := make([]domain.Image, 0, len(n.Images.Edges))
	for _, e := range n.Images.Edges {
		alt := e.Node.AltText
		if alt == "" {
			alt = n.Title
		}
		images = append(images, domain.Image{
			ID:      e.Node.ID,
			Src:     e.Node.URL,
			AltText: alt,
		})
	}

	variants := make([]domain.Variant, 0, len(n.Variants.Edges))
	for _, e := range n.Variants.Edges {
		variants = append(variants, transformVariant(e.Node))
	}

	return domain.Product{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		Images:      images,
		Variants:    variants,
		PriceRange: domain.PriceRange{
			MinVariantPrice: transformMoney(n.PriceRange.MinVariantPrice),
			MaxVariantPrice: transformMoney(n.PriceRange.MaxVariantPrice),
		},
		Tags:             n.Tags,
		ProductType:      n.ProductType,
		Vendor:           n.Vendor,
		AvailableForSale: n.AvailableForSale,
		Featured:         hasFeaturedTag(n.Tags),
		Rating:           parseRating(n.Metafield),
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}, nil
}

// transformCart normalizes a cart node. Every mutation returns the entire
// refreshed cart, so this is the only place cart state enters the app.
func transformCart(n cartNode) (domain.Cart, error) {
	if n.ID == "" {
		return domain.Cart{}, fmt.Errorf("cart node missing id")
	}

	lines := make([]domain.CartLine, 0, len(n.Lines.Edges))
	for _, e := range n.Lines.Edges {
		title := e.Node.Merchandise.Title
		if e.Node.Merchandise.Product != nil && e.Node.Merchandise.Product.Title != "" {
			title = e.Node.Merchandise.Product.Title
		}
		lines = append(lines, domain.CartLine{
			ID:       e.Node.ID,
			Quantity: e.Node.Quantity,
			Title:    title,
			Variant:  transformVariant(e.Node.Merchandise),
		})
	}

	totalTax := domain.Money{Amount: "0.0", CurrencyCode: n.Cost.TotalAmount.CurrencyCode}
	if n.Cost.TotalTaxAmount != nil {
		totalTax = transformMoney(*n.Cost.TotalTaxAmount)
	}

	return domain.Cart{
		ID:            n.ID,
		CheckoutURL:   n.CheckoutURL,
		Lines:         lines,
		SubtotalPrice: transformMoney(n.Cost.SubtotalAmount),
		TotalPrice:    transformMoney(n.Cost.TotalAmount),
		TotalTax:      totalTax,
	}, nil
}

func transformVariant(n variantNode) domain.Variant {
	opts := make([]domain.SelectedOption, 0, len(n.SelectedOptions))
	for _, o := range n.SelectedOptions {
		opts = append(opts, domain.SelectedOption{Name: o.Name, Value: o.Value})
	}
	v := domain.Variant{
		ID:               n.ID,
		Title:            n.Title,
		Price:            transformMoney(n.Price),
		AvailableForSale: n.AvailableForSale,
		SelectedOptions:  opts,
	}
	if n.CompareAtPrice != nil {
		cap := transformMoney(*n.CompareAtPrice)
		v.CompareAtPrice = &cap
	}
	return v
}

func transformMoney(n moneyNode) domain.Money {
	return domain.Money{Amount: n.Amount, CurrencyCode: n.CurrencyCode}
}

func hasFeaturedTag(tags []string) bool {
	for _, tag := range tags {
		for _, ft := range featuredTags {
			if strings.EqualFold(tag, ft) {
				return true
			}
		}
	}
	return false
}

// parseRating reads the reviews.rating metafield. Shopify stores rating
// metafields either as a plain decimal or as JSON {"value":"4.8",...}.
// Products without a rating get 0.
func parseRating(m *metafieldNode) float64 {
	if m == nil || m.Value == "" {
		return 0
	}
	if f, err := strconv.ParseFloat(m.Value, 64); err == nil {
		return f
	}
	var obj struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal([]byte(m.Value), &obj); err == nil && obj.Value != "" {
		if f, err := strconv.ParseFloat(obj.Value, 64); err == nil {
			return f
		}
	}
	return 0
}
