package domain

import "time"

// Money is a decimal amount with its currency. Amount stays a string end to
// end; the storefront parses it at render time.
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

// Image is a product image. AltText falls back to the product title when
// Shopify omits it.
type Image struct {
	ID      string `json:"id"`
	Src     string `json:"src"`
	AltText string `json:"altText"`
}

// SelectedOption is one option choice on a variant (e.g. Color: Black)
type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Variant is a purchasable SKU of a product
type Variant struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Price            Money            `json:"price"`
	CompareAtPrice   *Money           `json:"compareAtPrice,omitempty"`
	AvailableForSale bool             `json:"availableForSale"`
	SelectedOptions  []SelectedOption `json:"selectedOptions"`
}

// PriceRange spans the cheapest and most expensive variant of a product.
// Invariant: MinVariantPrice.Amount <= MaxVariantPrice.Amount.
type PriceRange struct {
	MinVariantPrice Money `json:"minVariantPrice"`
	MaxVariantPrice Money `json:"maxVariantPrice"`
}

// Product is the normalized catalog record built from one GraphQL product
// node. Immutable after normalization; pages re-fetch instead of patching.
type Product struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Images           []Image    `json:"images"`
	Variants         []Variant  `json:"variants"`
	PriceRange       PriceRange `json:"priceRange"`
	Tags             []string   `json:"tags"`
	ProductType      string     `json:"productType"`
	Vendor           string     `json:"vendor"`
	AvailableForSale bool       `json:"availableForSale"`
	Featured         bool       `json:"featured"`
	Rating           float64    `json:"rating"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// CartLine is one line item in a cart snapshot
type CartLine struct {
	ID       string  `json:"id"`
	Quantity int     `json:"quantity"`
	Title    string  `json:"title"`
	Variant  Variant `json:"variant"`
}

// Cart is the server's cart snapshot. Every mutation returns the whole
// refreshed cart; the server copy is always the source of truth.
// Invariant: TotalPrice.Amount >= SubtotalPrice.Amount.
type Cart struct {
	ID            string     `json:"id"`
	CheckoutURL   string     `json:"checkoutUrl"`
	Lines         []CartLine `json:"lines"`
	SubtotalPrice Money      `json:"subtotalPrice"`
	TotalPrice    Money      `json:"totalPrice"`
	TotalTax      Money      `json:"totalTax"`
}

// CartLineInput adds a variant to a cart
type CartLineInput struct {
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity"`
}

// CartLineUpdate sets the absolute quantity of an existing line (not a
// delta). Quantity 0 is passed through as-is; use RemoveLines to delete.
type CartLineUpdate struct {
	LineID   string `json:"lineId"`
	Quantity int    `json:"quantity"`
}
