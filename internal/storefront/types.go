package storefront

// Typed response shapes per query/mutation so malformed remote responses
// fail at the normalization boundary instead of leaking zero values
// downstream.

type edge[T any] struct {
	Node T `json:"node"`
}

type connection[T any] struct {
	Edges []edge[T] `json:"edges"`
}

type moneyNode struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type imageNode struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	AltText string `json:"altText"`
}

type selectedOptionNode struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type variantNode struct {
	ID               string               `json:"id"`
	Title            string               `json:"title"`
	AvailableForSale bool                 `json:"availableForSale"`
	Price            moneyNode            `json:"price"`
	CompareAtPrice   *moneyNode           `json:"compareAtPrice"`
	SelectedOptions  []selectedOptionNode `json:"selectedOptions"`
	// Product is only populated on cart line merchandise
	Product *struct {
		Title string `json:"title"`
	} `json:"product"`
}

type priceRangeNode struct {
	MinVariantPrice moneyNode `json:"minVariantPrice"`
	MaxVariantPrice moneyNode `json:"maxVariantPrice"`
}

type metafieldNode struct {
	Value string `json:"value"`
}

type productNode struct {
	ID               string                  `json:"id"`
	Title            string                  `json:"title"`
	Description      string                  `json:"description"`
	ProductType      string                  `json:"productType"`
	Vendor           string                  `json:"vendor"`
	Tags             []string                `json:"tags"`
	AvailableForSale bool                    `json:"availableForSale"`
	CreatedAt        string                  `json:"createdAt"`
	UpdatedAt        string                  `json:"updatedAt"`
	PriceRange       priceRangeNode          `json:"priceRange"`
	Metafield        *metafieldNode          `json:"metafield"`
	Images           connection[imageNode]   `json:"images"`
	Variants         connection[variantNode] `json:"variants"`
}

type productsData struct {
	Products connection[productNode] `json:"products"`
}

type cartLineNode struct {
	ID          string      `json:"id"`
	Quantity    int         `json:"quantity"`
	Merchandise variantNode `json:"merchandise"`
}

type cartCostNode struct {
	SubtotalAmount moneyNode  `json:"subtotalAmount"`
	TotalAmount    moneyNode  `json:"totalAmount"`
	TotalTaxAmount *moneyNode `json:"totalTaxAmount"`
}

type cartNode struct {
	ID          string                   `json:"id"`
	CheckoutURL string                   `json:"checkoutUrl"`
	Lines       connection[cartLineNode] `json:"lines"`
	Cost        cartCostNode             `json:"cost"`
}

type userError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

// cartPayload is the shared mutation payload shape (cart + userErrors)
type cartPayload struct {
	Cart       *cartNode   `json:"cart"`
	UserErrors []userError `json:"userErrors"`
}
