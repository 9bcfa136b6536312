package storefront

// cartFields is shared by every query/mutation that returns a cart snapshot
const cartFields = `
fragment CartFields on Cart {
  id
  checkoutUrl
  lines(first: 250) {
    edges {
      node {
        id
        quantity
        merchandise {
          ... on ProductVariant {
            id
            title
            availableForSale
            price {
              amount
              currencyCode
            }
            compareAtPrice {
              amount
              currencyCode
            }
            selectedOptions {
              name
              value
            }
            product {
              title
            }
          }
        }
      }
    }
  }
  cost {
    subtotalAmount {
      amount
      currencyCode
    }
    totalAmount {
      amount
      currencyCode
    }
    totalTaxAmount {
      amount
      currencyCode
    }
  }
}
`

// ProductsQuery fetches a single page of products with images and variants.
// No cursor pagination: requesting more than the platform page ceiling (250)
// is rejected by Shopify, so large catalogs truncate at one page.
const ProductsQuery = `
query getProducts($first: Int!) {
  products(first: $first) {
    edges {
      node {
        id
        title
        description
        productType
        vendor
        tags
        availableForSale
        createdAt
        updatedAt
        priceRange {
          minVariantPrice {
            amount
            currencyCode
          }
          maxVariantPrice {
            amount
            currencyCode
          }
        }
        metafield(namespace: "reviews", key: "rating") {
          value
        }
        images(first: 20) {
          edges {
            node {
              id
              url
              altText
            }
          }
        }
        variants(first: 100) {
          edges {
            node {
              id
              title
              availableForSale
              price {
                amount
                currencyCode
              }
              compareAtPrice {
                amount
                currencyCode
              }
              selectedOptions {
                name
                value
              }
            }
          }
        }
      }
    }
  }
}
`

// CartQuery re-fetches a cart by ID, used to resynchronize after external
// changes (e.g. returning from an abandoned checkout)
const CartQuery = cartFields + `
query getCart($cartId: ID!) {
  cart(id: $cartId) {
    ...CartFields
  }
}
`

// ShopQuery is a minimal connectivity check
const ShopQuery = `
query {
  shop {
    name
  }
}
`
