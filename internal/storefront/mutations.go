package storefront

// CartCreateMutation creates an empty cart server-side
const CartCreateMutation = cartFields + `
mutation cartCreate {
  cartCreate {
    cart {
      ...CartFields
    }
    userErrors {
      field
      message
    }
  }
}
`

// CartLinesAddMutation appends line items and returns the full updated cart
const CartLinesAddMutation = cartFields + `
mutation cartLinesAdd($cartId: ID!, $lines: [CartLineInput!]!) {
  cartLinesAdd(cartId: $cartId, lines: $lines) {
    cart {
      ...CartFields
    }
    userErrors {
      field
      message
    }
  }
}
`

// CartLinesUpdateMutation sets absolute line quantities (not deltas)
const CartLinesUpdateMutation = cartFields + `
mutation cartLinesUpdate($cartId: ID!, $lines: [CartLineUpdateInput!]!) {
  cartLinesUpdate(cartId: $cartId, lines: $lines) {
    cart {
      ...CartFields
    }
    userErrors {
      field
      message
    }
  }
}
`

// CartLinesRemoveMutation removes lines by ID
const CartLinesRemoveMutation = cartFields + `
mutation cartLinesRemove($cartId: ID!, $lineIds: [ID!]!) {
  cartLinesRemove(cartId: $cartId, lineIds: $lineIds) {
    cart {
      ...CartFields
    }
    userErrors {
      field
      message
    }
  }
}
`

// CartLineAddInput is the wire shape for cartLinesAdd
type CartLineAddInput struct {
	MerchandiseID string `json:"merchandiseId"`
	Quantity      int    `json:"quantity"`
}

// CartLineUpdateWireInput is the wire shape for cartLinesUpdate
type CartLineUpdateWireInput struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}
