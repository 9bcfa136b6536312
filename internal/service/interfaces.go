package service

import (
	"context"

	"github.com/VGuerra123/TiendaOnline-sub000/internal/domain"
)

// CommerceClient is the contract the services need from the storefront
// GraphQL client
type CommerceClient interface {
	IsConfigured() bool
	GetAllProducts(ctx context.Context, limit int) []domain.Product
	CreateCart(ctx context.Context) (*domain.Cart, error)
	AddLines(ctx context.Context, cartID string, lines []domain.CartLineInput) (*domain.Cart, error)
	UpdateLines(ctx context.Context, cartID string, lines []domain.CartLineUpdate) (*domain.Cart, error)
	RemoveLines(ctx context.Context, cartID string, lineIDs []string) (*domain.Cart, error)
	GetCart(ctx context.Context, cartID string) (*domain.Cart, error)
}

// CartSessions binds browser sessions to cart IDs
type CartSessions interface {
	CartID(ctx context.Context, sessionID string) (string, error)
	SetCartID(ctx context.Context, sessionID, cartID string) error
	Clear(ctx context.Context, sessionID string) error
}
