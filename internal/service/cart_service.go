package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/VGuerra123/TiendaOnline-sub000/internal/domain"
	"github.com/VGuerra123/TiendaOnline-sub000/pkg/errors"
)

// CartService owns the session -> cart binding. A cart is created lazily,
// once per session, on the first line add; every mutation returns the
// platform's full cart snapshot and the service never patches state
// client-side. Multi-line changes are independent round trips with no
// atomicity guarantee across calls.
type CartService struct {
	client   CommerceClient
	sessions CartSessions
	logger   *zap.Logger
}

// NewCartService creates a cart service
func NewCartService(client CommerceClient, sessions CartSessions, logger *zap.Logger) *CartService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartService{client: client, sessions: sessions, logger: logger}
}

// AddLines appends lines to the session's cart, creating the cart first if
// the session has none yet
func (s *CartService) AddLines(ctx context.Context, sessionID string, lines []domain.CartLineInput) (*domain.Cart, error) {
	cartID, err := s.sessions.CartID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("resolve session cart: %w", err)
	}

	if cartID == "" {
		cart, err := s.client.CreateCart(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.sessions.SetCartID(ctx, sessionID, cart.ID); err != nil {
			// The cart exists on the platform either way; losing the binding
			// just means the next request starts a fresh cart.
			s.logger.Warn("Failed to persist cart session binding", zap.Error(err), zap.String("cart_id", cart.ID))
		}
		cartID = cart.ID
		s.logger.Info("Created cart for session", zap.String("cart_id", cartID))
	}

	return s.client.AddLines(ctx, cartID, lines)
}

// UpdateLines sets absolute quantities on the session's cart
func (s *CartService) UpdateLines(ctx context.Context, sessionID string, lines []domain.CartLineUpdate) (*domain.Cart, error) {
	cartID, err := s.requireCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.client.UpdateLines(ctx, cartID, lines)
}

// RemoveLines removes lines from the session's cart
func (s *CartService) RemoveLines(ctx context.Context, sessionID string, lineIDs []string) (*domain.Cart, error) {
	cartID, err := s.requireCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.client.RemoveLines(ctx, cartID, lineIDs)
}

// GetCart re-fetches the session's cart from the platform, used to
// resynchronize after external changes (e.g. an abandoned checkout)
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	cartID, err := s.requireCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.client.GetCart(ctx, cartID)
}

// ClearCart unbinds the session's cart so the next add starts fresh
func (s *CartService) ClearCart(ctx context.Context, sessionID string) error {
	return s.sessions.Clear(ctx, sessionID)
}

func (s *CartService) requireCart(ctx context.Context, sessionID string) (string, error) {
	cartID, err := s.sessions.CartID(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("resolve session cart: %w", err)
	}
	if cartID == "" {
		return "", &errors.ErrNotFound{Resource: "cart", ID: sessionID}
	}
	return cartID, nil
}
