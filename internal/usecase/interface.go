package usecase

import (
	"context"

	"cart-pricer/internal/discount"
	"cart-pricer/internal/domain"
)

// CartRepository loads carts and cart lines.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go
type CartRepository interface {
	GetCart(ctx context.Context, path string) (domain.Cart, error)
	GetCartItems(ctx context.Context, path string) ([]domain.CartItem, error)
}

// RuleRepository loads the discount rules a cart is priced against.
type RuleRepository interface {
	GetRules(ctx context.Context, path string) ([]discount.Rule, error)
}
