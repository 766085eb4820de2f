package discount_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cart-pricer/internal/discount"
	"cart-pricer/internal/domain"
	"cart-pricer/internal/money"
)

func pumaTee() domain.CartItem {
	return domain.CartItem{ProductID: "PUMA-001", Name: "PUMA T-shirt", Brand: "PUMA", Category: "T-shirts", UnitPrice: money.MustParse("999"), Quantity: 2}
}

func nikeShoes() domain.CartItem {
	return domain.CartItem{ProductID: "NIKE-001", Name: "Nike Shoes", Brand: "Nike", Category: "Footwear", UnitPrice: money.MustParse("4999"), Quantity: 1}
}

func mustCart(t *testing.T, payment domain.PaymentMethod, items ...domain.CartItem) domain.Cart {
	t.Helper()
	cart, err := domain.NewCart("cart-123", items, payment, "cust-456", "STANDARD")
	require.NoError(t, err)
	return cart
}

func prices(minor ...int64) discount.Prices {
	p := make(discount.Prices, len(minor))
	for i, m := range minor {
		p[i] = money.FromMinor(m)
	}
	return p
}

func capOf(s string) *money.Money {
	m := money.MustParse(s)
	return &m
}

func minors(p discount.Prices) []int64 {
	out := make([]int64, len(p))
	for i, m := range p {
		out[i] = m.Minor()
	}
	return out
}
