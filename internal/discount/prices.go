package discount

import (
	"cart-pricer/internal/domain"
	"cart-pricer/internal/money"
)

// Prices holds the current price of every cart line, indexed by the line's position in the cart.
// A Prices value is treated as an immutable snapshot: rules return a new one instead of editing it.
type Prices []money.Money

// NewPrices starts a snapshot with each line's undiscounted total.
func NewPrices(cart domain.Cart) Prices {
	prices := make(Prices, len(cart.Items))
	for i, item := range cart.Items {
		prices[i] = item.TotalPrice()
	}
	return prices
}

func (p Prices) Total() money.Money {
	return money.Sum(p...)
}

func (p Prices) Clone() Prices {
	return append(Prices(nil), p...)
}
