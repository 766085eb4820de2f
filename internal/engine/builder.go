package engine

import (
	"fmt"

	"cart-pricer/internal/discount"
	"cart-pricer/internal/domain"
	"cart-pricer/internal/money"
)

// resultBuilder collects state across one Calculate call.
type resultBuilder struct {
	originalTotal money.Money
	applied       []domain.AppliedDiscount
	skipped       []string
	reasoning     []string
	items         []domain.ItemPrice
}

func newResultBuilder(originalTotal money.Money) *resultBuilder {
	return &resultBuilder{
		originalTotal: originalTotal,
		applied:       make([]domain.AppliedDiscount, 0),
		skipped:       make([]string, 0),
		items:         make([]domain.ItemPrice, 0),
	}
}

func (b *resultBuilder) reason(format string, args ...any) {
	b.reasoning = append(b.reasoning, fmt.Sprintf(format, args...))
}

func (b *resultBuilder) reasons(lines []string) {
	b.reasoning = append(b.reasoning, lines...)
}

func (b *resultBuilder) itemPrices(cart domain.Cart, prices discount.Prices) {
	for i, item := range cart.Items {
		b.items = append(b.items, domain.ItemPrice{
			ProductID:     item.ProductID,
			Name:          item.Name,
			OriginalPrice: item.TotalPrice(),
			FinalPrice:    prices[i],
		})
	}
}

func (b *resultBuilder) build(finalPrice money.Money) domain.DiscountResult {
	return domain.DiscountResult{
		OriginalTotal: b.originalTotal,
		FinalPrice:    finalPrice,
		Applied:       b.applied,
		Skipped:       b.skipped,
		Reasoning:     b.reasoning,
		ItemPrices:    b.items,
	}
}
