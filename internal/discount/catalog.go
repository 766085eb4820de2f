package discount

import (
	"strings"

	"cart-pricer/internal/domain"
)

// BrandRule takes a percentage off every line of one brand. MaxCap is ignored.
type BrandRule struct {
	rule
	brand string
}

func NewBrandRule(t Terms, targetBrand string) (*BrandRule, error) {
	if err := t.validate(domain.RuleTypeBrand); err != nil {
		return nil, err
	}
	if err := requireField(domain.RuleTypeBrand, t.ID, "target brand", targetBrand); err != nil {
		return nil, err
	}
	return &BrandRule{rule: newRule(t, domain.RuleTypeBrand), brand: targetBrand}, nil
}

func (r *BrandRule) TargetBrand() string { return r.brand }

func (r *BrandRule) Apply(cart domain.Cart, prices Prices) Outcome {
	return applyToMatching(r.terms, r.brand, cart, prices, func(item domain.CartItem) bool {
		return strings.EqualFold(item.Brand, r.brand)
	})
}

// CategoryRule takes a percentage off every line of one category. MaxCap is ignored.
type CategoryRule struct {
	rule
	category string
}

func NewCategoryRule(t Terms, targetCategory string) (*CategoryRule, error) {
	if err := t.validate(domain.RuleTypeCategory); err != nil {
		return nil, err
	}
	if err := requireField(domain.RuleTypeCategory, t.ID, "target category", targetCategory); err != nil {
		return nil, err
	}
	return &CategoryRule{rule: newRule(t, domain.RuleTypeCategory), category: targetCategory}, nil
}

func (r *CategoryRule) TargetCategory() string { return r.category }

func (r *CategoryRule) Apply(cart domain.Cart, prices Prices) Outcome {
	return applyToMatching(r.terms, r.category, cart, prices, func(item domain.CartItem) bool {
		return strings.EqualFold(item.Category, r.category)
	})
}

// applyToMatching discounts each matching line by the rule percentage of its current price.
func applyToMatching(t Terms, target string, cart domain.Cart, prices Prices, match func(domain.CartItem) bool) Outcome {
	out := unchanged(prices.Clone())
	matched := 0
	for i, item := range cart.Items {
		if !match(item) {
			continue
		}
		matched++
		current := out.Prices[i]
		itemDiscount := current.Percentage(t.Percent)
		next := current.Subtract(itemDiscount)
		out.Prices[i] = next
		out.Discount = out.Discount.Add(itemDiscount)
		out.trace("  %s: %s -> %s (%d%% off %s)", t.ID, current, next, t.Percent, target)
	}

	switch {
	case matched == 0:
		out.skip("%s: No %s items in cart", t.ID, target)
	case out.Discount.IsZero():
		out.skip("%s: Discount on %s items rounds to zero", t.ID, target)
	}
	return out
}
