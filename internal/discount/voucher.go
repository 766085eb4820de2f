package discount

import (
	"strings"

	"cart-pricer/internal/domain"
)

// VoucherRule takes a percentage off every line whose brand is not excluded.
// The cap is a running budget consumed greedily in cart order, so with a cap the
// result depends on the order of the cart lines.
type VoucherRule struct {
	rule
	code            string
	excludedBrands  []string
	minCustomerTier string
}

// NewVoucherRule creates a voucher rule. minCustomerTier is kept for callers that
// carry it but it is not enforced when pricing.
func NewVoucherRule(t Terms, code string, excludedBrands []string, minCustomerTier string) (*VoucherRule, error) {
	if err := t.validate(domain.RuleTypeVoucher); err != nil {
		return nil, err
	}
	if err := requireField(domain.RuleTypeVoucher, t.ID, "voucher code", code); err != nil {
		return nil, err
	}
	return &VoucherRule{
		rule:            newRule(t, domain.RuleTypeVoucher),
		code:            code,
		excludedBrands:  append([]string(nil), excludedBrands...),
		minCustomerTier: minCustomerTier,
	}, nil
}

func (r *VoucherRule) Code() string { return r.code }

func (r *VoucherRule) ExcludedBrands() []string {
	return append([]string(nil), r.excludedBrands...)
}

func (r *VoucherRule) MinCustomerTier() string { return r.minCustomerTier }

// IsBrandExcluded compares ignoring case.
func (r *VoucherRule) IsBrandExcluded(brand string) bool {
	for _, excluded := range r.excludedBrands {
		if strings.EqualFold(excluded, brand) {
			return true
		}
	}
	return false
}

func (r *VoucherRule) Apply(cart domain.Cart, prices Prices) Outcome {
	out := unchanged(prices.Clone())
	id := r.terms.ID
	limit, capped := r.MaxCap()

	for i, item := range cart.Items {
		if r.IsBrandExcluded(item.Brand) {
			out.trace("  %s: Skipping %s (brand %s excluded)", id, item.Name, item.Brand)
			continue
		}

		current := out.Prices[i]
		itemDiscount := current.Percentage(r.terms.Percent)

		if capped {
			remaining := limit.Subtract(out.Discount)
			if !remaining.IsPositive() {
				out.trace("  %s: Cap reached, skipping %s", id, item.Name)
				continue
			}
			if remaining.LessThan(itemDiscount) {
				itemDiscount = remaining
			}
		}

		next := current.Subtract(itemDiscount)
		out.Prices[i] = next
		out.Discount = out.Discount.Add(itemDiscount)
		out.trace("  %s: %s -> %s (%d%% voucher %s)", id, current, next, r.terms.Percent, r.code)
	}

	switch {
	case out.Discount.IsZero():
		out.skip("%s: No eligible items for voucher %s", id, r.code)
	case capped:
		out.trace("  %s: Total voucher discount: %s (cap: %s)", id, out.Discount, limit)
	}
	return out
}
