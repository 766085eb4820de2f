package discount

import (
	"fmt"

	"cart-pricer/internal/domain"
	"cart-pricer/internal/money"
)

// PaymentRequirements restrict a PaymentRule to particular payment methods and cart sizes.
// Empty fields are wildcards.
type PaymentRequirements struct {
	Mode           domain.PaymentMode `json:"mode" validate:"omitempty,oneof=CREDIT_CARD DEBIT_CARD UPI WALLET NET_BANKING"`
	Bank           string             `json:"bank"`
	CardType       string             `json:"card_type"`
	UPIApp         string             `json:"upi_app"`
	WalletProvider string             `json:"wallet_provider"`
	MinCartValue   *money.Money       `json:"min_cart_value" validate:"omitempty,gte=0"`
}

// Criteria converts the requirements into payment match criteria.
func (r PaymentRequirements) Criteria() domain.MatchCriteria {
	return domain.MatchCriteria{
		Mode:           r.Mode,
		Bank:           r.Bank,
		CardType:       r.CardType,
		WalletProvider: r.WalletProvider,
		UPIApp:         r.UPIApp,
	}
}

// PaymentRule takes a percentage off the whole (already discounted) cart when it is paid
// with a matching method, then spreads that amount over the lines by their current price.
type PaymentRule struct {
	rule
	req PaymentRequirements
}

func NewPaymentRule(t Terms, req PaymentRequirements) (*PaymentRule, error) {
	if err := t.validate(domain.RuleTypePayment); err != nil {
		return nil, err
	}
	if err := domain.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: payment rule %q: %v", ErrInvalidRule, t.ID, err)
	}
	if req.MinCartValue != nil {
		v := *req.MinCartValue
		req.MinCartValue = &v
	}
	return &PaymentRule{rule: newRule(t, domain.RuleTypePayment), req: req}, nil
}

func (r *PaymentRule) Requirements() PaymentRequirements {
	req := r.req
	if req.MinCartValue != nil {
		v := *req.MinCartValue
		req.MinCartValue = &v
	}
	return req
}

func (r *PaymentRule) Apply(cart domain.Cart, prices Prices) Outcome {
	id := r.terms.ID

	if cart.Payment == nil {
		out := unchanged(prices)
		out.skip("%s: No payment method specified", id)
		return out
	}

	if !cart.Payment.Matches(r.req.Criteria()) {
		out := unchanged(prices)
		out.skip("%s: Payment method %s doesn't match required criteria (%s)", id, cart.Payment, r.req.Criteria())
		return out
	}

	currentTotal := prices.Total()
	if r.req.MinCartValue != nil && currentTotal.LessThan(*r.req.MinCartValue) {
		out := unchanged(prices)
		out.skip("%s: Cart total %s below minimum %s", id, currentTotal, *r.req.MinCartValue)
		return out
	}

	paymentDiscount := currentTotal.Percentage(r.terms.Percent)
	if limit, ok := r.MaxCap(); ok {
		paymentDiscount = paymentDiscount.Min(limit)
	}
	if !paymentDiscount.IsPositive() {
		return unchanged(prices)
	}

	next, distributed := Distribute(prices, paymentDiscount)
	out := Outcome{Prices: next, Discount: distributed}
	out.trace("  %s: %d%% payment discount (%s) = %s (%s)",
		id, r.terms.Percent, cart.Payment.PaymentMode(), distributed, capNote(r.terms.MaxCap))
	return out
}
