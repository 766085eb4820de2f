package engine

import (
	"sort"

	"github.com/rs/zerolog"

	"cart-pricer/internal/discount"
	"cart-pricer/internal/domain"
	"cart-pricer/internal/money"
)

// Engine prices carts against discount rules.
// It holds no per-run state and is safe for concurrent use.
type Engine struct {
	logger zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger makes the engine emit a debug event for every rule it evaluates.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an engine. Without options it does not log.
func New(opts ...Option) *Engine {
	e := &Engine{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Calculate applies the rules to the cart in ascending priority order and reports the result.
// Rules of equal priority keep their input order. Each rule starts from the prices left by
// the rules before it. The rules slice is not modified.
func (e *Engine) Calculate(cart domain.Cart, rules []discount.Rule) domain.DiscountResult {
	if cart.IsEmpty() {
		b := newResultBuilder(money.Zero())
		b.reason("Cart is empty, no discounts applied.")
		return b.build(money.Zero())
	}

	originalTotal := cart.OriginalTotal()
	b := newResultBuilder(originalTotal)
	b.reason("Starting calculation with cart total: %s", originalTotal)

	sorted := append([]discount.Rule(nil), rules...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() < sorted[j].Priority()
	})

	prices := discount.NewPrices(cart)
	for _, rule := range sorted {
		outcome := rule.Apply(cart, prices)
		prices = outcome.Prices

		b.reasons(outcome.Trace)
		b.skipped = append(b.skipped, outcome.Skipped...)
		if outcome.Discount.IsPositive() {
			b.applied = append(b.applied, domain.AppliedDiscount{
				DiscountID:  rule.ID(),
				Type:        rule.Type(),
				Amount:      outcome.Discount,
				Description: rule.Description(),
			})
			b.reason("Applied %s: -%s", rule.ID(), outcome.Discount)
		}

		e.logger.Debug().
			Str("cart_id", cart.ID).
			Str("rule_id", rule.ID()).
			Str("rule_type", string(rule.Type())).
			Int64("discount_minor", outcome.Discount.Minor()).
			Int("skipped", len(outcome.Skipped)).
			Msg("discount_rule_evaluated")
	}

	finalPrice := prices.Total()
	b.itemPrices(cart, prices)
	b.reason("Final price after all discounts: %s", finalPrice)
	return b.build(finalPrice)
}
