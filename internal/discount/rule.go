// Package discount holds the discount rule variants and the arithmetic they share.
//
// Every rule takes the cart and the current price snapshot and returns an Outcome with a
// new snapshot, the amount it took off, and the lines it wants in the trace. Rules never
// fail at pricing time: an ineligible rule reports a skip reason and leaves prices alone.
package discount

import (
	"errors"
	"fmt"
	"strings"

	"cart-pricer/internal/domain"
	"cart-pricer/internal/money"
)

// ErrInvalidRule is returned when a rule fails construction-time validation.
var ErrInvalidRule = errors.New("invalid discount rule")

// Rule is a discount rule. The set of implementations is closed:
// BrandRule, CategoryRule, VoucherRule and PaymentRule.
type Rule interface {
	ID() string
	Type() domain.RuleType
	Priority() int
	Description() string
	// Apply prices the cart starting from prices, which must come from NewPrices(cart)
	// or an earlier Outcome for the same cart. prices is not modified.
	Apply(cart domain.Cart, prices Prices) Outcome

	isRule()
}

// Outcome is what a single rule did to the cart.
type Outcome struct {
	Prices   Prices
	Discount money.Money
	Trace    []string
	Skipped  []string
}

func (o *Outcome) trace(format string, args ...any) {
	o.Trace = append(o.Trace, fmt.Sprintf(format, args...))
}

func (o *Outcome) skip(format string, args ...any) {
	o.Skipped = append(o.Skipped, fmt.Sprintf(format, args...))
}

// unchanged reports a rule that did nothing.
func unchanged(prices Prices) Outcome {
	return Outcome{Prices: prices, Discount: money.Zero()}
}

// Terms are the settings shared by every rule variant.
type Terms struct {
	ID          string       `json:"id" validate:"required"`
	Description string       `json:"description"`
	Percent     int          `json:"percent" validate:"gte=0,lte=100"`
	MaxCap      *money.Money `json:"max_cap" validate:"omitempty,gte=0"`
}

func (t Terms) validate(kind domain.RuleType) error {
	if err := domain.Validate(t); err != nil {
		return fmt.Errorf("%w: %s rule %q: %v", ErrInvalidRule, strings.ToLower(string(kind)), t.ID, err)
	}
	return nil
}

func requireField(kind domain.RuleType, id, field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s rule %q: %s is required", ErrInvalidRule, strings.ToLower(string(kind)), id, field)
	}
	return nil
}

func capNote(c *money.Money) string {
	if c == nil {
		return "no cap"
	}
	return "capped at " + c.String()
}

// rule carries the shared accessors; variants embed it.
type rule struct {
	terms Terms
	kind  domain.RuleType
}

func newRule(t Terms, kind domain.RuleType) rule {
	if t.MaxCap != nil {
		c := *t.MaxCap
		t.MaxCap = &c
	}
	return rule{terms: t, kind: kind}
}

func (r rule) ID() string            { return r.terms.ID }
func (r rule) Type() domain.RuleType { return r.kind }
func (r rule) Priority() int         { return r.kind.Priority() }
func (r rule) Description() string   { return r.terms.Description }
func (r rule) Percent() int          { return r.terms.Percent }

// MaxCap returns the cap and whether one is set.
func (r rule) MaxCap() (money.Money, bool) {
	if r.terms.MaxCap == nil {
		return money.Zero(), false
	}
	return *r.terms.MaxCap, true
}

func (rule) isRule() {}
