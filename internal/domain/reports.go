package domain

import (
	"strings"

	"cart-pricer/internal/money"
)

// RuleType identifies a discount rule variant.
type RuleType string

const (
	RuleTypeBrand    RuleType = "BRAND"
	RuleTypeCategory RuleType = "CATEGORY"
	RuleTypeVoucher  RuleType = "VOUCHER"
	RuleTypePayment  RuleType = "PAYMENT"
)

// Priority bands are spaced so a new variant can slot in between existing ones.
// Lower runs first.
func (t RuleType) Priority() int {
	switch t {
	case RuleTypeBrand:
		return 100
	case RuleTypeCategory:
		return 200
	case RuleTypeVoucher:
		return 300
	case RuleTypePayment:
		return 400
	}
	return 0
}

// AppliedDiscount records a rule that reduced the cart by a positive amount.
type AppliedDiscount struct {
	DiscountID  string      `json:"discount_id"`
	Type        RuleType    `json:"type"`
	Amount      money.Money `json:"amount"`
	Description string      `json:"description"`
}

// ItemPrice is the final price of one cart line.
type ItemPrice struct {
	ProductID     string      `json:"product_id"`
	Name          string      `json:"name"`
	OriginalPrice money.Money `json:"original_price"`
	FinalPrice    money.Money `json:"final_price"`
}

// DiscountResult is the outcome of one pricing run.
type DiscountResult struct {
	OriginalTotal money.Money       `json:"original_total"`
	FinalPrice    money.Money       `json:"final_price"`
	Applied       []AppliedDiscount `json:"applied_discounts"`
	Skipped       []string          `json:"skipped_reasons"`
	Reasoning     []string          `json:"reasoning"`
	ItemPrices    []ItemPrice       `json:"item_prices"`
}

// TotalSavings is the difference between the original total and the final price.
func (r DiscountResult) TotalSavings() money.Money {
	return r.OriginalTotal.Subtract(r.FinalPrice)
}

// ReasoningText joins the trace into a single newline separated string.
func (r DiscountResult) ReasoningText() string {
	return strings.Join(r.Reasoning, "\n")
}

// PricingReport is the top-level structure for the JSON output.
type PricingReport struct {
	CartID       string         `json:"cart_id"`
	CustomerID   string         `json:"customer_id"`
	CustomerTier string         `json:"customer_tier"`
	Payment      string         `json:"payment,omitempty"`
	Result       DiscountResult `json:"result"`
	TotalSavings money.Money    `json:"total_savings"`
}
