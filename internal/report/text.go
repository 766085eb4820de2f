// Package report renders pricing results for people.
package report

import (
	"fmt"
	"strings"

	"cart-pricer/internal/domain"
)

// Text renders the summary of a pricing run: totals, applied discounts in the order they
// ran, skipped rules and the total saving.
func Text(result domain.DiscountResult) string {
	var sb strings.Builder
	sb.WriteString("=== Discount Calculation Result ===\n")
	fmt.Fprintf(&sb, "Original Total: %s\n", result.OriginalTotal)
	fmt.Fprintf(&sb, "Final Price: %s\n\n", result.FinalPrice)

	if len(result.Applied) > 0 {
		sb.WriteString("Applied Discounts:\n")
		for i, d := range result.Applied {
			fmt.Fprintf(&sb, "%d. %s: -%s (%s)\n", i+1, d.DiscountID, d.Amount, d.Description)
		}
	}

	if len(result.Skipped) > 0 {
		sb.WriteString("\nSkipped Discounts:\n")
		for _, reason := range result.Skipped {
			fmt.Fprintf(&sb, "- %s\n", reason)
		}
	}

	fmt.Fprintf(&sb, "\nTotal Savings: %s", result.TotalSavings())
	return sb.String()
}

// Items renders the final price of each cart line.
func Items(result domain.DiscountResult) string {
	var sb strings.Builder
	sb.WriteString("=== Item Prices ===\n")
	for _, ip := range result.ItemPrices {
		fmt.Fprintf(&sb, "%s (%s): %s -> %s\n", ip.Name, ip.ProductID, ip.OriginalPrice, ip.FinalPrice)
	}
	return sb.String()
}

// Trace renders the step-by-step reasoning of a pricing run.
func Trace(result domain.DiscountResult) string {
	return "=== Detailed Reasoning ===\n" + result.ReasoningText()
}

// Full renders the summary, the item prices and the trace, separated by blank lines.
func Full(r domain.PricingReport) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Cart: %s", r.CartID)
	if r.CustomerID != "" {
		fmt.Fprintf(&sb, " (customer %s)", r.CustomerID)
	}
	if r.Payment != "" {
		fmt.Fprintf(&sb, "\nPayment: %s", r.Payment)
	}
	sb.WriteString("\n\n")
	sb.WriteString(Text(r.Result))
	sb.WriteString("\n\n")
	sb.WriteString(Items(r.Result))
	sb.WriteString("\n")
	sb.WriteString(Trace(r.Result))
	sb.WriteString("\n")
	return sb.String()
}
