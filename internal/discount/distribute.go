package discount

import (
	"github.com/shopspring/decimal"

	"cart-pricer/internal/money"
)

// Distribute spreads amount over the lines in proportion to their current price and
// returns the new snapshot together with the amount actually taken off.
//
// Every line but the last gets round(amount × price / total), rounded half away from zero;
// the last line takes whatever is left so the shares add up to amount exactly. No line
// is taken below zero and no share exceeds what is left of amount, so the returned amount
// is lower than the requested one only when the lines cannot absorb it.
func Distribute(prices Prices, amount money.Money) (Prices, money.Money) {
	out := prices.Clone()
	total := prices.Total()
	if !amount.IsPositive() || !total.IsPositive() || len(out) == 0 {
		return out, money.Zero()
	}

	amountDec := decimal.NewFromInt(amount.Minor())
	totalDec := decimal.NewFromInt(total.Minor())
	assigned := money.Zero()
	last := len(out) - 1

	for i, price := range out {
		left := amount.Subtract(assigned)
		share := left
		if i != last {
			proportional := amountDec.Mul(decimal.NewFromInt(price.Minor())).DivRound(totalDec, 0)
			share = money.FromMinor(proportional.IntPart()).Min(left)
		}
		share = share.Min(price)
		if share.IsNegative() {
			share = money.Zero()
		}
		out[i] = price.Subtract(share)
		assigned = assigned.Add(share)
	}
	return out, assigned
}
