package discount_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cart-pricer/internal/discount"
	"cart-pricer/internal/domain"
	"cart-pricer/internal/money"
)

func TestVoucherRule_Apply(t *testing.T) {
	t.Run("excluded brand skipped and cap clamps the discount", func(t *testing.T) {
		cart := mustCart(t, nil, pumaTee(), nikeShoes())
		rule, err := discount.NewVoucherRule(
			discount.Terms{ID: "SUPER69", Description: "69% off with SUPER69 voucher", Percent: 69, MaxCap: capOf("500")},
			"SUPER69", []string{"nike"}, "",
		)
		require.NoError(t, err)

		out := rule.Apply(cart, prices(107892, 499900))

		assert.Equal(t, []int64{57892, 499900}, minors(out.Prices))
		assert.Equal(t, int64(50000), out.Discount.Minor())
		assert.Equal(t, []string{
			"  SUPER69: ₹1078.92 -> ₹578.92 (69% voucher SUPER69)",
			"  SUPER69: Skipping Nike Shoes (brand Nike excluded)",
			"  SUPER69: Total voucher discount: ₹500.00 (cap: ₹500.00)",
		}, out.Trace)
		assert.Empty(t, out.Skipped)
	})

	t.Run("cap is consumed greedily in cart order", func(t *testing.T) {
		item := func(id string) domain.CartItem {
			return domain.CartItem{ProductID: id, Name: id, Brand: "Acme", Category: "Misc", UnitPrice: money.MustParse("100"), Quantity: 1}
		}
		cart := mustCart(t, nil, item("A"), item("B"), item("C"))
		rule, err := discount.NewVoucherRule(discount.Terms{ID: "V10", Percent: 10, MaxCap: capOf("15")}, "V10", nil, "")
		require.NoError(t, err)

		out := rule.Apply(cart, discount.NewPrices(cart))

		// A takes the full 10, B the remaining 5, C finds the budget spent.
		assert.Equal(t, []int64{9000, 9500, 10000}, minors(out.Prices))
		assert.Equal(t, int64(1500), out.Discount.Minor())
		assert.Equal(t, []string{
			"  V10: ₹100.00 -> ₹90.00 (10% voucher V10)",
			"  V10: ₹100.00 -> ₹95.00 (10% voucher V10)",
			"  V10: Cap reached, skipping C",
			"  V10: Total voucher discount: ₹15.00 (cap: ₹15.00)",
		}, out.Trace)
	})

	t.Run("item that lands exactly on the cap is discounted in full", func(t *testing.T) {
		item := func(id string) domain.CartItem {
			return domain.CartItem{ProductID: id, Name: id, Brand: "Acme", Category: "Misc", UnitPrice: money.MustParse("100"), Quantity: 1}
		}
		cart := mustCart(t, nil, item("A"), item("B"), item("C"))
		rule, err := discount.NewVoucherRule(discount.Terms{ID: "V10", Percent: 10, MaxCap: capOf("20")}, "V10", nil, "")
		require.NoError(t, err)

		out := rule.Apply(cart, discount.NewPrices(cart))
		assert.Equal(t, []int64{9000, 9000, 10000}, minors(out.Prices))
		assert.Equal(t, int64(2000), out.Discount.Minor())
		assert.Contains(t, out.Trace, "  V10: Cap reached, skipping C")
	})

	t.Run("no cap discounts every eligible item", func(t *testing.T) {
		cart := mustCart(t, nil, pumaTee(), nikeShoes())
		rule, err := discount.NewVoucherRule(discount.Terms{ID: "FLAT10", Percent: 10}, "FLAT10", nil, "")
		require.NoError(t, err)

		out := rule.Apply(cart, discount.NewPrices(cart))
		assert.Equal(t, []int64{179820, 449910}, minors(out.Prices))
		assert.Equal(t, int64(69970), out.Discount.Minor())
		assert.Len(t, out.Trace, 2)
	})

	t.Run("every brand excluded", func(t *testing.T) {
		cart := mustCart(t, nil, pumaTee(), nikeShoes())
		rule, err := discount.NewVoucherRule(discount.Terms{ID: "V", Percent: 50, MaxCap: capOf("100")}, "V", []string{"PUMA", "NIKE"}, "")
		require.NoError(t, err)

		out := rule.Apply(cart, discount.NewPrices(cart))
		assert.True(t, out.Discount.IsZero())
		assert.Equal(t, []int64{199800, 499900}, minors(out.Prices))
		assert.Equal(t, []string{"V: No eligible items for voucher V"}, out.Skipped)
		assert.NotContains(t, out.Trace, "  V: Total voucher discount: ₹0.00 (cap: ₹100.00)")
	})

	t.Run("customer tier is not enforced", func(t *testing.T) {
		cart := mustCart(t, nil, pumaTee())
		rule, err := discount.NewVoucherRule(discount.Terms{ID: "GOLD", Percent: 10}, "GOLD", nil, "PLATINUM")
		require.NoError(t, err)

		out := rule.Apply(cart, discount.NewPrices(cart))
		assert.Equal(t, int64(19980), out.Discount.Minor())
	})
}

func TestVoucherRule_IsBrandExcluded(t *testing.T) {
	rule, err := discount.NewVoucherRule(discount.Terms{ID: "V", Percent: 10}, "V", []string{"Nike", "Adidas"}, "")
	require.NoError(t, err)

	assert.True(t, rule.IsBrandExcluded("NIKE"))
	assert.True(t, rule.IsBrandExcluded("adidas"))
	assert.False(t, rule.IsBrandExcluded("PUMA"))
}
