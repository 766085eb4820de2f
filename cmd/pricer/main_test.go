package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cart-pricer/internal/config"
	"cart-pricer/internal/engine"
	"cart-pricer/internal/gateway"
	"cart-pricer/internal/usecase"
)

func priceTestdata(t *testing.T, req usecase.PriceRequest) string {
	t.Helper()
	repo := gateway.NewFileRepository()
	uc := usecase.NewPricingUseCase(repo, repo, engine.New())

	r, err := uc.Price(context.Background(), req)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, write(&buf, config.OutputJSON, r))
	return buf.String()
}

func TestWrite_JSON(t *testing.T) {
	out := priceTestdata(t, usecase.PriceRequest{CartPath: "testdata/cart.yaml", RulesPath: "testdata/rules.yaml"})

	var got struct {
		CartID       string `json:"cart_id"`
		Payment      string `json:"payment"`
		TotalSavings string `json:"total_savings"`
		Result       struct {
			OriginalTotal string `json:"original_total"`
			FinalPrice    string `json:"final_price"`
			Applied       []struct {
				DiscountID string `json:"discount_id"`
				Amount     string `json:"amount"`
			} `json:"applied_discounts"`
			Skipped   []string `json:"skipped_reasons"`
			Reasoning []string `json:"reasoning"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, "cart-123", got.CartID)
	assert.Equal(t, "ICICI VISA (CREDIT_CARD)", got.Payment)
	assert.Equal(t, "6997.00", got.Result.OriginalTotal)
	assert.Equal(t, "5377.92", got.Result.FinalPrice)
	assert.Equal(t, "1619.08", got.TotalSavings)
	require.Len(t, got.Result.Applied, 4)
	assert.Equal(t, "SUPER69", got.Result.Applied[2].DiscountID)
	assert.Equal(t, "500.00", got.Result.Applied[2].Amount)
	assert.Empty(t, got.Result.Skipped)
	assert.NotEmpty(t, got.Result.Reasoning)
}

func TestWrite_ItemsOverride(t *testing.T) {
	out := priceTestdata(t, usecase.PriceRequest{
		CartPath:  "testdata/cart.yaml",
		ItemsPath: "testdata/items.csv",
		RulesPath: "testdata/rules.yaml",
	})

	assert.Contains(t, out, `"final_price": "4799.00"`)
	assert.Contains(t, out, "SUPER69: No eligible items for voucher SUPER69")
}

func TestWrite_TextFormats(t *testing.T) {
	repo := gateway.NewFileRepository()
	uc := usecase.NewPricingUseCase(repo, repo, nil)
	r, err := uc.Price(context.Background(), usecase.PriceRequest{CartPath: "testdata/cart.yaml", RulesPath: "testdata/rules.yaml"})
	require.NoError(t, err)

	var text bytes.Buffer
	require.NoError(t, write(&text, config.OutputText, r))
	assert.Contains(t, text.String(), "Final Price: ₹5377.92")
	assert.Contains(t, text.String(), "4. ICICI_10: -₹200.00 (10% instant discount on ICICI credit cards)")
	assert.NotContains(t, text.String(), "Detailed Reasoning")

	var full bytes.Buffer
	require.NoError(t, write(&full, config.OutputFull, r))
	assert.Contains(t, full.String(), "=== Detailed Reasoning ===")
	assert.Contains(t, full.String(), "Nike Shoes (NIKE-001): ₹4999.00 -> ₹4819.76")
}
