package usecase

import (
	"context"
	"errors"
	"fmt"

	"cart-pricer/internal/domain"
	"cart-pricer/internal/engine"
)

// ErrInvalidRequest is returned when a PriceRequest is missing an input path.
var ErrInvalidRequest = errors.New("invalid pricing request")

// PriceRequest names the files a pricing run reads from.
// When ItemsPath is set its lines replace the items listed in the cart file.
type PriceRequest struct {
	CartPath  string `json:"cart" validate:"required"`
	ItemsPath string `json:"items"`
	RulesPath string `json:"rules" validate:"required"`
}

// PricingUseCase orchestrates a pricing run.
type PricingUseCase struct {
	carts  CartRepository
	rules  RuleRepository
	engine *engine.Engine
}

// NewPricingUseCase creates a new instance of the usecase.
func NewPricingUseCase(carts CartRepository, rules RuleRepository, calc *engine.Engine) *PricingUseCase {
	if calc == nil {
		calc = engine.New()
	}
	return &PricingUseCase{carts: carts, rules: rules, engine: calc}
}

// Price loads the cart and rules, prices the cart and reports the result.
// A rule that does not apply to the cart is reported as skipped, never as an error.
func (uc *PricingUseCase) Price(ctx context.Context, req PriceRequest) (*domain.PricingReport, error) {
	if err := domain.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	cart, err := uc.carts.GetCart(ctx, req.CartPath)
	if err != nil {
		return nil, fmt.Errorf("could not get cart: %w", err)
	}

	if req.ItemsPath != "" {
		items, err := uc.carts.GetCartItems(ctx, req.ItemsPath)
		if err != nil {
			return nil, fmt.Errorf("could not get cart items: %w", err)
		}
		cart, err = domain.NewCart(cart.ID, items, cart.Payment, cart.CustomerID, cart.CustomerTier)
		if err != nil {
			return nil, fmt.Errorf("could not rebuild cart from %s: %w", req.ItemsPath, err)
		}
	}

	rules, err := uc.rules.GetRules(ctx, req.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("could not get rules: %w", err)
	}

	result := uc.engine.Calculate(cart, rules)

	report := domain.PricingReport{
		CartID:       cart.ID,
		CustomerID:   cart.CustomerID,
		CustomerTier: cart.CustomerTier,
		Result:       result,
		TotalSavings: result.TotalSavings(),
	}
	if cart.Payment != nil {
		report.Payment = cart.Payment.String()
	}
	return &report, nil
}
