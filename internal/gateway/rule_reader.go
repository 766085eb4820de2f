package gateway

import (
	"context"
	"fmt"
	"strings"

	"cart-pricer/internal/discount"
	"cart-pricer/internal/domain"
	"cart-pricer/internal/money"
)

type rulesFile struct {
	Rules []ruleRecord `yaml:"rules"`
}

type ruleRecord struct {
	Type        string `yaml:"type"`
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	Percent     int    `yaml:"percent"`
	MaxCap      string `yaml:"max_cap"`

	Brand    string `yaml:"brand"`
	Category string `yaml:"category"`

	Code            string   `yaml:"code"`
	ExcludedBrands  []string `yaml:"excluded_brands"`
	MinCustomerTier string   `yaml:"min_customer_tier"`

	Mode           string `yaml:"mode"`
	Bank           string `yaml:"bank"`
	CardType       string `yaml:"card_type"`
	UPIApp         string `yaml:"upi_app"`
	WalletProvider string `yaml:"wallet_provider"`
	MinCartValue   string `yaml:"min_cart_value"`
}

// GetRules reads a rule set from a YAML file. Rules are returned in file order;
// the engine decides the order they run in.
func (r *FileRepository) GetRules(ctx context.Context, path string) ([]discount.Rule, error) {
	var raw rulesFile
	if err := readYAML(path, &raw); err != nil {
		return nil, err
	}

	rules := make([]discount.Rule, 0, len(raw.Rules))
	seen := make(map[string]bool, len(raw.Rules))
	for i, rec := range raw.Rules {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if rec.ID != "" && seen[rec.ID] {
			return nil, fmt.Errorf("%w: %s rules[%d]: duplicate rule id %q", ErrMalformedFile, path, i, rec.ID)
		}
		seen[rec.ID] = true

		rule, err := rec.toRule()
		if err != nil {
			return nil, fmt.Errorf("%s rules[%d]: %w", path, i, err)
		}
		rules = append(rules, rule)
	}

	r.logger.Debug().Str("path", path).Int("rules", len(rules)).Msg("rules_loaded")
	return rules, nil
}

func (rec ruleRecord) toRule() (discount.Rule, error) {
	maxCap, err := optionalAmount("max_cap", rec.MaxCap)
	if err != nil {
		return nil, err
	}
	terms := discount.Terms{
		ID:          rec.ID,
		Description: rec.Description,
		Percent:     rec.Percent,
		MaxCap:      maxCap,
	}

	switch domain.RuleType(strings.ToUpper(strings.TrimSpace(rec.Type))) {
	case domain.RuleTypeBrand:
		return discount.NewBrandRule(terms, rec.Brand)
	case domain.RuleTypeCategory:
		return discount.NewCategoryRule(terms, rec.Category)
	case domain.RuleTypeVoucher:
		return discount.NewVoucherRule(terms, rec.Code, rec.ExcludedBrands, rec.MinCustomerTier)
	case domain.RuleTypePayment:
		minCart, err := optionalAmount("min_cart_value", rec.MinCartValue)
		if err != nil {
			return nil, err
		}
		return discount.NewPaymentRule(terms, discount.PaymentRequirements{
			Mode:           domain.PaymentMode(strings.ToUpper(rec.Mode)),
			Bank:           rec.Bank,
			CardType:       rec.CardType,
			UPIApp:         rec.UPIApp,
			WalletProvider: rec.WalletProvider,
			MinCartValue:   minCart,
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRuleType, rec.Type)
	}
}

func optionalAmount(field, s string) (*money.Money, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	m, err := money.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &m, nil
}
