package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"cart-pricer/internal/domain"
	"cart-pricer/internal/money"
)

type cartFile struct {
	ID           string         `yaml:"id"`
	CustomerID   string         `yaml:"customer_id"`
	CustomerTier string         `yaml:"customer_tier"`
	Payment      *paymentRecord `yaml:"payment"`
	Items        []itemRecord   `yaml:"items"`
}

type paymentRecord struct {
	Type     string `yaml:"type"`
	Mode     string `yaml:"mode"`
	Bank     string `yaml:"bank"`
	CardType string `yaml:"card_type"`
	UPIID    string `yaml:"upi_id"`
	App      string `yaml:"app"`
	Provider string `yaml:"provider"`
}

type itemRecord struct {
	ProductID string `yaml:"product_id"`
	Name      string `yaml:"name"`
	Brand     string `yaml:"brand"`
	Category  string `yaml:"category"`
	UnitPrice string `yaml:"unit_price"`
	Quantity  int    `yaml:"quantity"`
}

// GetCart reads a cart from a YAML file. A cart without an id is given a random one.
func (r *FileRepository) GetCart(ctx context.Context, path string) (domain.Cart, error) {
	var raw cartFile
	if err := readYAML(path, &raw); err != nil {
		return domain.Cart{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Cart{}, err
	}

	payment, err := raw.Payment.toDomain()
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", path, err)
	}

	items := make([]domain.CartItem, 0, len(raw.Items))
	for i, rec := range raw.Items {
		unitPrice, err := money.Parse(rec.UnitPrice)
		if err != nil {
			return domain.Cart{}, fmt.Errorf("%s items[%d]: %w", path, i, err)
		}
		item, err := domain.NewCartItem(rec.ProductID, rec.Name, rec.Brand, rec.Category, unitPrice, rec.Quantity)
		if err != nil {
			return domain.Cart{}, fmt.Errorf("%s items[%d]: %w", path, i, err)
		}
		items = append(items, item)
	}

	id := raw.ID
	if id == "" {
		id = uuid.NewString()
	}

	cart, err := domain.NewCart(id, items, payment, raw.CustomerID, raw.CustomerTier)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", path, err)
	}

	r.logger.Debug().Str("path", path).Str("cart_id", cart.ID).Int("items", len(cart.Items)).Msg("cart_loaded")
	return cart, nil
}

// toDomain maps the payment block onto a PaymentMethod. A missing block means no payment method.
func (p *paymentRecord) toDomain() (domain.PaymentMethod, error) {
	if p == nil {
		return nil, nil
	}

	switch strings.ToLower(strings.TrimSpace(p.Type)) {
	case "card":
		switch domain.PaymentMode(strings.ToUpper(p.Mode)) {
		case domain.PaymentModeCreditCard, "":
			return domain.NewCreditCard(p.Bank, p.CardType), nil
		case domain.PaymentModeDebitCard:
			return domain.NewDebitCard(p.Bank, p.CardType), nil
		default:
			return nil, fmt.Errorf("%w: card payment with mode %q", ErrUnknownPaymentType, p.Mode)
		}
	case "upi":
		return domain.NewUPI(p.UPIID, p.App), nil
	case "wallet":
		return domain.NewWallet(p.Provider), nil
	case "", "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPaymentType, p.Type)
	}
}
