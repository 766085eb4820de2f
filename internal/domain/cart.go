package domain

import (
	"errors"
	"fmt"

	"cart-pricer/internal/money"
)

var (
	// ErrInvalidItem is returned when a cart line fails construction-time validation.
	ErrInvalidItem = errors.New("invalid cart item")
	// ErrInvalidCart is returned when a cart fails construction-time validation.
	ErrInvalidCart = errors.New("invalid cart")
)

// CartItem is a single line of a cart.
// Two items with identical fields are still distinct lines; the engine tracks them by position.
type CartItem struct {
	ProductID string      `json:"product_id" validate:"required"`
	Name      string      `json:"name" validate:"required"`
	Brand     string      `json:"brand"`
	Category  string      `json:"category"`
	UnitPrice money.Money `json:"unit_price" validate:"gte=0"`
	Quantity  int         `json:"quantity" validate:"gt=0"`
}

// NewCartItem creates a validated cart line.
func NewCartItem(productID, name, brand, category string, unitPrice money.Money, quantity int) (CartItem, error) {
	item := CartItem{
		ProductID: productID,
		Name:      name,
		Brand:     brand,
		Category:  category,
		UnitPrice: unitPrice,
		Quantity:  quantity,
	}
	if err := Validate(item); err != nil {
		return CartItem{}, fmt.Errorf("%w: %v", ErrInvalidItem, err)
	}
	return item, nil
}

// TotalPrice is the unit price multiplied by the quantity.
func (i CartItem) TotalPrice() money.Money {
	return i.UnitPrice.Multiply(i.Quantity)
}

func (i CartItem) String() string {
	return fmt.Sprintf("%d × %s (%s) @ %s", i.Quantity, i.Name, i.Brand, i.UnitPrice)
}

// Cart is the input to a pricing run. Payment may be nil.
type Cart struct {
	ID           string        `json:"id"`
	Items        []CartItem    `json:"items" validate:"dive"`
	Payment      PaymentMethod `json:"-"`
	CustomerID   string        `json:"customer_id"`
	CustomerTier string        `json:"customer_tier"`
}

// NewCart creates a validated cart. The item slice is copied.
func NewCart(id string, items []CartItem, payment PaymentMethod, customerID, customerTier string) (Cart, error) {
	cart := Cart{
		ID:           id,
		Items:        append([]CartItem(nil), items...),
		Payment:      payment,
		CustomerID:   customerID,
		CustomerTier: customerTier,
	}
	if err := Validate(cart); err != nil {
		return Cart{}, fmt.Errorf("%w %s: %v", ErrInvalidCart, id, err)
	}
	return cart, nil
}

// OriginalTotal is the sum of every line's total before any discount.
func (c Cart) OriginalTotal() money.Money {
	total := money.Zero()
	for _, item := range c.Items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
