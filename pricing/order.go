package pricing

import (
	"fmt"
	"strings"
)

// Item is a single order line.
type Item struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int
}

// Order is a customer order awaiting validation and payment.
type Order struct {
	CustomerID string
	Items      []Item
	Premium    bool
}

// Total sums the item prices.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.Price
	}
	return total
}

// CheckoutTotal validates the order and returns its total after the
// customer-tier discount.
func CheckoutTotal(o *Order) (float64, error) {
	if err := ValidateOrder(o); err != nil {
		return 0, err
	}
	return DiscountedPrice(o.Total(), o.Premium)
}

// ValidateOrder checks an order before processing. Every failure wraps
// ErrInvalidOrder.
func ValidateOrder(o *Order) error {
	if o == nil {
		return fmt.Errorf("%w: order is nil", ErrInvalidOrder)
	}
	if len(o.Items) == 0 {
		return fmt.Errorf("%w: must contain at least one item", ErrInvalidOrder)
	}
	if strings.TrimSpace(o.CustomerID) == "" {
		return fmt.Errorf("%w: customer id is required", ErrInvalidOrder)
	}
	if o.Total() <= 0 {
		return fmt.Errorf("%w: total must be positive", ErrInvalidOrder)
	}
	for _, item := range o.Items {
		if item.Price < 0 {
			return fmt.Errorf("%w: item %q has negative price", ErrInvalidOrder, item.ProductID)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("%w: item %q has no quantity", ErrInvalidOrder, item.ProductID)
		}
	}
	return nil
}
