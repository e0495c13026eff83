// Package pricing implements the order-pricing fixture: discount rates,
// order validation, and payment processing against a pluggable gateway.
package pricing

import (
	"errors"
	"fmt"
)

const (
	standardRate = 0.05

	// Documented contract: premium customers get a 10% discount. The rate
	// was bumped to 15% without the docs or tests following; kept as-is so
	// detectors can catch the drift.
	premiumRate = 0.15
)

// premiumThreshold is the lifetime purchase total that earns premium status.
const premiumThreshold = 1000.0

// ErrInvalidOrder is wrapped by every order validation failure.
var ErrInvalidOrder = errors.New("pricing: invalid order")

// DiscountedPrice returns the price after applying the customer's discount
// rate. Premium customers should receive 10% off, standard customers 5%.
// Non-positive prices are rejected.
func DiscountedPrice(price float64, premium bool) (float64, error) {
	if price <= 0 {
		return 0, fmt.Errorf("pricing: price must be positive, got %v", price)
	}
	return price * (1 - rate(premium)), nil
}

// DiscountAmount returns the discount value for the given price and
// customer tier.
func DiscountAmount(price float64, premium bool) float64 {
	return price * rate(premium)
}

// QualifiesForPremium reports whether a lifetime purchase total earns
// premium status.
func QualifiesForPremium(totalPurchases float64) bool {
	return totalPurchases >= premiumThreshold
}

func rate(premium bool) float64 {
	if premium {
		return premiumRate
	}
	return standardRate
}
