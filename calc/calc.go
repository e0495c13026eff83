// Package calc is the arithmetic fixture: four operations and rounding to
// a configured precision.
package calc

import (
	"errors"
	"math"
)

// ErrDivideByZero is returned by Divide when the divisor is zero.
var ErrDivideByZero = errors.New("calc: division by zero")

// Calculator performs basic arithmetic and rounds results to a fixed
// number of decimal places.
type Calculator struct {
	precision int
}

// New returns a Calculator with the default precision of two decimals.
func New() *Calculator {
	return &Calculator{precision: 2}
}

// Add returns a + b.
func (c *Calculator) Add(a, b float64) float64 {
	return a + b
}

// Subtract returns a - b.
func (c *Calculator) Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns a * b.
func (c *Calculator) Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a / b, or ErrDivideByZero when b is zero.
func (c *Calculator) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}

// Round rounds v to the calculator's precision.
func (c *Calculator) Round(v float64) float64 {
	shift := math.Pow(10, float64(c.precision))
	return math.Round(v*shift) / shift
}
