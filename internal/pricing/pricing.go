// Package pricing derives ticket prices from a flight's base price and the
// per-class multiplier.
package pricing

import (
	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/shopspring/decimal"
)

type Calculator struct {
	defaults domain.Defaults
}

func NewCalculator(defaults domain.Defaults) Calculator {
	return Calculator{defaults: defaults}
}

// MultiplierFor returns the flight's own multiplier for the class, falling
// back to the default table when the flight record has none.
func (c Calculator) MultiplierFor(flight *domain.Flight, class domain.Class) decimal.Decimal {
	if flight != nil {
		if m, ok := flight.Multipliers[class]; ok {
			return m
		}
	}
	return c.defaults.MultiplierFor(class)
}

// Compute is base × multiplier.
func (c Calculator) Compute(base, multiplier decimal.Decimal) decimal.Decimal {
	return base.Mul(multiplier)
}

// PriceFor computes the ticket price for a class on a flight.
func (c Calculator) PriceFor(flight *domain.Flight, class domain.Class) decimal.Decimal {
	return c.Compute(flight.BasePrice, c.MultiplierFor(flight, class))
}
