// Package estimate derives the randomized GDP figure attached to each
// country during a refresh.
package estimate

import (
	"math"
	"math/rand/v2"

	"github.com/shopspring/decimal"

	"github.com/fxatlas/countryfx/pkg/sources"
)

const (
	// MultiplierMin is the inclusive lower bound of the GDP multiplier.
	MultiplierMin = 1000
	// MultiplierMax is the inclusive upper bound of the GDP multiplier.
	MultiplierMax = 2000
)

// Result is the estimator outcome for one country. Fields that could not
// be resolved are nil and persist as NULL.
type Result struct {
	CurrencyCode *string
	ExchangeRate *float64
	EstimatedGDP *float64
}

// Estimator computes GDP estimates. The multiplier draw is injectable so
// tests can pin it.
type Estimator struct {
	draw func(lo, hi int) int
}

// New creates an Estimator using the default random multiplier draw.
func New() *Estimator {
	return &Estimator{draw: defaultDraw}
}

// NewWithDraw creates an Estimator with a custom multiplier draw.
func NewWithDraw(draw func(lo, hi int) int) *Estimator {
	return &Estimator{draw: draw}
}

func defaultDraw(lo, hi int) int {
	return lo + rand.IntN(hi-lo+1)
}

// Estimate resolves the currency and GDP estimate for a single country.
// A fresh multiplier is drawn on every call that reaches the GDP formula.
//
// Countries without any currency get a GDP of exactly zero. A currency
// that is missing from the rate table, or whose rate is zero or
// non-finite, yields null rate and null GDP.
func (e *Estimator) Estimate(population int64, currencies []sources.Currency, rates map[string]float64) Result {
	if len(currencies) == 0 {
		zero := 0.0
		return Result{EstimatedGDP: &zero}
	}

	code := currencies[0].Code
	if code == "" {
		return Result{}
	}

	res := Result{CurrencyCode: &code}

	rate, ok := rates[code]
	if !ok || rate == 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return res
	}
	res.ExchangeRate = &rate

	multiplier := e.draw(MultiplierMin, MultiplierMax)
	gdp := decimal.NewFromInt(population).
		Mul(decimal.NewFromInt(int64(multiplier))).
		Div(decimal.NewFromFloat(rate)).
		InexactFloat64()
	res.EstimatedGDP = &gdp

	return res
}
