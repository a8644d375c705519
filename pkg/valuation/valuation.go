// Package valuation estimates business value from an earnings basis and a
// market multiple range. The figures are indicative ranges, not appraisals.
package valuation

import (
	"github.com/brokerlane/dealengine/pkg/industry"
)

// Default multiple ranges by earnings basis. SDE-based valuations are expected
// to supply an industry-derived range instead.
var (
	DefaultEBITDAMultiples  = industry.Multiples{Low: 3.0, Mid: 4.0, High: 5.0}
	DefaultRevenueMultiples = industry.Multiples{Low: 0.6, Mid: 1.0, High: 1.4}
)

// Band holds the low/base/high value estimates for one earnings basis.
type Band struct {
	Low  float64 `json:"low"`
	Base float64 `json:"base"`
	High float64 `json:"high"`
}

// SDEInput parametrizes an SDE-multiple valuation.
type SDEInput struct {
	SDE            float64
	Multiples      industry.Multiples
	WorkingCapital float64
}

// EBITDAInput parametrizes an EBITDA-multiple valuation. A zero Multiples
// range falls back to DefaultEBITDAMultiples.
type EBITDAInput struct {
	EBITDA         float64
	Multiples      industry.Multiples
	WorkingCapital float64
}

// RevenueInput parametrizes a revenue-multiple valuation. A zero Multiples
// range falls back to DefaultRevenueMultiples.
type RevenueInput struct {
	Revenue        float64
	Multiples      industry.Multiples
	WorkingCapital float64
}

// SDEMultiple values a business as SDE times each multiple tier, net of the
// working capital deduction. Tiers never go below zero.
func SDEMultiple(in SDEInput) Band {
	return applyMultiples(in.SDE, in.Multiples, in.WorkingCapital)
}

// EBITDAMultiple values a business on its EBITDA basis.
func EBITDAMultiple(in EBITDAInput) Band {
	m := in.Multiples
	if m == (industry.Multiples{}) {
		m = DefaultEBITDAMultiples
	}
	return applyMultiples(in.EBITDA, m, in.WorkingCapital)
}

// RevenueMultiple values a business on its revenue basis.
func RevenueMultiple(in RevenueInput) Band {
	m := in.Multiples
	if m == (industry.Multiples{}) {
		m = DefaultRevenueMultiples
	}
	return applyMultiples(in.Revenue, m, in.WorkingCapital)
}

func applyMultiples(basis float64, m industry.Multiples, workingCapital float64) Band {
	tier := func(multiplier float64) float64 {
		v := basis*multiplier - workingCapital
		if v < 0 {
			return 0
		}
		return v
	}
	return Band{
		Low:  tier(m.Low),
		Base: tier(m.Mid),
		High: tier(m.High),
	}
}
