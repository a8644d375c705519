// Package projection produces year-by-year forward projections of revenue,
// earnings, and implied value under compounding growth and flat expenses.
package projection

import (
	"math"

	"github.com/brokerlane/dealengine/pkg/constants"
	"github.com/brokerlane/dealengine/pkg/mathutil"
)

// Input parametrizes a forward projection. BaseExpenses defaults to
// BaseRevenue - BaseSDE when nil. GrowthRate is a decimal (0.08 = 8%).
type Input struct {
	BaseRevenue  float64
	BaseSDE      float64
	BaseExpenses *float64
	GrowthRate   float64
	Years        int
	Multiple     float64
}

// Row is one projected year. Expenses are held flat across the horizon; that
// simplifying assumption is part of the contract and is surfaced to users by
// the presentation layer.
type Row struct {
	Year         int     `json:"yearIndex"`
	Revenue      float64 `json:"revenue"`
	Expenses     float64 `json:"expenses"`
	SDE          float64 `json:"sde"`
	ImpliedValue float64 `json:"impliedValue"`
}

// Project returns rows for years 0..N. The growth rate is clamped to
// MinGrowthRate and the horizon to [MinProjectionYears, MaxProjectionYears].
// The sequence is a pure function of the input; calling it twice yields
// identical rows.
func Project(in Input) []Row {
	g := math.Max(in.GrowthRate, constants.MinGrowthRate)
	years := clampYears(in.Years)
	expenses := baseExpenses(in)

	rows := make([]Row, 0, years+1)
	for t := 0; t <= years; t++ {
		revenue := in.BaseRevenue * math.Pow(1+g, float64(t))
		sde := math.Max(0, revenue-expenses)
		rows = append(rows, Row{
			Year:         t,
			Revenue:      revenue,
			Expenses:     expenses,
			SDE:          sde,
			ImpliedValue: sde * in.Multiple,
		})
	}
	return rows
}

// YearsToJustifyPrice scans for the first year at which projected SDE times
// the multiple clears the asking price, returning nil when growth is
// non-positive, the multiple is non-positive, no earnings base is positive, or
// the price is never reached within BreakevenScanYears.
//
// This is deliberately a linear scan rather than a closed-form solve: the
// max(0, revenue-expenses) floor on SDE breaks invertibility.
func YearsToJustifyPrice(in Input, askingPrice float64) *int {
	if in.GrowthRate <= 0 || in.Multiple <= 0 || askingPrice <= 0 {
		return nil
	}
	if in.BaseRevenue <= 0 && in.BaseSDE <= 0 {
		return nil
	}

	g := math.Max(in.GrowthRate, constants.MinGrowthRate)
	expenses := baseExpenses(in)
	targetSDE := askingPrice / in.Multiple

	for t := 0; t <= constants.BreakevenScanYears; t++ {
		revenue := in.BaseRevenue * math.Pow(1+g, float64(t))
		sde := math.Max(0, revenue-expenses)
		if sde >= targetSDE {
			year := t
			return &year
		}
	}
	return nil
}

func clampYears(years int) int {
	return int(mathutil.Clamp(float64(years), constants.MinProjectionYears, constants.MaxProjectionYears))
}

func baseExpenses(in Input) float64 {
	if in.BaseExpenses != nil {
		return *in.BaseExpenses
	}
	return in.BaseRevenue - in.BaseSDE
}
