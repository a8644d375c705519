package valuation

import (
	"math"

	"github.com/brokerlane/dealengine/pkg/constants"
)

// DCFInput parametrizes the fixed five-year discounted cash flow estimate.
// Rates are given in percent; they are converted to decimals internally.
type DCFInput struct {
	SDE                float64
	GrowthRatePct      float64
	DiscountRatePct    float64
	TerminalMultiple   float64
	SellerCarryAllowed bool
	WorkingCapital     float64
}

// DCF computes the present value of five years of compounding SDE cash flows
// plus a terminal value at year five. Seller financing reduces the discount
// rate by two points, floored at ten percent, on the theory that a carried
// note lowers the buyer's effective cost of capital. The result is net of the
// working capital deduction and never negative.
//
// The horizon is intentionally fixed at five years to keep the estimate inside
// a credible near-term window.
func DCF(in DCFInput) float64 {
	g := in.GrowthRatePct / constants.PercentageMultiplier
	r := in.DiscountRatePct / constants.PercentageMultiplier
	if in.SellerCarryAllowed {
		r = math.Max(constants.DCFMinDiscountRate, r-constants.DCFCarryRateReduction)
	}

	cf := in.SDE
	total := 0.0
	for year := 1; year <= constants.DCFHorizonYears; year++ {
		cf *= 1 + g
		discount := math.Pow(1+r, float64(year))
		total += cf / discount
		if year == constants.DCFHorizonYears {
			total += cf * in.TerminalMultiple / discount
		}
	}

	total -= in.WorkingCapital
	if total < 0 {
		return 0
	}
	return total
}
