package deal

import (
	"math"

	"github.com/brokerlane/dealengine/pkg/constants"
)

// MonthlyPayment computes the level monthly payment for an amortizing note
// using the standard formula P*r / (1 - (1+r)^-n). A zero rate degrades to
// straight-line principal. Returns nil when principal or months is not
// positive, or when the rate is negative.
func MonthlyPayment(principal, annualRatePct float64, months int) *float64 {
	if principal <= 0 || months <= 0 || annualRatePct < 0 {
		return nil
	}

	if annualRatePct == 0 {
		payment := principal / float64(months)
		return &payment
	}

	monthlyRate := annualRatePct / (constants.PercentageMultiplier * constants.MonthsPerYear)
	payment := principal * monthlyRate / (1 - math.Pow(1+monthlyRate, -float64(months)))
	return &payment
}

// InterestOnlyPayment computes the monthly interest-only payment carried
// during a bridge period.
func InterestOnlyPayment(principal, annualRatePct float64) float64 {
	if principal <= 0 || annualRatePct <= 0 {
		return 0
	}
	return principal * annualRatePct / (constants.PercentageMultiplier * constants.MonthsPerYear)
}
