// Package multiples converts qualitative business traits into a bounded
// adjustment applied uniformly to an industry multiple range.
package multiples

import (
	"github.com/brokerlane/dealengine/pkg/constants"
	"github.com/brokerlane/dealengine/pkg/industry"
	"github.com/brokerlane/dealengine/pkg/mathutil"
)

// Adjustment weights. Scores run 1 (favorable) to 5 (unfavorable) with a
// neutral pivot at 3; growth pivots at 5% annual.
const (
	riskWeight     = 0.20
	ownerDepWeight = 0.15
	growthWeight   = 0.50
	growthPivotPct = 5.0
	growthSpanPct  = 10.0
	carryBonus     = 0.20
	scorePivot     = 3.0
)

// Inputs holds the qualitative drivers of the multiple adjustment.
type Inputs struct {
	GrowthRatePct      float64 `json:"growthRatePct"`
	RiskScore          float64 `json:"riskScore"`     // 1 = low risk, 5 = high risk
	OwnerDepScore      float64 `json:"ownerDepScore"` // 1 = runs itself, 5 = owner-centric
	SellerCarryAllowed bool    `json:"sellerCarryAllowed"`
}

// Result itemizes each adjustment component along with the clamped total.
type Result struct {
	Risk            float64 `json:"risk"`
	OwnerDependency float64 `json:"owner_dependency"`
	Growth          float64 `json:"growth"`
	Carry           float64 `json:"carry"`
	Total           float64 `json:"total"`
}

// Compute derives the additive multiple adjustment from qualitative inputs.
// The total is clamped to ±AdjustmentTotalBound even when the unclamped
// components would sum outside it.
func Compute(in Inputs) Result {
	result := Result{
		Risk:            (scorePivot - in.RiskScore) * riskWeight,
		OwnerDependency: (scorePivot - in.OwnerDepScore) * ownerDepWeight,
		Growth: mathutil.Clamp(
			((in.GrowthRatePct-growthPivotPct)/growthSpanPct)*growthWeight,
			-growthWeight, growthWeight),
	}
	if in.SellerCarryAllowed {
		result.Carry = carryBonus
	}

	sum := result.Risk + result.OwnerDependency + result.Growth + result.Carry
	result.Total = mathutil.Clamp(sum, -constants.AdjustmentTotalBound, constants.AdjustmentTotalBound)
	return result
}

// Apply adds total uniformly to every tier of base and floor-clamps each tier
// at MultipleFloor so no tier can go non-positive. The low ≤ mid ≤ high
// ordering of a valid base range is preserved.
func Apply(base industry.Multiples, total float64) industry.Multiples {
	floor := func(v float64) float64 {
		if v < constants.MultipleFloor {
			return constants.MultipleFloor
		}
		return v
	}
	return industry.Multiples{
		Low:  floor(base.Low + total),
		Mid:  floor(base.Mid + total),
		High: floor(base.High + total),
	}
}
