// Package validation provides input sanity checks that surface warnings
// without blocking a computation. The engine itself treats malformed input as
// degraded, never fatal, so everything here is advisory.
package validation

import "fmt"

// ValidateProfile checks the business profile figures.
func ValidateProfile(revenue, sde, ebitda, workingCapital float64) []string {
	var warnings []string

	if revenue < 0 {
		warnings = append(warnings, fmt.Sprintf("revenue is negative (%.2f) - treated as zero basis", revenue))
	}
	if sde < 0 {
		warnings = append(warnings, fmt.Sprintf("SDE is negative (%.2f) - valuation bands will floor at zero", sde))
	}
	if ebitda < 0 {
		warnings = append(warnings, fmt.Sprintf("EBITDA is negative (%.2f) - valuation bands will floor at zero", ebitda))
	}
	if sde > 0 && revenue > 0 && sde > revenue {
		warnings = append(warnings, fmt.Sprintf("SDE (%.2f) exceeds revenue (%.2f)", sde, revenue))
	}
	if workingCapital < 0 {
		warnings = append(warnings, fmt.Sprintf("working capital deduction is negative (%.2f)", workingCapital))
	}

	return warnings
}

// ValidateAssumptions checks the qualitative scoring inputs.
func ValidateAssumptions(growthRatePct, riskScore, ownerDepScore float64) []string {
	var warnings []string

	if riskScore < 1 || riskScore > 5 {
		warnings = append(warnings, fmt.Sprintf("risk score %.1f is outside [1,5] - adjustment will extrapolate", riskScore))
	}
	if ownerDepScore < 1 || ownerDepScore > 5 {
		warnings = append(warnings, fmt.Sprintf("owner dependency score %.1f is outside [1,5] - adjustment will extrapolate", ownerDepScore))
	}
	if growthRatePct < -99 {
		warnings = append(warnings, fmt.Sprintf("growth rate %.1f%% is below -99%% and will be clamped", growthRatePct))
	}
	if growthRatePct > 100 {
		warnings = append(warnings, fmt.Sprintf("growth rate %.1f%% is unusually high for a small business", growthRatePct))
	}

	return warnings
}

// ValidateDealInputs checks the seller and buyer facts. Nil pointers mean the
// fact was never stated and draw no warning.
func ValidateDealInputs(askingPrice, downPaymentPct, offer, capital *float64) []string {
	var warnings []string

	if askingPrice != nil && *askingPrice <= 0 {
		warnings = append(warnings, fmt.Sprintf("asking price %.2f is not positive", *askingPrice))
	}
	if downPaymentPct != nil && (*downPaymentPct < 0 || *downPaymentPct > 100) {
		warnings = append(warnings, fmt.Sprintf("down payment percentage %.1f is outside [0,100]", *downPaymentPct))
	}
	if offer != nil && askingPrice != nil && *offer > *askingPrice {
		warnings = append(warnings, fmt.Sprintf("offer %.2f exceeds asking price %.2f", *offer, *askingPrice))
	}
	if capital != nil && *capital < 0 {
		warnings = append(warnings, fmt.Sprintf("available capital %.2f is negative", *capital))
	}

	return warnings
}
