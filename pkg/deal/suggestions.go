package deal

import (
	"fmt"

	"github.com/brokerlane/dealengine/pkg/format"
)

// covenantReminder closes every suggestion list. It states the standing
// expectations of a seller-financed close.
const covenantReminder = "Include standard covenants: monthly financial reporting to the seller, " +
	"a minimum debt service coverage ratio of 1.25x, a defined bank-refinance window, and a " +
	"fallback plan (term extension or rate step-up) if the refinance misses its window."

// buildSuggestions assembles ordered advisory text for a resolved strategy.
// Bucket framing comes first, then the shortfall warning when applicable, and
// the covenant reminder is always appended last.
func buildSuggestions(s Strategy, p Policy) []string {
	var suggestions []string

	switch s.GapBucket {
	case GapNear:
		suggestions = append(suggestions,
			"Ask and offer are close. Lead with your target price and trade on terms "+
				"(rate, term length, transition support) rather than price.")
	case GapModerate:
		suggestions = append(suggestions, fmt.Sprintf(
			"There is a moderate price gap (about %.0f%%). Bridge it with structure: a "+
				"seller note with a balloon, an earnout tied to revenue retention, or a "+
				"price step contingent on verified earnings.", absGap(s)))
	case GapFar:
		suggestions = append(suggestions, fmt.Sprintf(
			"The price gap is wide (about %.0f%%). Revisit the valuation evidence with the "+
				"seller before negotiating structure; a gap this size rarely closes on "+
				"terms alone.", absGap(s)))
	default:
		suggestions = append(suggestions,
			"State a target price and available capital to get a full gap analysis.")
	}

	if s.DownOk != nil && !*s.DownOk && s.DownShort != nil && s.RequiredDown != nil {
		suggestions = append(suggestions, fmt.Sprintf(
			"Stated capital covers %s of the %s required down payment (short %s). The "+
				"recommended structure defers the remainder through the bridge period.",
			format.USD(*s.RequiredDown-*s.DownShort), format.USD(*s.RequiredDown),
			format.USD(*s.DownShort)))
	}

	if s.Structure == StructureBridgeBalloon && s.Recommended.BridgeMonths > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"Plan the bank refinance before month %d; interest-only payments run until the "+
				"balloon.", s.Recommended.BridgeMonths))
	}

	if s.Recommended.EquityCreditMonthly > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"Propose a monthly equity credit of %s toward the down payment, capped at %s "+
				"over the bridge period.",
			format.USD(s.Recommended.EquityCreditMonthly), format.USD(s.Recommended.EquityCreditCap)))
	}

	return append(suggestions, covenantReminder)
}

func absGap(s Strategy) float64 {
	if s.GapPct == nil {
		return 0
	}
	if *s.GapPct < 0 {
		return -*s.GapPct
	}
	return *s.GapPct
}
