package deal

import (
	"math"

	"github.com/brokerlane/dealengine/pkg/constants"
	"github.com/brokerlane/dealengine/pkg/mathutil"
)

// Structure identifiers.
const (
	StructureStandardAmortizing = "standardAmortizing"
	StructureBridgeBalloon      = "bridgeBalloon"
)

// Gap buckets.
const (
	GapNear     = "near"
	GapModerate = "moderate"
	GapFar      = "far"
	GapUnknown  = "unknown"
)

// SellerTerms captures the seller's stated facts. Nil fields mean the seller
// has not stated that term.
type SellerTerms struct {
	AskingPrice     *float64 `json:"askingPrice"`
	DownPaymentPct  *float64 `json:"downPaymentPct"`
	InterestRatePct *float64 `json:"interestRatePct"`
	TermYears       *float64 `json:"termYears"`
}

// BuyerProfile captures the buyer's stated facts.
type BuyerProfile struct {
	TargetPurchasePrice *float64 `json:"targetPurchasePrice"`
	AvailableCapital    *float64 `json:"availableCapital"`
}

// Recommendation is the concrete structure the resolver proposes.
type Recommendation struct {
	CashDownAtClose     *float64 `json:"cashDownAtClose"`
	CashDownPct         *float64 `json:"cashDownPct"`
	NotePrincipal       *float64 `json:"notePrincipal"`
	InterestPct         float64  `json:"interestPct"`
	TermYears           *float64 `json:"termYears"`
	BridgeMonths        int      `json:"bridgeMonths"`
	BalloonAtMonth      *int     `json:"balloonAtMonth"`
	EquityCreditMonthly float64  `json:"equityCreditMonthly"`
	EquityCreditCap     float64  `json:"equityCreditCap"`
}

// Strategy is the resolver's full output. Nil fields reflect inputs that were
// never stated; partial inputs produce partial but internally consistent
// results.
type Strategy struct {
	Ask              *float64       `json:"ask"`
	Offer            *float64       `json:"offer"`
	GapPct           *float64       `json:"gapPct"`
	GapBucket        string         `json:"gapBucket"`
	DownPctRequested *float64       `json:"downPctRequested"`
	RequiredDown     *float64       `json:"requiredDown"`
	BuyerCapital     *float64       `json:"buyerCapital"`
	DownOk           *bool          `json:"downOk"`
	DownShort        *float64       `json:"downShort"`
	Structure        string         `json:"structure"`
	Recommended      Recommendation `json:"recommended"`
	Suggestions      []string       `json:"suggestions"`
	Policy           Policy         `json:"policy"`
}

// Resolve classifies the ask/offer gap, checks down-payment feasibility, and
// derives a recommended deal structure under the given policy. It never
// errors; missing inputs degrade to nil fields and the "unknown" gap bucket.
func Resolve(seller SellerTerms, buyer BuyerProfile, policy Policy) Strategy {
	p := policy.normalize()

	s := Strategy{
		Ask:              seller.AskingPrice,
		Offer:            buyer.TargetPurchasePrice,
		DownPctRequested: seller.DownPaymentPct,
		BuyerCapital:     buyer.AvailableCapital,
		GapBucket:        GapUnknown,
		Policy:           p,
	}

	// Gap analysis. Positive gap means the buyer is offering under ask.
	if s.Ask != nil && s.Offer != nil && *s.Ask > 0 {
		gap := mathutil.RoundWhole((*s.Ask - *s.Offer) / *s.Ask * constants.PercentageMultiplier)
		s.GapPct = &gap
		switch {
		case math.Abs(gap) <= p.NearGapPct:
			s.GapBucket = GapNear
		case math.Abs(gap) <= p.ModerateGapPct:
			s.GapBucket = GapModerate
		default:
			s.GapBucket = GapFar
		}
	}

	// Down-payment feasibility.
	if s.Ask != nil && seller.DownPaymentPct != nil {
		required := mathutil.RoundWhole(*seller.DownPaymentPct / constants.PercentageMultiplier * *s.Ask)
		s.RequiredDown = &required
		if s.BuyerCapital != nil {
			ok := *s.BuyerCapital >= required
			short := math.Max(0, required-*s.BuyerCapital)
			s.DownOk = &ok
			s.DownShort = &short
		}
	}

	// Structure decision: any single trigger forces a bridge. A bridge buys
	// the buyer time to refinance when either capital or price-gap risk is
	// present.
	bridge := (s.DownOk != nil && !*s.DownOk) ||
		s.GapBucket == GapModerate || s.GapBucket == GapFar
	if bridge {
		s.Structure = StructureBridgeBalloon
	} else {
		s.Structure = StructureStandardAmortizing
	}

	// Bridge duration ladder, evaluated in this precedence order.
	bridgeMonths := 0
	if bridge {
		bridgeMonths = p.DefaultBridgeMonths
		shortPctOfAsk := -1.0
		if s.DownShort != nil && s.Ask != nil && *s.Ask > 0 {
			shortPctOfAsk = *s.DownShort / *s.Ask * constants.PercentageMultiplier
		}
		switch {
		case (shortPctOfAsk >= 0 && shortPctOfAsk >= p.BridgeEscalatePct) || s.GapBucket == GapFar:
			bridgeMonths = p.LongBridgeMonths
		case shortPctOfAsk >= 0 && shortPctOfAsk <= p.BridgeShortenPct && s.GapBucket == GapNear:
			bridgeMonths = p.ShortBridgeMonths
		}
	}

	rec := Recommendation{BridgeMonths: bridgeMonths}

	if s.Ask != nil {
		ask := *s.Ask

		// Minimum cash floor: the seller always sees some real cash at close.
		minCash := mathutil.RoundWhole(p.MinCashAtClosePct / constants.PercentageMultiplier * ask)

		// Recommended cash down respects affordability, the seller's stated
		// requirement, and the asking price as an absolute ceiling.
		cashDown := minCash
		switch {
		case s.BuyerCapital != nil && s.RequiredDown != nil:
			cashDown = math.Min(*s.BuyerCapital, *s.RequiredDown)
		case s.BuyerCapital != nil:
			cashDown = *s.BuyerCapital
		case s.RequiredDown != nil:
			cashDown = *s.RequiredDown
		}
		cashDown = math.Max(cashDown, minCash)
		cashDown = math.Min(cashDown, ask)
		cashDown = mathutil.RoundWhole(cashDown)
		rec.CashDownAtClose = &cashDown

		if ask > 0 {
			pct := mathutil.RoundWhole(cashDown / ask * constants.PercentageMultiplier)
			rec.CashDownPct = &pct
		}

		note := ask - cashDown
		rec.NotePrincipal = &note

		// Equity credit only applies when bridging, and only for a shortfall
		// small enough that it cannot become disguised full financing.
		if bridge && s.RequiredDown != nil && bridgeMonths > 0 {
			shortfall := *s.RequiredDown - cashDown
			cap := p.MaxEquityCreditPctOfPrice / constants.PercentageMultiplier * ask
			if shortfall > 0 && shortfall <= cap {
				rec.EquityCreditCap = shortfall
				rec.EquityCreditMonthly = math.Ceil(shortfall / float64(bridgeMonths))
			}
		}
	}

	rec.InterestPct = p.FallbackInterestPct
	if seller.InterestRatePct != nil {
		rec.InterestPct = *seller.InterestRatePct
	}

	if bridge {
		balloon := bridgeMonths
		rec.BalloonAtMonth = &balloon
	} else {
		term := p.FallbackTermYears
		if seller.TermYears != nil {
			term = *seller.TermYears
		}
		rec.TermYears = &term
	}

	s.Recommended = rec
	s.Suggestions = buildSuggestions(s, p)
	return s
}
