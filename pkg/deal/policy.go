// Package deal derives a concrete seller-financing deal structure from a
// seller's terms and a buyer's capital position.
package deal

// Policy holds the tunable thresholds the resolver works against. Every
// computation receives an explicit Policy value so the basis of a result is
// always visible; there is no hidden global state. The numbers are business
// heuristics carried over from practice, not derived quantities, and are kept
// as named overridable fields for that reason.
type Policy struct {
	// NearGapPct and ModerateGapPct bucket the absolute ask/offer gap.
	NearGapPct     float64 `json:"nearGapPct" yaml:"nearGapPct"`
	ModerateGapPct float64 `json:"moderateGapPct" yaml:"moderateGapPct"`

	// MinCashAtClosePct floors the cash the seller receives at close,
	// regardless of structure, as a percent of the asking price.
	MinCashAtClosePct float64 `json:"minCashAtClosePct" yaml:"minCashAtClosePct"`

	// MaxEquityCreditPctOfPrice caps the down-payment shortfall that may be
	// financed through monthly equity credits. Beyond the cap no credit plan
	// is offered, so a seller cannot end up financing the whole shortfall
	// under an equity-credit label.
	MaxEquityCreditPctOfPrice float64 `json:"maxEquityCreditPctOfPrice" yaml:"maxEquityCreditPctOfPrice"`

	// Bridge duration ladder, in months.
	DefaultBridgeMonths int `json:"defaultBridgeMonths" yaml:"defaultBridgeMonths"`
	LongBridgeMonths    int `json:"longBridgeMonths" yaml:"longBridgeMonths"`
	ShortBridgeMonths   int `json:"shortBridgeMonths" yaml:"shortBridgeMonths"`

	// BridgeEscalatePct escalates to LongBridgeMonths when the down-payment
	// shortfall reaches this percent of ask; BridgeShortenPct shortens to
	// ShortBridgeMonths when the shortfall stays at or under it and the gap
	// bucket is near.
	BridgeEscalatePct float64 `json:"bridgeEscalatePct" yaml:"bridgeEscalatePct"`
	BridgeShortenPct  float64 `json:"bridgeShortenPct" yaml:"bridgeShortenPct"`

	// Fallbacks when the seller states no financing terms.
	FallbackInterestPct float64 `json:"fallbackInterestPct" yaml:"fallbackInterestPct"`
	FallbackTermYears   float64 `json:"fallbackTermYears" yaml:"fallbackTermYears"`
}

// DefaultPolicy returns the documented default thresholds.
func DefaultPolicy() Policy {
	return Policy{
		NearGapPct:                10,
		ModerateGapPct:            25,
		MinCashAtClosePct:         5,
		MaxEquityCreditPctOfPrice: 12,
		DefaultBridgeMonths:       18,
		LongBridgeMonths:          24,
		ShortBridgeMonths:         12,
		BridgeEscalatePct:         10,
		BridgeShortenPct:          5,
		FallbackInterestPct:       10,
		FallbackTermYears:         4,
	}
}

// normalize fills zero-valued fields with defaults so a partially specified
// override still yields a usable policy.
func (p Policy) normalize() Policy {
	def := DefaultPolicy()
	if p.NearGapPct <= 0 {
		p.NearGapPct = def.NearGapPct
	}
	if p.ModerateGapPct <= 0 {
		p.ModerateGapPct = def.ModerateGapPct
	}
	if p.MinCashAtClosePct <= 0 {
		p.MinCashAtClosePct = def.MinCashAtClosePct
	}
	if p.MaxEquityCreditPctOfPrice <= 0 {
		p.MaxEquityCreditPctOfPrice = def.MaxEquityCreditPctOfPrice
	}
	if p.DefaultBridgeMonths <= 0 {
		p.DefaultBridgeMonths = def.DefaultBridgeMonths
	}
	if p.LongBridgeMonths <= 0 {
		p.LongBridgeMonths = def.LongBridgeMonths
	}
	if p.ShortBridgeMonths <= 0 {
		p.ShortBridgeMonths = def.ShortBridgeMonths
	}
	if p.BridgeEscalatePct <= 0 {
		p.BridgeEscalatePct = def.BridgeEscalatePct
	}
	if p.BridgeShortenPct <= 0 {
		p.BridgeShortenPct = def.BridgeShortenPct
	}
	if p.FallbackInterestPct <= 0 {
		p.FallbackInterestPct = def.FallbackInterestPct
	}
	if p.FallbackTermYears <= 0 {
		p.FallbackTermYears = def.FallbackTermYears
	}
	return p
}
