// Package letter turns a resolved deal strategy into a human-readable offer
// letter, either through a generative-text API or a deterministic template.
package letter

import (
	"fmt"
	"strings"

	"github.com/brokerlane/dealengine/pkg/deal"
	"github.com/brokerlane/dealengine/pkg/format"
)

// Request carries the figures embedded into the letter.
type Request struct {
	BusinessName string
	BuyerName    string
	Strategy     deal.Strategy
}

const systemPrompt = "You are an experienced small-business acquisition advisor drafting a " +
	"professional, warm offer letter on behalf of a buyer. Present exactly three deal options " +
	"under the headings \"Deal 1:\", \"Deal 2:\", and \"Deal 3:\". Keep every dollar figure " +
	"and percentage from the brief unchanged. Close with a note that the figures are " +
	"indicative estimates, not a formal appraisal or binding offer."

// BuildPrompt assembles the generation prompt from the strategy figures. The
// output is deterministic for a given request so cached letters stay valid.
func BuildPrompt(req Request) string {
	var b strings.Builder

	business := req.BusinessName
	if business == "" {
		business = "the business"
	}
	buyer := req.BuyerName
	if buyer == "" {
		buyer = "the buyer"
	}

	fmt.Fprintf(&b, "Draft an offer letter from %s for the purchase of %s.\n\n", buyer, business)
	b.WriteString("Deal brief:\n")

	s := req.Strategy
	if s.Ask != nil {
		fmt.Fprintf(&b, "- Seller asking price: %s\n", format.USD(*s.Ask))
	}
	if s.Offer != nil {
		fmt.Fprintf(&b, "- Buyer target price: %s\n", format.USD(*s.Offer))
	}
	if s.GapPct != nil {
		fmt.Fprintf(&b, "- Price gap: %.0f%% (%s)\n", *s.GapPct, s.GapBucket)
	}
	if s.RequiredDown != nil {
		fmt.Fprintf(&b, "- Seller-required down payment: %s\n", format.USD(*s.RequiredDown))
	}
	if s.BuyerCapital != nil {
		fmt.Fprintf(&b, "- Buyer available capital: %s\n", format.USD(*s.BuyerCapital))
	}

	fmt.Fprintf(&b, "- Recommended structure: %s\n", structureLabel(s.Structure))
	rec := s.Recommended
	if rec.CashDownAtClose != nil {
		fmt.Fprintf(&b, "- Cash down at close: %s", format.USD(*rec.CashDownAtClose))
		if rec.CashDownPct != nil {
			fmt.Fprintf(&b, " (%.0f%% of price)", *rec.CashDownPct)
		}
		b.WriteString("\n")
	}
	if rec.NotePrincipal != nil {
		fmt.Fprintf(&b, "- Seller note principal: %s at %.1f%% interest\n",
			format.USD(*rec.NotePrincipal), rec.InterestPct)
	}
	if rec.TermYears != nil {
		fmt.Fprintf(&b, "- Note term: %.0f years, fully amortizing\n", *rec.TermYears)
	}
	if rec.BridgeMonths > 0 {
		fmt.Fprintf(&b, "- Bridge period: %d months, interest only, balloon at month %d via bank refinance\n",
			rec.BridgeMonths, rec.BridgeMonths)
	}
	if rec.EquityCreditMonthly > 0 {
		fmt.Fprintf(&b, "- Equity credit: %s per month toward the down payment, capped at %s\n",
			format.USD(rec.EquityCreditMonthly), format.USD(rec.EquityCreditCap))
	}

	if len(s.Suggestions) > 0 {
		b.WriteString("\nAdvisory notes:\n")
		for _, suggestion := range s.Suggestions {
			fmt.Fprintf(&b, "- %s\n", suggestion)
		}
	}

	b.WriteString("\nPresent three options as \"Deal 1:\", \"Deal 2:\", and \"Deal 3:\": the " +
		"recommended structure first, a higher-cash variant, and a longer-term variant.\n")

	return b.String()
}

func structureLabel(structure string) string {
	switch structure {
	case deal.StructureBridgeBalloon:
		return "bridge-to-bank seller note with balloon"
	case deal.StructureStandardAmortizing:
		return "standard amortizing seller note"
	default:
		return "to be determined"
	}
}
