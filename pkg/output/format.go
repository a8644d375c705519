// Package output provides utilities for formatting and displaying analysis
// results.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/brokerlane/dealengine/internal/engine"
	"github.com/brokerlane/dealengine/pkg/deal"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(analysis *engine.Analysis) {
	p := message.NewPrinter(language.English)

	name := analysis.BusinessName
	if name == "" {
		name = "(unnamed business)"
	}
	fmt.Printf("--- Deal analysis for %s ---\n", name)
	fmt.Printf("Industry: %s (multiples %.2f / %.2f / %.2f, adjustment %+.2f)\n",
		analysis.IndustryKey,
		analysis.BaseMultiples.Low, analysis.BaseMultiples.Mid, analysis.BaseMultiples.High,
		analysis.Adjustments.Total)
	fmt.Printf("Effective multiples: %.2f / %.2f / %.2f\n\n",
		analysis.EffectiveMultiples.Low, analysis.EffectiveMultiples.Mid, analysis.EffectiveMultiples.High)

	fmt.Printf("Valuation      | Low           | Base          | High\n")
	fmt.Printf("_________      | ___           | ____          | ____\n")
	_, _ = p.Printf("SDE multiple   | $%.0f | $%.0f | $%.0f\n",
		analysis.SDEValuation.Low, analysis.SDEValuation.Base, analysis.SDEValuation.High)
	_, _ = p.Printf("EBITDA multiple| $%.0f | $%.0f | $%.0f\n",
		analysis.EBITDAValuation.Low, analysis.EBITDAValuation.Base, analysis.EBITDAValuation.High)
	_, _ = p.Printf("Revenue multiple| $%.0f | $%.0f | $%.0f\n",
		analysis.RevenueValuation.Low, analysis.RevenueValuation.Base, analysis.RevenueValuation.High)
	if analysis.DCFValue != nil {
		_, _ = p.Printf("5-year DCF     | $%.0f\n", *analysis.DCFValue)
	}

	fmt.Printf("\nProjection (expenses held flat)\n")
	fmt.Printf("Year | Revenue       | SDE           | Implied value\n")
	for _, row := range analysis.Projection {
		_, _ = p.Printf("%4d | $%.0f | $%.0f | $%.0f\n",
			row.Year, row.Revenue, row.SDE, row.ImpliedValue)
	}
	if analysis.YearsToJustifyAsk != nil {
		fmt.Printf("Projected earnings justify the asking price in year %d.\n", *analysis.YearsToJustifyAsk)
	}

	printStrategy(p, analysis)

	if len(analysis.Warnings) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, warning := range analysis.Warnings {
			fmt.Printf("  - %s\n", warning)
		}
	}
}

func printStrategy(p *message.Printer, analysis *engine.Analysis) {
	s := analysis.Strategy

	fmt.Printf("\nDeal structure: %s\n", s.Structure)
	if s.GapPct != nil {
		fmt.Printf("Price gap: %.0f%% (%s)\n", *s.GapPct, s.GapBucket)
	} else {
		fmt.Printf("Price gap: %s\n", s.GapBucket)
	}
	if s.RequiredDown != nil {
		_, _ = p.Printf("Required down payment: $%.0f\n", *s.RequiredDown)
	}
	if s.DownOk != nil && !*s.DownOk && s.DownShort != nil {
		_, _ = p.Printf("Down payment shortfall: $%.0f\n", *s.DownShort)
	}

	rec := s.Recommended
	if rec.CashDownAtClose != nil {
		_, _ = p.Printf("Recommended cash at close: $%.0f\n", *rec.CashDownAtClose)
	}
	if rec.NotePrincipal != nil {
		_, _ = p.Printf("Seller note: $%.0f at %.1f%%\n", *rec.NotePrincipal, rec.InterestPct)
	}
	if rec.TermYears != nil {
		fmt.Printf("Term: %.0f years\n", *rec.TermYears)
	}
	if rec.BridgeMonths > 0 {
		fmt.Printf("Bridge: %d months, balloon at month %d\n", rec.BridgeMonths, rec.BridgeMonths)
	}
	if rec.EquityCreditMonthly > 0 {
		_, _ = p.Printf("Equity credit: $%.0f/month (cap $%.0f)\n", rec.EquityCreditMonthly, rec.EquityCreditCap)
	}
	if analysis.MonthlyNotePayment != nil {
		_, _ = p.Printf("Monthly note payment: $%.2f\n", *analysis.MonthlyNotePayment)
	}

	if len(s.Suggestions) > 0 {
		fmt.Printf("\nSuggestions:\n")
		for _, suggestion := range s.Suggestions {
			fmt.Printf("  - %s\n", suggestion)
		}
	}
}

// CsvFormat outputs the projection rows in comma-separated value format.
func CsvFormat(analysis *engine.Analysis) {
	fmt.Printf(`"year","revenue","expenses","sde","impliedValue"`)
	fmt.Printf("\n")
	for _, row := range analysis.Projection {
		fmt.Printf(`"%d","%.2f","%.2f","%.2f","%.2f"`,
			row.Year, row.Revenue, row.Expenses, row.SDE, row.ImpliedValue)
		fmt.Printf("\n")
	}
}

// JSONFormat writes the full analysis as indented JSON to stdout, for piping
// into other tools.
func JSONFormat(analysis *engine.Analysis) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(analysis)
}

// StrategySummary renders a one-line summary of a strategy, used in logs.
func StrategySummary(s deal.Strategy) string {
	parts := []string{s.Structure, "gap " + s.GapBucket}
	if s.Recommended.CashDownAtClose != nil {
		parts = append(parts, fmt.Sprintf("down %.0f", *s.Recommended.CashDownAtClose))
	}
	if s.Recommended.BridgeMonths > 0 {
		parts = append(parts, fmt.Sprintf("bridge %dmo", s.Recommended.BridgeMonths))
	}
	return strings.Join(parts, ", ")
}
