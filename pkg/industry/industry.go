// Package industry maps free-text industry names onto canonical earnings
// multiple ranges used for small-business valuation.
package industry

import "strings"

// Multiples holds the low/mid/high earnings multiple range for an industry.
type Multiples struct {
	Low  float64 `json:"low"`
	Mid  float64 `json:"mid"`
	High float64 `json:"high"`
}

// FallbackKey is returned by Normalize when no industry matches.
const FallbackKey = "fallback"

// table maps canonical industry keys to their multiple ranges. The figures
// are indicative market ranges, not appraisals.
var table = map[string]Multiples{
	"service":       {Low: 2.5, Mid: 3.0, High: 3.5},
	"ecommerce":     {Low: 2.0, Mid: 2.8, High: 3.5},
	"manufacturing": {Low: 3.0, Mid: 4.0, High: 5.0},
	"restaurant":    {Low: 1.5, Mid: 2.0, High: 2.5},
	"retail":        {Low: 1.5, Mid: 2.25, High: 3.0},
	"construction":  {Low: 2.5, Mid: 3.25, High: 4.0},
	"landscaping":   {Low: 2.5, Mid: 3.0, High: 3.5},
	"trucking":      {Low: 2.0, Mid: 2.75, High: 3.5},
	"software":      {Low: 3.5, Mid: 4.75, High: 6.0},
	"healthcare":    {Low: 3.0, Mid: 3.75, High: 4.5},
	"automotive":    {Low: 2.0, Mid: 2.75, High: 3.5},
	"cleaning":      {Low: 2.25, Mid: 2.75, High: 3.25},
	"hvac":          {Low: 2.75, Mid: 3.5, High: 4.25},
	"plumbing":      {Low: 2.75, Mid: 3.5, High: 4.25},
	"agency":        {Low: 2.0, Mid: 2.75, High: 3.5},
	FallbackKey:     {Low: 2.5, Mid: 3.0, High: 3.5},
}

// heuristic is one ordered substring rule. First match wins, so the order of
// the heuristics slice is part of the contract.
type heuristic struct {
	contains string
	key      string
}

var heuristics = []heuristic{
	{"landscap", "landscaping"},
	{"lawn", "landscaping"},
	{"restaur", "restaurant"},
	{"food", "restaurant"},
	{"cafe", "restaurant"},
	{"e-comm", "ecommerce"},
	{"ecomm", "ecommerce"},
	{"online store", "ecommerce"},
	{"amazon", "ecommerce"},
	{"manufactur", "manufacturing"},
	{"machin", "manufacturing"},
	{"construct", "construction"},
	{"contractor", "construction"},
	{"roof", "construction"},
	{"truck", "trucking"},
	{"logistic", "trucking"},
	{"freight", "trucking"},
	{"software", "software"},
	{"saas", "software"},
	{"tech", "software"},
	{"health", "healthcare"},
	{"medical", "healthcare"},
	{"dental", "healthcare"},
	{"auto", "automotive"},
	{"car wash", "automotive"},
	{"clean", "cleaning"},
	{"janitor", "cleaning"},
	{"hvac", "hvac"},
	{"heating", "hvac"},
	{"cooling", "hvac"},
	{"plumb", "plumbing"},
	{"agency", "agency"},
	{"marketing", "agency"},
	{"retail", "retail"},
	{"shop", "retail"},
	{"store", "retail"},
	{"service", "service"},
	{"consult", "service"},
}

// Normalize resolves a free-text industry description to a canonical table
// key. Unmatched input always resolves to FallbackKey; there is no error case.
func Normalize(input string) string {
	cleaned := strings.ToLower(strings.TrimSpace(input))
	if cleaned == "" {
		return FallbackKey
	}

	if _, ok := table[cleaned]; ok {
		return cleaned
	}

	for _, h := range heuristics {
		if strings.Contains(cleaned, h.contains) {
			return h.key
		}
	}

	return FallbackKey
}

// MultiplesFor returns the multiple range for a free-text industry
// description, falling back to the generic range when unmatched.
func MultiplesFor(input string) Multiples {
	return table[Normalize(input)]
}

// Keys returns the canonical industry keys, excluding the fallback entry.
func Keys() []string {
	keys := make([]string, 0, len(table)-1)
	for key := range table {
		if key == FallbackKey {
			continue
		}
		keys = append(keys, key)
	}
	return keys
}
