package industry

import "testing"

func TestNormalizeExactMatches(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Exact key", input: "restaurant", expected: "restaurant"},
		{name: "Uppercase", input: "SOFTWARE", expected: "software"},
		{name: "Surrounding whitespace", input: "  trucking  ", expected: "trucking"},
		{name: "Mixed case with spaces", input: " Manufacturing ", expected: "manufacturing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeHeuristics(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Landscaping substring", input: "commercial landscaping company", expected: "landscaping"},
		{name: "Lawn care", input: "lawn care route", expected: "landscaping"},
		{name: "Restaurant substring", input: "family restaurant & bar", expected: "restaurant"},
		{name: "Food implies restaurant", input: "fast food franchise", expected: "restaurant"},
		{name: "Ecommerce hyphenated", input: "e-commerce brand", expected: "ecommerce"},
		{name: "Amazon seller", input: "amazon FBA seller", expected: "ecommerce"},
		{name: "Trucking via logistics", input: "regional logistics fleet", expected: "trucking"},
		{name: "SaaS is software", input: "B2B SaaS platform", expected: "software"},
		{name: "HVAC install and repair", input: "hvac install and repair", expected: "hvac"},
		{name: "Consulting is service", input: "management consulting firm", expected: "service"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeFirstMatchWins(t *testing.T) {
	// "landscap" is ordered before "construct", so a description containing
	// both resolves to landscaping.
	if got := Normalize("landscaping and construction services"); got != "landscaping" {
		t.Errorf("Normalize() = %q, expected landscaping (first heuristic wins)", got)
	}
}

func TestNormalizeFallback(t *testing.T) {
	tests := []string{"", "quantum basket weaving", "zzz", "   "}

	for _, input := range tests {
		if got := Normalize(input); got != FallbackKey {
			t.Errorf("Normalize(%q) = %q, expected %q", input, got, FallbackKey)
		}
	}
}

func TestFallbackMultiples(t *testing.T) {
	m := MultiplesFor("completely unknown industry")
	expected := Multiples{Low: 2.5, Mid: 3.0, High: 3.5}
	if m != expected {
		t.Errorf("MultiplesFor(fallback) = %+v, expected %+v", m, expected)
	}
}

func TestTableOrdering(t *testing.T) {
	for _, key := range Keys() {
		m := table[key]
		if m.Low < 0 || m.Low > m.Mid || m.Mid > m.High {
			t.Errorf("table[%q] = %+v violates 0 <= low <= mid <= high", key, m)
		}
	}
}
