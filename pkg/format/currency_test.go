package format

import "testing"

func TestUSD(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{name: "Zero", amount: 0, expected: "$0"},
		{name: "Small amount", amount: 950, expected: "$950"},
		{name: "Thousands separator", amount: 1234, expected: "$1,234"},
		{name: "Rounds to nearest dollar", amount: 1234.56, expected: "$1,235"},
		{name: "Millions", amount: 2500000, expected: "$2,500,000"},
		{name: "Negative amount", amount: -1234, expected: "-$1,234"},
		{name: "Negative fraction rounds toward zero", amount: -0.4, expected: "$0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := USD(tt.amount); got != tt.expected {
				t.Errorf("USD(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}
