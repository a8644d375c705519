package valuation

import (
	"math"
	"testing"

	"github.com/brokerlane/dealengine/pkg/industry"
)

func TestSDEMultiple(t *testing.T) {
	tests := []struct {
		name     string
		input    SDEInput
		expected Band
	}{
		{
			name: "Standard service business",
			input: SDEInput{
				SDE:       120000,
				Multiples: industry.Multiples{Low: 2.5, Mid: 3.0, High: 3.5},
			},
			expected: Band{Low: 300000, Base: 360000, High: 420000},
		},
		{
			name: "Working capital deduction",
			input: SDEInput{
				SDE:            100000,
				Multiples:      industry.Multiples{Low: 2.0, Mid: 3.0, High: 4.0},
				WorkingCapital: 50000,
			},
			expected: Band{Low: 150000, Base: 250000, High: 350000},
		},
		{
			name: "Deduction larger than gross floors at zero",
			input: SDEInput{
				SDE:            10000,
				Multiples:      industry.Multiples{Low: 2.0, Mid: 3.0, High: 4.0},
				WorkingCapital: 100000,
			},
			expected: Band{Low: 0, Base: 0, High: 0},
		},
		{
			name: "Zero SDE",
			input: SDEInput{
				SDE:       0,
				Multiples: industry.Multiples{Low: 2.5, Mid: 3.0, High: 3.5},
			},
			expected: Band{Low: 0, Base: 0, High: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SDEMultiple(tt.input)
			if got != tt.expected {
				t.Errorf("SDEMultiple(%+v) = %+v, expected %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEBITDAMultipleDefaults(t *testing.T) {
	got := EBITDAMultiple(EBITDAInput{EBITDA: 200000})
	expected := Band{Low: 600000, Base: 800000, High: 1000000}
	if got != expected {
		t.Errorf("EBITDAMultiple() = %+v, expected %+v", got, expected)
	}
}

func TestRevenueMultipleDefaults(t *testing.T) {
	got := RevenueMultiple(RevenueInput{Revenue: 1000000})
	expected := Band{Low: 600000, Base: 1000000, High: 1400000}
	if got != expected {
		t.Errorf("RevenueMultiple() = %+v, expected %+v", got, expected)
	}
}

func TestBandsNeverNegative(t *testing.T) {
	inputs := []SDEInput{
		{SDE: 0, WorkingCapital: 1e9, Multiples: industry.Multiples{Low: 1, Mid: 2, High: 3}},
		{SDE: 50000, WorkingCapital: 1e9, Multiples: industry.Multiples{Low: 1, Mid: 2, High: 3}},
		{SDE: 1, WorkingCapital: 10, Multiples: industry.Multiples{Low: 0.5, Mid: 0.5, High: 0.5}},
	}

	for _, input := range inputs {
		band := SDEMultiple(input)
		if band.Low < 0 || band.Base < 0 || band.High < 0 {
			t.Errorf("SDEMultiple(%+v) = %+v contains negative tier", input, band)
		}
	}
}

func TestIdempotence(t *testing.T) {
	input := SDEInput{
		SDE:            123456.78,
		Multiples:      industry.Multiples{Low: 2.1, Mid: 2.9, High: 3.8},
		WorkingCapital: 23456.78,
	}

	first := SDEMultiple(input)
	second := SDEMultiple(input)
	if first != second {
		t.Errorf("SDEMultiple not idempotent: %+v != %+v", first, second)
	}
}

func TestDCF(t *testing.T) {
	tests := []struct {
		name     string
		input    DCFInput
		expected float64
	}{
		{
			name: "Reference scenario without carry",
			input: DCFInput{
				SDE:              100000,
				GrowthRatePct:    5,
				DiscountRatePct:  22,
				TerminalMultiple: 3,
			},
			expected: 467646.74,
		},
		{
			name: "Seller carry reduces discount rate by two points",
			input: DCFInput{
				SDE:                100000,
				GrowthRatePct:      5,
				DiscountRatePct:    22,
				TerminalMultiple:   3,
				SellerCarryAllowed: true,
			},
			expected: 494836.43,
		},
		{
			name: "Discount rate floor at ten percent with carry",
			input: DCFInput{
				SDE:              100000,
				GrowthRatePct:    0,
				DiscountRatePct:  10,
				TerminalMultiple: 0,
				// 10% - 2 would be 8%, but the floor holds at 10%
				SellerCarryAllowed: true,
			},
			// Five flat 100k cash flows discounted at 10%
			expected: 379078.68,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DCF(tt.input)
			if math.Abs(got-tt.expected) > 0.01 {
				t.Errorf("DCF(%+v) = %.2f, expected %.2f", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDCFFloorsAtZero(t *testing.T) {
	got := DCF(DCFInput{
		SDE:              10000,
		GrowthRatePct:    0,
		DiscountRatePct:  25,
		TerminalMultiple: 1,
		WorkingCapital:   1e9,
	})
	if got != 0 {
		t.Errorf("DCF() = %v, expected 0 when working capital exceeds present value", got)
	}
}
