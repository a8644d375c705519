package projection

import (
	"math"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

func TestProjectBaseYear(t *testing.T) {
	input := Input{
		BaseRevenue: 500000,
		BaseSDE:     150000,
		GrowthRate:  0.08,
		Years:       5,
		Multiple:    3.0,
	}

	rows := Project(input)
	if len(rows) != 6 {
		t.Fatalf("expected 6 rows (years 0..5), got %d", len(rows))
	}

	// Year zero reproduces the base figures exactly.
	if rows[0].Revenue != 500000 {
		t.Errorf("Revenue_0 = %v, expected 500000", rows[0].Revenue)
	}
	if rows[0].SDE != 150000 {
		t.Errorf("SDE_0 = %v, expected 150000", rows[0].SDE)
	}
	if rows[0].ImpliedValue != 450000 {
		t.Errorf("Value_0 = %v, expected 450000", rows[0].ImpliedValue)
	}
}

func TestProjectCompounding(t *testing.T) {
	input := Input{
		BaseRevenue: 100000,
		BaseSDE:     40000,
		GrowthRate:  0.10,
		Years:       3,
		Multiple:    2.5,
	}

	rows := Project(input)

	expenses := 60000.0
	for _, row := range rows {
		expectedRevenue := 100000 * math.Pow(1.10, float64(row.Year))
		if math.Abs(row.Revenue-expectedRevenue) > 0.01 {
			t.Errorf("Revenue_%d = %v, expected %v", row.Year, row.Revenue, expectedRevenue)
		}
		if row.Expenses != expenses {
			t.Errorf("Expenses_%d = %v, expected flat %v", row.Year, row.Expenses, expenses)
		}
		expectedSDE := math.Max(0, expectedRevenue-expenses)
		if math.Abs(row.SDE-expectedSDE) > 0.01 {
			t.Errorf("SDE_%d = %v, expected %v", row.Year, row.SDE, expectedSDE)
		}
		if math.Abs(row.ImpliedValue-expectedSDE*2.5) > 0.01 {
			t.Errorf("Value_%d = %v, expected %v", row.Year, row.ImpliedValue, expectedSDE*2.5)
		}
	}
}

func TestProjectExplicitExpenses(t *testing.T) {
	input := Input{
		BaseRevenue:  200000,
		BaseSDE:      80000,
		BaseExpenses: floatPtr(150000),
		GrowthRate:   0.05,
		Years:        2,
		Multiple:     3,
	}

	rows := Project(input)
	if rows[0].Expenses != 150000 {
		t.Errorf("explicit expenses ignored: got %v", rows[0].Expenses)
	}
	if rows[0].SDE != 50000 {
		t.Errorf("SDE_0 = %v, expected 50000 from explicit expenses", rows[0].SDE)
	}
}

func TestProjectClamps(t *testing.T) {
	tests := []struct {
		name         string
		input        Input
		expectedRows int
	}{
		{
			name:         "Horizon above maximum clamps to 10",
			input:        Input{BaseRevenue: 100000, BaseSDE: 30000, GrowthRate: 0.05, Years: 25, Multiple: 3},
			expectedRows: 11,
		},
		{
			name:         "Horizon below minimum clamps to 1",
			input:        Input{BaseRevenue: 100000, BaseSDE: 30000, GrowthRate: 0.05, Years: 0, Multiple: 3},
			expectedRows: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := Project(tt.input)
			if len(rows) != tt.expectedRows {
				t.Errorf("Project() returned %d rows, expected %d", len(rows), tt.expectedRows)
			}
		})
	}
}

func TestProjectSevereDeclineFloorsSDE(t *testing.T) {
	input := Input{
		BaseRevenue: 100000,
		BaseSDE:     20000,
		GrowthRate:  -0.50,
		Years:       5,
		Multiple:    3,
	}

	rows := Project(input)
	last := rows[len(rows)-1]
	if last.SDE != 0 {
		t.Errorf("SDE should floor at 0 when revenue falls below expenses, got %v", last.SDE)
	}
	if last.ImpliedValue != 0 {
		t.Errorf("implied value should be 0 when SDE floors, got %v", last.ImpliedValue)
	}
}

func TestYearsToJustifyPrice(t *testing.T) {
	base := Input{
		BaseRevenue: 500000,
		BaseSDE:     150000,
		GrowthRate:  0.10,
		Years:       5,
		Multiple:    3.0,
	}

	tests := []struct {
		name        string
		input       Input
		askingPrice float64
		expected    *int
	}{
		{
			name:        "Already justified at year zero",
			input:       base,
			askingPrice: 450000,
			expected:    intPtr(0),
		},
		{
			name:        "Reached in the first growth year",
			input:       base,
			askingPrice: 600000,
			expected:    intPtr(1),
		},
		{
			name:        "Non-positive growth returns nil",
			input:       Input{BaseRevenue: 500000, BaseSDE: 150000, GrowthRate: 0, Multiple: 3},
			askingPrice: 600000,
			expected:    nil,
		},
		{
			name:        "No positive earnings base returns nil",
			input:       Input{BaseRevenue: 0, BaseSDE: 0, GrowthRate: 0.10, Multiple: 3},
			askingPrice: 100000,
			expected:    nil,
		},
		{
			name:        "Zero multiple returns nil",
			input:       Input{BaseRevenue: 500000, BaseSDE: 150000, GrowthRate: 0.10, Multiple: 0},
			askingPrice: 100000,
			expected:    nil,
		},
		{
			name:        "Unreachable within scan window returns nil",
			input:       Input{BaseRevenue: 100000, BaseSDE: 10000, GrowthRate: 0.0001, Multiple: 2},
			askingPrice: 100000000,
			expected:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := YearsToJustifyPrice(tt.input, tt.askingPrice)
			switch {
			case got == nil && tt.expected != nil:
				t.Errorf("YearsToJustifyPrice() = nil, expected %d", *tt.expected)
			case got != nil && tt.expected == nil:
				t.Errorf("YearsToJustifyPrice() = %d, expected nil", *got)
			case got != nil && tt.expected != nil && *got != *tt.expected:
				t.Errorf("YearsToJustifyPrice() = %d, expected %d", *got, *tt.expected)
			}
		})
	}
}

func intPtr(v int) *int { return &v }
