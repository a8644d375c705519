// Package constants provides shared constants for the dealengine application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Valuation constants
const (
	// MultipleFloor is the minimum value any earnings multiple tier may take
	// after adjustments are applied.
	MultipleFloor = 0.5

	// AdjustmentTotalBound bounds the combined multiple adjustment on either side.
	AdjustmentTotalBound = 0.75

	// DCFHorizonYears is the fixed horizon for discounted cash flow estimates.
	DCFHorizonYears = 5

	// DCFCarryRateReduction is how much seller financing reduces the discount
	// rate, expressed as a decimal.
	DCFCarryRateReduction = 0.02

	// DCFMinDiscountRate is the floor for the discount rate after the seller
	// carry reduction, expressed as a decimal.
	DCFMinDiscountRate = 0.10
)

// Projection constants
const (
	// MinProjectionYears and MaxProjectionYears bound the forward projection horizon.
	MinProjectionYears = 1
	MaxProjectionYears = 10

	// MinGrowthRate is the lowest growth rate (as a decimal) the projection
	// accepts before compounding blows up.
	MinGrowthRate = -0.99

	// BreakevenScanYears is the upper bound on the linear scan for the year at
	// which projected earnings justify an asking price.
	BreakevenScanYears = 30
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the machine-readable output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default analysis configuration file name
	DefaultConfigFile = "deal.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)
