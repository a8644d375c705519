// Package format provides display-only formatting helpers. Nothing here feeds
// back into computed results.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// USD returns a dollar string with thousands separators and no decimal places
// (e.g., "-$1,234"). Amounts are rounded to the nearest dollar.
func USD(amount float64) string {
	rounded := int64(math.Round(math.Abs(amount)))
	formatted := printer.Sprintf("$%d", rounded)
	if amount < -0.5 {
		return "-" + formatted
	}
	return formatted
}
