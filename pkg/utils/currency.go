package utils

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var vnPrinter = message.NewPrinter(language.Vietnamese)

// FormatCurrency renders an amount with Vietnamese digit grouping. VND has no
// minor unit and is shown with the dong sign; other codes keep two decimals.
// A nil amount renders as the empty string.
func FormatCurrency(value *float64, currencyCode string) string {
	if value == nil {
		return ""
	}
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if code == "" || code == "VND" {
		return vnPrinter.Sprintf("%d ₫", int64(math.Round(*value)))
	}
	return vnPrinter.Sprintf("%.2f %s", *value, code)
}
