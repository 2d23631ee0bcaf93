package utils

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const notAvailable = "Estimate not available"

var budgetEstimatesINR = map[string]string{
	"$500-$1000":  "around INR 43,000 – INR 87,000",
	"$1000-$2000": "around INR 87,000 – INR 1,74,000",
	"$2000-$3000": "around INR 1,74,000 – INR 2,61,000",
	"$3000+":      "above INR 2,61,000",
	"Luxury":      "above INR 4,30,000 with premium accommodations",
}

var printer = message.NewPrinter(language.English)

// EstimateForBudgetLabel maps a budget range label to its INR estimate line.
// Unknown labels yield "Estimate not available".
func EstimateForBudgetLabel(label string) string {
	if v, ok := budgetEstimatesINR[label]; ok {
		return v
	}
	return notAvailable
}

// ConvertAmount converts a USD amount string to an "INR 8,300" style string.
// Unparseable input is returned unchanged.
func ConvertAmount(amount string, rate float64) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		return amount
	}
	converted := math.Trunc(v * rate)
	if math.IsNaN(converted) || math.IsInf(converted, 0) || math.Abs(converted) >= math.MaxInt64 {
		return amount
	}
	return "INR " + FormatThousand(int64(converted))
}

// FormatThousand renders n with comma thousands separators.
func FormatThousand(n int64) string {
	return printer.Sprintf("%d", n)
}
