package scoring

import (
	"math"
	"strconv"
)

// NotApplicableText is rendered wherever a value is N/A.
const NotApplicableText = "N/A"

// FormatScore renders a weighted value with three decimals.
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

// FormatWeight renders a fractional weight as a percentage, e.g. 0.07 -> "7%".
func FormatWeight(w float64) string {
	pct := math.Round(w*10000) / 100
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

// formatWeighted is "N/A" for excluded rows, "0" for unrated rows, the
// three-decimal weighted value otherwise.
func formatWeighted(cr CriterionResult) string {
	switch {
	case cr.NotApplicable:
		return NotApplicableText
	case !cr.Rating.Valid():
		return "0"
	default:
		return FormatScore(cr.Weighted)
	}
}
