package classifier

import (
	"strconv"

	"github.com/MikeSquared-Agency/VendorEval/internal/scoring"
)

// TicketRates holds the informational ticket percentages. A nil rate means
// its denominator was zero.
type TicketRates struct {
	Resolution *float64 `json:"resolution_pct"`
	Reopen     *float64 `json:"reopen_pct"`
}

// ComputeTicketRates returns resolved/opened and reopened/resolved as percentages.
func ComputeTicketRates(opened, resolved, reopened int) TicketRates {
	var rates TicketRates
	if opened > 0 {
		v := float64(resolved) / float64(opened) * 100
		rates.Resolution = &v
	}
	if resolved > 0 {
		v := float64(reopened) / float64(resolved) * 100
		rates.Reopen = &v
	}
	return rates
}

// FormatRate renders a rate as "12.34%", or "N/A" when nil.
func FormatRate(v *float64) string {
	if v == nil {
		return scoring.NotApplicableText
	}
	return strconv.FormatFloat(*v, 'f', 2, 64) + "%"
}
