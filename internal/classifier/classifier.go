// Package classifier maps raw operational metrics onto suggested 1–5 ratings.
package classifier

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/MikeSquared-Agency/VendorEval/internal/scoring"
)

var (
	// ErrInvalidInput is returned when a metric fails its preconditions.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnknownKind is returned for a calculator kind outside the closed set.
	ErrUnknownKind = errors.New("unknown criterion kind")
)

// DateLayout is the accepted calendar date format for deliverable dates.
const DateLayout = "2006-01-02"

// Result is a suggested rating with the metric it was derived from.
type Result struct {
	Kind          Kind           `json:"kind"`
	Rating        scoring.Rating `json:"rating"`
	Value         float64        `json:"value"`
	Unit          string         `json:"unit"`
	Justification string         `json:"justification"`
}

func newResult(kind Kind, rating scoring.Rating, value float64, unit string) Result {
	return Result{
		Kind:          kind,
		Rating:        rating,
		Value:         value,
		Unit:          unit,
		Justification: Justification(kind, rating),
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// ResponseTime rates actual response time as a percentage of the agreed SLA.
//
//	>150% -> 1, >100% -> 2, >=90% -> 3, >=70% -> 4, else 5
func ResponseTime(agreedMinutes, actualMinutes float64) (Result, error) {
	if !(agreedMinutes > 0) {
		return Result{}, invalid("agreed response time must be greater than 0")
	}
	if !(actualMinutes >= 0) {
		return Result{}, invalid("actual response time must be 0 or greater")
	}
	pct := actualMinutes / agreedMinutes * 100

	var r scoring.Rating
	switch {
	case pct > 150:
		r = 1
	case pct > 100:
		r = 2
	case pct >= 90:
		r = 3
	case pct >= 70:
		r = 4
	default:
		r = 5
	}
	return newResult(KindResponseTime, r, pct, "%"), nil
}

// ProblemResolution rates the average resolution time against the agreed average.
//
//	>150% -> 1, >=120% -> 2, >=100% -> 3, >=80% -> 4, else 5
func ProblemResolution(agreedAvgMinutes, actualAvgMinutes float64) (Result, error) {
	if !(agreedAvgMinutes > 0) {
		return Result{}, invalid("agreed average resolution time must be greater than 0")
	}
	if !(actualAvgMinutes >= 0) {
		return Result{}, invalid("actual average resolution time must be 0 or greater")
	}
	pct := actualAvgMinutes / agreedAvgMinutes * 100

	var r scoring.Rating
	switch {
	case pct > 150:
		r = 1
	case pct >= 120:
		r = 2
	case pct >= 100:
		r = 3
	case pct >= 80:
		r = 4
	default:
		r = 5
	}
	return newResult(KindProblemResolution, r, pct, "%"), nil
}

// Uptime rates a service availability percentage.
//
//	<98 -> 1, <99 -> 2, <99.6 -> 3, <99.9 -> 4, else 5
func Uptime(pct float64) (Result, error) {
	if math.IsNaN(pct) || pct < 0 || pct > 100 {
		return Result{}, invalid("uptime must be between 0 and 100, got %v", pct)
	}

	var r scoring.Rating
	switch {
	case pct < 98:
		r = 1
	case pct < 99:
		r = 2
	case pct < 99.6:
		r = 3
	case pct < 99.9:
		r = 4
	default:
		r = 5
	}
	return newResult(KindUptime, r, pct, "%"), nil
}

// TicketResolution rates the share of opened tickets that were resolved.
//
//	<60 -> 1, <75 -> 2, <85 -> 3, <95 -> 4, else 5
func TicketResolution(opened, resolved int) (Result, error) {
	if opened <= 0 {
		return Result{}, invalid("opened tickets must be greater than 0")
	}
	if resolved < 0 {
		return Result{}, invalid("resolved tickets must be 0 or greater")
	}
	pct := float64(resolved) / float64(opened) * 100

	var r scoring.Rating
	switch {
	case pct < 60:
		r = 1
	case pct < 75:
		r = 2
	case pct < 85:
		r = 3
	case pct < 95:
		r = 4
	default:
		r = 5
	}
	return newResult(KindTicketsResolved, r, pct, "%"), nil
}

// ReopenRate rates the share of resolved tickets that were reopened.
//
//	>30 -> 1, >20 -> 2, >10 -> 3, >5 -> 4, else 5
func ReopenRate(resolved, reopened int) (Result, error) {
	if resolved <= 0 {
		return Result{}, invalid("resolved tickets must be greater than 0")
	}
	if reopened < 0 {
		return Result{}, invalid("reopened tickets must be 0 or greater")
	}
	pct := float64(reopened) / float64(resolved) * 100

	var r scoring.Rating
	switch {
	case pct > 30:
		r = 1
	case pct > 20:
		r = 2
	case pct > 10:
		r = 3
	case pct > 5:
		r = 4
	default:
		r = 5
	}
	return newResult(KindReopenRate, r, pct, "%"), nil
}

// DeliverableLateness rates how many days after the committed date a
// deliverable arrived. Dates use DateLayout or RFC 3339.
func DeliverableLateness(committed, actual string) (Result, error) {
	c, err := parseDate(committed)
	if err != nil {
		return Result{}, invalid("committed date: %v", err)
	}
	a, err := parseDate(actual)
	if err != nil {
		return Result{}, invalid("actual date: %v", err)
	}
	return DeliverableLatenessDates(c, a), nil
}

// DeliverableLatenessDates is DeliverableLateness on parsed dates. The
// difference is rounded up to whole days; positive means late.
//
//	>10 -> 1, >5 -> 2, >2 -> 3, >0 -> 4, else 5
func DeliverableLatenessDates(committed, actual time.Time) Result {
	days := int(math.Ceil(actual.Sub(committed).Hours() / 24))

	var r scoring.Rating
	switch {
	case days > 10:
		r = 1
	case days > 5:
		r = 2
	case days > 2:
		r = 3
	case days > 0:
		r = 4
	default:
		r = 5
	}
	return newResult(KindDeliverables, r, float64(days), "days")
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("date is required")
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable date %q, use YYYY-MM-DD", s)
	}
	return t, nil
}
