package classifier

import "fmt"

// Kind identifies a criterion that has a metric calculator.
type Kind string

const (
	KindResponseTime      Kind = "response-time"
	KindProblemResolution Kind = "problem-resolution"
	KindUptime            Kind = "uptime"
	KindTicketsResolved   Kind = "tickets-resolved"
	KindReopenRate        Kind = "reopen-rate"
	KindDeliverables      Kind = "deliverables"
)

// Kinds returns every calculator kind in display order.
func Kinds() []Kind {
	return []Kind{
		KindResponseTime,
		KindProblemResolution,
		KindUptime,
		KindTicketsResolved,
		KindReopenRate,
		KindDeliverables,
	}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// ParseKind validates a kind received from outside the process.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

// Input carries the raw metrics for any calculator kind. Only the fields
// relevant to the chosen kind are read.
type Input struct {
	AgreedMinutes float64 `json:"agreed_minutes,omitempty" yaml:"agreed_minutes,omitempty"`
	ActualMinutes float64 `json:"actual_minutes,omitempty" yaml:"actual_minutes,omitempty"`
	UptimePct     float64 `json:"uptime_pct,omitempty" yaml:"uptime_pct,omitempty"`
	Opened        int     `json:"opened,omitempty" yaml:"opened,omitempty"`
	Resolved      int     `json:"resolved,omitempty" yaml:"resolved,omitempty"`
	Reopened      int     `json:"reopened,omitempty" yaml:"reopened,omitempty"`
	CommittedDate string  `json:"committed_date,omitempty" yaml:"committed_date,omitempty"`
	ActualDate    string  `json:"actual_date,omitempty" yaml:"actual_date,omitempty"`
}

// Classify dispatches to the calculator for kind.
func Classify(kind Kind, in Input) (Result, error) {
	switch kind {
	case KindResponseTime:
		return ResponseTime(in.AgreedMinutes, in.ActualMinutes)
	case KindProblemResolution:
		return ProblemResolution(in.AgreedMinutes, in.ActualMinutes)
	case KindUptime:
		return Uptime(in.UptimePct)
	case KindTicketsResolved:
		return TicketResolution(in.Opened, in.Resolved)
	case KindReopenRate:
		return ReopenRate(in.Resolved, in.Reopened)
	case KindDeliverables:
		return DeliverableLateness(in.CommittedDate, in.ActualDate)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
