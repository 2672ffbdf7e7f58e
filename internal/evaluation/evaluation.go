// Package evaluation holds the state of a vendor evaluation form and the
// command handlers that mutate and score it.
package evaluation

import (
	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/VendorEval/internal/classifier"
	"github.com/MikeSquared-Agency/VendorEval/internal/scoring"
)

// General is the identifying header of an evaluation.
type General struct {
	VendorName string `json:"vendor_name" yaml:"vendor_name"`
	Period     string `json:"period" yaml:"period"`
	Evaluator  string `json:"evaluator" yaml:"evaluator"`
	Date       string `json:"date" yaml:"date"`
}

// PriorityTimes pairs the agreed and observed response time for one priority.
// Both are free-form duration strings such as "2 horas".
type PriorityTimes struct {
	Agreed string `json:"agreed" yaml:"agreed"`
	Actual string `json:"actual" yaml:"actual"`
}

// SLAParams are the response-time parameters per priority.
type SLAParams struct {
	Critical PriorityTimes `json:"critical" yaml:"critical"`
	High     PriorityTimes `json:"high" yaml:"high"`
	Medium   PriorityTimes `json:"medium" yaml:"medium"`
	Low      PriorityTimes `json:"low" yaml:"low"`
}

// TicketStats are the ticket counters for the evaluated period.
type TicketStats struct {
	Opened   int `json:"opened" yaml:"opened"`
	Resolved int `json:"resolved" yaml:"resolved"`
	Reopened int `json:"reopened" yaml:"reopened"`
}

// Rates derives the informational resolution and reopen percentages.
func (t TicketStats) Rates() classifier.TicketRates {
	return classifier.ComputeTicketRates(t.Opened, t.Resolved, t.Reopened)
}

// CriterionState is one row of a section as the evaluator filled it in.
type CriterionState struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Kind          classifier.Kind `json:"kind,omitempty"`
	Weight        float64         `json:"weight"`
	Rating        scoring.Rating  `json:"rating,omitempty"`
	NotApplicable bool            `json:"not_applicable"`
	Observation   string          `json:"observation,omitempty"`
}

// SectionState is one section of the form.
type SectionState struct {
	ID       string           `json:"id"`
	Title    string           `json:"title"`
	Weight   float64          `json:"weight"`
	Criteria []CriterionState `json:"criteria"`
}

// KeyMetric is a free-text row of the key-metrics block.
type KeyMetric struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Observations is the closing free-text block.
type Observations struct {
	Strengths      string `json:"strengths" yaml:"strengths"`
	Improvements   string `json:"improvements" yaml:"improvements"`
	ActionPlan     string `json:"action_plan" yaml:"action_plan"`
	NextEvaluation string `json:"next_evaluation" yaml:"next_evaluation"`
}

// Evaluation is the complete form state.
type Evaluation struct {
	ID           uuid.UUID      `json:"id"`
	General      General        `json:"general"`
	Vendor       string         `json:"vendor,omitempty"`
	Service      string         `json:"service,omitempty"`
	SLA          SLAParams      `json:"sla"`
	Tickets      TicketStats    `json:"tickets"`
	Sections     []SectionState `json:"sections"`
	KeyMetrics   []KeyMetric    `json:"key_metrics"`
	Observations Observations   `json:"observations"`
}

// New creates an empty evaluation laid out by the template.
func New(t *Template) *Evaluation {
	e := &Evaluation{ID: uuid.New()}
	for _, st := range t.Sections {
		s := SectionState{ID: st.ID, Title: st.Title, Weight: st.Weight}
		for _, ct := range st.Criteria {
			s.Criteria = append(s.Criteria, CriterionState{
				ID:     ct.ID,
				Name:   ct.Name,
				Kind:   ct.Kind,
				Weight: ct.Weight,
			})
		}
		e.Sections = append(e.Sections, s)
	}
	for _, km := range t.KeyMetrics {
		e.KeyMetrics = append(e.KeyMetrics, KeyMetric{ID: km.ID, Label: km.Label})
	}
	return e
}

// Criterion returns a pointer to the criterion with the given ids.
func (e *Evaluation) Criterion(sectionID, criterionID string) (*CriterionState, bool) {
	for i := range e.Sections {
		if e.Sections[i].ID != sectionID {
			continue
		}
		for j := range e.Sections[i].Criteria {
			if e.Sections[i].Criteria[j].ID == criterionID {
				return &e.Sections[i].Criteria[j], true
			}
		}
	}
	return nil, false
}

// CriterionForKind returns the criterion bound to a calculator kind.
func (e *Evaluation) CriterionForKind(kind classifier.Kind) (*CriterionState, bool) {
	for i := range e.Sections {
		for j := range e.Sections[i].Criteria {
			if e.Sections[i].Criteria[j].Kind == kind {
				return &e.Sections[i].Criteria[j], true
			}
		}
	}
	return nil, false
}

// KeyMetric returns a pointer to the key metric with the given id.
func (e *Evaluation) KeyMetric(id string) (*KeyMetric, bool) {
	for i := range e.KeyMetrics {
		if e.KeyMetrics[i].ID == id {
			return &e.KeyMetrics[i], true
		}
	}
	return nil, false
}

// Snapshot copies the scoring-relevant state into engine input.
func (e *Evaluation) Snapshot() []scoring.Section {
	out := make([]scoring.Section, 0, len(e.Sections))
	for _, s := range e.Sections {
		ss := scoring.Section{ID: s.ID, Weight: s.Weight, Criteria: make([]scoring.Criterion, 0, len(s.Criteria))}
		for _, c := range s.Criteria {
			ss.Criteria = append(ss.Criteria, scoring.Criterion{
				ID:            c.ID,
				Weight:        c.Weight,
				Rating:        c.Rating,
				NotApplicable: c.NotApplicable,
			})
		}
		out = append(out, ss)
	}
	return out
}
