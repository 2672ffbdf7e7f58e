package scoring

import (
	"log/slog"
)

// Criterion is one weighted, rated row of a section.
type Criterion struct {
	ID            string  `json:"id"`
	Weight        float64 `json:"weight"`
	Rating        Rating  `json:"rating,omitempty"`
	NotApplicable bool    `json:"not_applicable"`
}

// Section groups criteria under a declared share of the global total.
type Section struct {
	ID       string      `json:"id"`
	Weight   float64     `json:"weight"`
	Criteria []Criterion `json:"criteria"`
}

// CriterionResult captures one criterion's contribution to its section subtotal.
type CriterionResult struct {
	ID             string  `json:"id"`
	Weight         float64 `json:"weight"`
	AdjustedWeight float64 `json:"adjusted_weight"`
	Rating         Rating  `json:"rating,omitempty"`
	NotApplicable  bool    `json:"not_applicable"`
	Weighted       float64 `json:"weighted"`
	Display        string  `json:"display"`
}

// SectionResult is the scored state of a single section.
type SectionResult struct {
	ID              string            `json:"id"`
	Weight          float64           `json:"weight"`
	WeightTotal     float64           `json:"weight_total"`
	WeightNA        float64           `json:"weight_na"`
	Factor          float64           `json:"factor"`
	Subtotal        float64           `json:"subtotal"`
	Normalized      float64           `json:"normalized"`
	NotApplicable   bool              `json:"not_applicable"`
	Grade           Grade             `json:"grade"`
	SubtotalDisplay string            `json:"subtotal_display"`
	Criteria        []CriterionResult `json:"criteria"`
}

// Result is the complete scoring output for an evaluation.
type Result struct {
	Sections      []SectionResult `json:"sections"`
	TotalWeighted float64         `json:"total_weighted"`
	Normalized    float64         `json:"normalized"`
	Grade         Grade           `json:"grade"`
	TotalDisplay  string          `json:"total_display"`
}

// Section returns the result for the section with the given id.
func (r Result) Section(id string) (SectionResult, bool) {
	for _, s := range r.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return SectionResult{}, false
}

// Engine computes weighted section and global scores with N/A redistribution.
// It holds no evaluation state; every call is a pure function of its input.
type Engine struct {
	logger *slog.Logger
}

// NewEngine creates an Engine.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// Score computes every section independently and aggregates the global result.
func (e *Engine) Score(sections []Section) Result {
	result := Result{Sections: make([]SectionResult, 0, len(sections))}

	for _, s := range sections {
		sr := ScoreSection(s)
		if sr.NotApplicable {
			e.logger.Debug("section not applicable", "section", s.ID, "weight_na", sr.WeightNA)
		} else {
			// N/A sections are omitted from the sum, not added as zero.
			result.TotalWeighted += sr.Subtotal
		}
		result.Sections = append(result.Sections, sr)
	}

	result.Normalized = NormalizeGlobal(result.TotalWeighted)
	result.Grade = GradeFor(result.Normalized)
	result.TotalDisplay = FormatScore(result.TotalWeighted)
	return result
}

// ScoreSection applies the adjustment factor to every applicable criterion
// and grades the subtotal against the section's declared weight.
func ScoreSection(s Section) SectionResult {
	var weightTotal, weightNA float64
	for _, c := range s.Criteria {
		weightTotal += c.Weight
		if c.NotApplicable {
			weightNA += c.Weight
		}
	}
	weightApplicable := weightTotal - weightNA
	factor := AdjustmentFactor(weightTotal, weightNA)

	sr := SectionResult{
		ID:          s.ID,
		Weight:      s.Weight,
		WeightTotal: weightTotal,
		WeightNA:    weightNA,
		Factor:      factor,
		Criteria:    make([]CriterionResult, 0, len(s.Criteria)),
	}

	for _, c := range s.Criteria {
		cr := CriterionResult{
			ID:            c.ID,
			Weight:        c.Weight,
			Rating:        c.Rating,
			NotApplicable: c.NotApplicable,
		}
		switch {
		case c.NotApplicable:
			cr.Rating = RatingNone
		case c.Rating.Valid():
			cr.AdjustedWeight = c.Weight * factor
			cr.Weighted = float64(c.Rating) * cr.AdjustedWeight
		default:
			cr.AdjustedWeight = c.Weight * factor
		}
		cr.Display = formatWeighted(cr)
		sr.Subtotal += cr.Weighted
		sr.Criteria = append(sr.Criteria, cr)
	}

	if weightApplicable == 0 && weightTotal > 0 {
		sr.NotApplicable = true
		sr.Subtotal = 0
		sr.Grade = GradeNotApplicable
		sr.SubtotalDisplay = NotApplicableText
		return sr
	}

	sr.Normalized = NormalizeSection(sr.Subtotal, s.Weight)
	sr.Grade = GradeFor(sr.Normalized)
	sr.SubtotalDisplay = FormatScore(sr.Subtotal)
	return sr
}

// AdjustmentFactor returns the multiplier that spreads the N/A weight of a
// section proportionally over its applicable criteria.
//
//	factor = total / (total - na)  when some but not all weight is N/A
//	factor = 0                     when every criterion is N/A
//	factor = 1                     when nothing is N/A
func AdjustmentFactor(weightTotal, weightNA float64) float64 {
	applicable := weightTotal - weightNA
	switch {
	case weightNA > 0 && applicable > 0:
		return weightTotal / applicable
	case weightNA > 0 && applicable == 0:
		return 0
	default:
		return 1
	}
}

// NormalizeSection maps a subtotal from [w*1, w*5] onto [0,1] for a section of weight w.
func NormalizeSection(subtotal, sectionWeight float64) float64 {
	return (subtotal - sectionWeight) / (sectionWeight * 4)
}

// NormalizeGlobal maps the global total from [1,5] onto [0,1].
func NormalizeGlobal(total float64) float64 {
	return (total - 1) / 4
}
