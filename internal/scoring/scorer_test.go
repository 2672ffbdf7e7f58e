package scoring

import (
	"io"
	"log/slog"
	"math"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

// uniformSections builds six sections matching the default template weights,
// every criterion rated r.
func uniformSections(r Rating) []Section {
	layout := []struct {
		id      string
		weights []float64
	}{
		{"service_quality", []float64{0.08, 0.07, 0.06, 0.04}},
		{"ticket_management", []float64{0.06, 0.04, 0.04, 0.06}},
		{"technical_capability", []float64{0.05, 0.04, 0.03, 0.03}},
		{"commercial", []float64{0.05, 0.04, 0.03, 0.03}},
		{"security_compliance", []float64{0.05, 0.04, 0.03, 0.03}},
		{"projects_deliverables", []float64{0.04, 0.03, 0.03}},
	}
	var out []Section
	for _, l := range layout {
		s := Section{ID: l.id}
		for i, w := range l.weights {
			s.Weight += w
			s.Criteria = append(s.Criteria, Criterion{ID: l.id + "_" + string(rune('a'+i)), Weight: w, Rating: r})
		}
		out = append(out, s)
	}
	return out
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		in   float64
		want Grade
	}{
		{-0.5, GradeDeficient},
		{0, GradeDeficient},
		{0.1999, GradeDeficient},
		{0.2, GradeFair},
		{0.3999, GradeFair},
		{0.4, GradeAcceptable},
		{0.6, GradeGood},
		{0.7999, GradeGood},
		{0.8, GradeExcellent},
		{1.0, GradeExcellent},
		{1.7, GradeExcellent},
	}
	for _, tt := range tests {
		if got := GradeFor(tt.in); got != tt.want {
			t.Errorf("GradeFor(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestGradeForMonotonic(t *testing.T) {
	order := map[Grade]int{GradeDeficient: 0, GradeFair: 1, GradeAcceptable: 2, GradeGood: 3, GradeExcellent: 4}
	prev := -1
	for v := -0.2; v <= 1.2; v += 0.01 {
		g := order[GradeFor(v)]
		if g < prev {
			t.Fatalf("grade decreased at %f", v)
		}
		prev = g
	}
}

func TestClampRating(t *testing.T) {
	tests := []struct {
		in   int
		want Rating
	}{
		{-3, 1}, {0, 1}, {1, 1}, {3, 3}, {5, 5}, {9, 5},
	}
	for _, tt := range tests {
		if got := ClampRating(tt.in); got != tt.want {
			t.Errorf("ClampRating(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestAdjustmentFactor(t *testing.T) {
	tests := []struct {
		name       string
		total, na  float64
		wantFactor float64
	}{
		{"nothing na", 0.25, 0, 1},
		{"partial na", 0.25, 0.05, 0.25 / 0.20},
		{"all na", 0.25, 0.25, 0},
		{"empty section", 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdjustmentFactor(tt.total, tt.na); !approx(got, tt.wantFactor) {
				t.Errorf("got %f, want %f", got, tt.wantFactor)
			}
		})
	}
}

func TestScoreSectionWeightConservation(t *testing.T) {
	cases := [][]bool{
		{true, false, false, false},
		{false, true, true, false},
		{true, true, true, false},
		{false, false, false, true},
	}
	weights := []float64{0.08, 0.07, 0.06, 0.04}
	for _, naFlags := range cases {
		s := Section{ID: "s", Weight: 0.25}
		for i, w := range weights {
			s.Criteria = append(s.Criteria, Criterion{ID: string(rune('a' + i)), Weight: w, Rating: 4, NotApplicable: naFlags[i]})
		}
		sr := ScoreSection(s)

		var adjusted float64
		for _, cr := range sr.Criteria {
			if !cr.NotApplicable {
				adjusted += cr.AdjustedWeight
			}
		}
		if !approx(adjusted, sr.WeightTotal) {
			t.Errorf("na=%v: adjusted weights sum to %f, want %f", naFlags, adjusted, sr.WeightTotal)
		}
		// Uniform rating survives redistribution unchanged.
		if !approx(sr.Subtotal, 4*0.25) {
			t.Errorf("na=%v: subtotal %f, want %f", naFlags, sr.Subtotal, 1.0)
		}
	}
}

func TestScoreSectionAllNotApplicable(t *testing.T) {
	s := Section{ID: "s", Weight: 0.10, Criteria: []Criterion{
		{ID: "a", Weight: 0.04, NotApplicable: true},
		{ID: "b", Weight: 0.03, NotApplicable: true},
		{ID: "c", Weight: 0.03, NotApplicable: true},
	}}
	sr := ScoreSection(s)
	if !sr.NotApplicable {
		t.Fatal("expected section to be not applicable")
	}
	if sr.Grade != GradeNotApplicable {
		t.Errorf("expected grade N/A, got %s", sr.Grade)
	}
	if sr.SubtotalDisplay != "N/A" {
		t.Errorf("expected subtotal display N/A, got %q", sr.SubtotalDisplay)
	}
	if sr.Factor != 0 {
		t.Errorf("expected factor 0, got %f", sr.Factor)
	}
	for _, cr := range sr.Criteria {
		if cr.Display != "N/A" {
			t.Errorf("criterion %s: expected N/A display, got %q", cr.ID, cr.Display)
		}
	}
}

func TestScoreSectionUnratedContributesZero(t *testing.T) {
	s := Section{ID: "s", Weight: 0.10, Criteria: []Criterion{
		{ID: "a", Weight: 0.04, Rating: 5},
		{ID: "b", Weight: 0.03},
		{ID: "c", Weight: 0.03, Rating: 5},
	}}
	sr := ScoreSection(s)
	if !approx(sr.Subtotal, 5*0.07) {
		t.Errorf("subtotal = %f, want %f", sr.Subtotal, 0.35)
	}
	if sr.Criteria[1].Display != "0" {
		t.Errorf("unrated display = %q, want 0", sr.Criteria[1].Display)
	}
	if sr.Criteria[0].Display != "0.200" {
		t.Errorf("rated display = %q, want 0.200", sr.Criteria[0].Display)
	}
	// (0.35 - 0.10) / 0.40 = 0.625
	if !approx(sr.Normalized, 0.625) {
		t.Errorf("normalized = %f, want 0.625", sr.Normalized)
	}
	if sr.Grade != GradeGood {
		t.Errorf("grade = %s, want %s", sr.Grade, GradeGood)
	}
}

func TestScoreSectionNotApplicableIgnoresRating(t *testing.T) {
	s := Section{ID: "s", Weight: 0.10, Criteria: []Criterion{
		{ID: "a", Weight: 0.05, Rating: 1, NotApplicable: true},
		{ID: "b", Weight: 0.05, Rating: 5},
	}}
	sr := ScoreSection(s)
	if !approx(sr.Subtotal, 0.5) {
		t.Errorf("subtotal = %f, want 0.5", sr.Subtotal)
	}
	if sr.Criteria[0].Rating != RatingNone {
		t.Errorf("expected N/A criterion rating to be dropped, got %d", sr.Criteria[0].Rating)
	}
	if sr.Grade != GradeExcellent {
		t.Errorf("grade = %s, want %s", sr.Grade, GradeExcellent)
	}
}

func TestEngineUniformRatings(t *testing.T) {
	e := NewEngine(discardLogger())

	tests := []struct {
		rating    Rating
		wantTotal float64
		wantGrade Grade
	}{
		{1, 1.0, GradeDeficient},
		{2, 2.0, GradeFair},
		{3, 3.0, GradeAcceptable},
		{4, 4.0, GradeGood},
		{5, 5.0, GradeExcellent},
	}
	for _, tt := range tests {
		r := e.Score(uniformSections(tt.rating))
		if math.Abs(r.TotalWeighted-tt.wantTotal) > 1e-6 {
			t.Errorf("rating %d: total = %f, want %f", tt.rating, r.TotalWeighted, tt.wantTotal)
		}
		if r.Grade != tt.wantGrade {
			t.Errorf("rating %d: grade = %s, want %s", tt.rating, r.Grade, tt.wantGrade)
		}
	}
}

func TestEngineAllThreesIsAcceptable(t *testing.T) {
	r := NewEngine(discardLogger()).Score(uniformSections(3))
	if math.Abs(r.Normalized-0.5) > 1e-6 {
		t.Errorf("normalized = %f, want 0.5", r.Normalized)
	}
	if r.TotalDisplay != "3.000" {
		t.Errorf("total display = %q, want 3.000", r.TotalDisplay)
	}
	for _, sr := range r.Sections {
		if sr.Grade != GradeAcceptable {
			t.Errorf("section %s: grade = %s, want %s", sr.ID, sr.Grade, GradeAcceptable)
		}
	}
}

func TestEngineNotApplicableSectionOmitted(t *testing.T) {
	sections := uniformSections(5)
	last := &sections[len(sections)-1]
	for i := range last.Criteria {
		last.Criteria[i].NotApplicable = true
	}

	r := NewEngine(discardLogger()).Score(sections)

	// 5 * (1.0 - 0.10)
	if math.Abs(r.TotalWeighted-4.5) > 1e-6 {
		t.Errorf("total = %f, want 4.5", r.TotalWeighted)
	}
	sr, ok := r.Section("projects_deliverables")
	if !ok {
		t.Fatal("missing section result")
	}
	if !sr.NotApplicable {
		t.Error("expected section to be N/A")
	}
	if len(r.Sections) != 6 {
		t.Errorf("expected 6 section results, got %d", len(r.Sections))
	}
}

func TestEngineEmptyForm(t *testing.T) {
	r := NewEngine(discardLogger()).Score(uniformSections(RatingNone))
	if r.TotalWeighted != 0 {
		t.Errorf("total = %f, want 0", r.TotalWeighted)
	}
	// (0 - 1) / 4 is below the scale and is not clamped.
	if r.Normalized != -0.25 {
		t.Errorf("normalized = %f, want -0.25", r.Normalized)
	}
	if r.Grade != GradeDeficient {
		t.Errorf("grade = %s, want %s", r.Grade, GradeDeficient)
	}
}

func TestDefaultLayoutWeightsValid(t *testing.T) {
	if err := ValidateWeights(uniformSections(3)); err != nil {
		t.Errorf("weights invalid: %v", err)
	}
}

func TestValidateWeights(t *testing.T) {
	t.Run("section sum off", func(t *testing.T) {
		s := uniformSections(3)
		s[0].Weight = 0.30
		if err := ValidateWeights(s); err == nil {
			t.Error("expected error for criteria not summing to section weight")
		}
	})

	t.Run("global sum off", func(t *testing.T) {
		s := uniformSections(3)[:5]
		if err := ValidateWeights(s); err == nil {
			t.Error("expected error for section weights not summing to 1.0")
		}
	})

	t.Run("non-positive weight", func(t *testing.T) {
		s := uniformSections(3)
		s[1].Criteria[0].Weight = 0
		if err := ValidateWeights(s); err == nil {
			t.Error("expected error for zero weight")
		}
	})
}

func TestFormatWeight(t *testing.T) {
	tests := map[float64]string{
		0.07:  "7%",
		0.25:  "25%",
		0.1:   "10%",
		0.035: "3.5%",
	}
	for in, want := range tests {
		if got := FormatWeight(in); got != want {
			t.Errorf("FormatWeight(%v) = %q, want %q", in, got, want)
		}
	}
}
