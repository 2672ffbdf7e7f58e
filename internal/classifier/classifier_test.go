package classifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/VendorEval/internal/scoring"
)

func TestResponseTime(t *testing.T) {
	tests := []struct {
		name           string
		agreed, actual float64
		want           scoring.Rating
	}{
		{"exactly on sla", 100, 100, 3},
		{"slightly under sla", 100, 95, 3},
		{"90 percent", 100, 90, 3},
		{"89 percent", 100, 89, 4},
		{"70 percent", 100, 70, 4},
		{"fast", 100, 50, 5},
		{"zero actual", 100, 0, 5},
		{"150 percent", 100, 150, 2},
		{"over 150 percent", 100, 151, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ResponseTime(tt.agreed, tt.actual)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Rating)
			assert.Equal(t, KindResponseTime, r.Kind)
			assert.Equal(t, Justification(KindResponseTime, tt.want), r.Justification)
		})
	}
}

func TestResponseTimePercentage(t *testing.T) {
	r, err := ResponseTime(100, 100)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, r.Value, 1e-9)
}

func TestResponseTimeInvalid(t *testing.T) {
	_, err := ResponseTime(0, 10)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ResponseTime(-5, 10)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ResponseTime(10, -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestProblemResolution(t *testing.T) {
	tests := []struct {
		actual float64
		want   scoring.Rating
	}{
		{160, 1}, {150, 2}, {120, 2}, {119, 3}, {100, 3}, {99, 4}, {80, 4}, {79, 5},
	}
	for _, tt := range tests {
		r, err := ProblemResolution(100, tt.actual)
		require.NoError(t, err)
		assert.Equal(t, tt.want, r.Rating, "actual=%v", tt.actual)
	}

	_, err := ProblemResolution(0, 10)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUptime(t *testing.T) {
	tests := []struct {
		pct  float64
		want scoring.Rating
	}{
		{0, 1},
		{97.99, 1},
		{98.0, 2},
		{98.9, 2},
		{99.0, 3},
		{99.59, 3},
		{99.6, 4},
		{99.89, 4},
		{99.9, 5},
		{99.95, 5},
		{100, 5},
	}
	for _, tt := range tests {
		r, err := Uptime(tt.pct)
		require.NoError(t, err)
		assert.Equal(t, tt.want, r.Rating, "pct=%v", tt.pct)
	}
}

func TestUptimeInvalid(t *testing.T) {
	for _, pct := range []float64{-0.1, 100.01, 250} {
		_, err := Uptime(pct)
		assert.ErrorIs(t, err, ErrInvalidInput, "pct=%v", pct)
	}
}

func TestTicketResolution(t *testing.T) {
	tests := []struct {
		opened, resolved int
		want             scoring.Rating
	}{
		{10, 9, 4},
		{10, 10, 5},
		{100, 95, 5},
		{100, 85, 4},
		{100, 84, 3},
		{100, 75, 3},
		{100, 74, 2},
		{100, 60, 2},
		{100, 59, 1},
		{10, 0, 1},
	}
	for _, tt := range tests {
		r, err := TicketResolution(tt.opened, tt.resolved)
		require.NoError(t, err)
		assert.Equal(t, tt.want, r.Rating, "opened=%d resolved=%d", tt.opened, tt.resolved)
	}

	r, err := TicketResolution(10, 9)
	require.NoError(t, err)
	assert.InDelta(t, 90.0, r.Value, 1e-9)
}

func TestTicketResolutionInvalid(t *testing.T) {
	_, err := TicketResolution(0, 5)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = TicketResolution(5, -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestReopenRate(t *testing.T) {
	tests := []struct {
		reopened int
		want     scoring.Rating
	}{
		{31, 1}, {30, 2}, {21, 2}, {20, 3}, {11, 3}, {10, 4}, {6, 4}, {5, 5}, {0, 5},
	}
	for _, tt := range tests {
		r, err := ReopenRate(100, tt.reopened)
		require.NoError(t, err)
		assert.Equal(t, tt.want, r.Rating, "reopened=%d", tt.reopened)
	}

	_, err := ReopenRate(0, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeliverableLateness(t *testing.T) {
	tests := []struct {
		committed, actual string
		wantDays          float64
		want              scoring.Rating
	}{
		{"2024-01-01", "2024-01-01", 0, 5},
		{"2024-01-10", "2024-01-01", -9, 5},
		{"2024-01-01", "2024-01-02", 1, 4},
		{"2024-01-01", "2024-01-03", 2, 4},
		{"2024-01-01", "2024-01-04", 3, 3},
		{"2024-01-01", "2024-01-06", 5, 3},
		{"2024-01-01", "2024-01-07", 6, 2},
		{"2024-01-01", "2024-01-11", 10, 2},
		{"2024-01-01", "2024-01-12", 11, 1},
		{"2024-02-28", "2024-03-01", 2, 4},
	}
	for _, tt := range tests {
		r, err := DeliverableLateness(tt.committed, tt.actual)
		require.NoError(t, err)
		assert.Equal(t, tt.wantDays, r.Value, "%s -> %s", tt.committed, tt.actual)
		assert.Equal(t, tt.want, r.Rating, "%s -> %s", tt.committed, tt.actual)
	}
}

func TestDeliverableLatenessRoundsPartialDaysUp(t *testing.T) {
	committed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := DeliverableLatenessDates(committed, committed.Add(36*time.Hour))
	assert.Equal(t, 2.0, r.Value)
	assert.Equal(t, scoring.Rating(4), r.Rating)
}

func TestDeliverableLatenessInvalid(t *testing.T) {
	_, err := DeliverableLateness("", "2024-01-01")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = DeliverableLateness("2024-01-01", "01/02/2024")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestClassifyDispatch(t *testing.T) {
	r, err := Classify(KindUptime, Input{UptimePct: 99.95})
	require.NoError(t, err)
	assert.Equal(t, scoring.Rating(5), r.Rating)

	r, err = Classify(KindTicketsResolved, Input{Opened: 10, Resolved: 9})
	require.NoError(t, err)
	assert.Equal(t, scoring.Rating(4), r.Rating)

	r, err = Classify(KindDeliverables, Input{CommittedDate: "2024-01-01", ActualDate: "2024-01-01"})
	require.NoError(t, err)
	assert.Equal(t, scoring.Rating(5), r.Rating)

	_, err = Classify(Kind("cost"), Input{})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := ParseKind("tiempo")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestJustification(t *testing.T) {
	for _, k := range Kinds() {
		for r := scoring.RatingMin; r <= scoring.RatingMax; r++ {
			assert.NotEqual(t, JustificationUnavailable, Justification(k, r), "kind=%s rating=%d", k, r)
		}
	}
	assert.Equal(t, "Disponibilidad superior al 99.8%", Justification(KindUptime, 5))
	assert.Equal(t, JustificationUnavailable, Justification(KindUptime, 0))
	assert.Equal(t, JustificationUnavailable, Justification(KindUptime, 6))
	assert.Equal(t, JustificationUnavailable, Justification(Kind("cost"), 3))
}

func TestParseDurationMinutes(t *testing.T) {
	tests := map[string]float64{
		"2.0 horas":  120,
		"1 hora":     60,
		"1.5 hours":  90,
		"45 mins":    45,
		"30 minutos": 30,
		"2 días":     2880,
		"1 dia":      1440,
		"  3 HORAS ": 180,
		"0.5 horas":  30,
	}
	for in, want := range tests {
		assert.InDelta(t, want, ParseDurationMinutes(in), 1e-9, "input %q", in)
	}
}

// Unrecognized strings degrade to zero minutes instead of failing, so a bad
// SLA string surfaces downstream as an invalid agreed time.
func TestParseDurationMinutesUnrecognizedIsZero(t *testing.T) {
	for _, in := range []string{"", "dos horas", "2 semanas", "N/A", "120"} {
		assert.Zero(t, ParseDurationMinutes(in), "input %q", in)
	}

	_, err := ResponseTime(ParseDurationMinutes("pronto"), 30)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseMinutes(t *testing.T) {
	tests := map[string]float64{
		"":        0,
		"300":     300,
		" 45.5 ":  45.5,
		"2 horas": 120,
		"90 mins": 90,
		"0 horas": 0,
		"1 día":   1440,
	}
	for in, want := range tests {
		got, err := ParseMinutes(in)
		require.NoError(t, err, "input %q", in)
		assert.InDelta(t, want, got, 1e-9, "input %q", in)
	}

	for _, in := range []string{"pronto", "dos horas", "2 semanas"} {
		_, err := ParseMinutes(in)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %q", in)
	}
}

func TestComputeTicketRates(t *testing.T) {
	rates := ComputeTicketRates(10, 8, 2)
	require.NotNil(t, rates.Resolution)
	require.NotNil(t, rates.Reopen)
	assert.Equal(t, "80.00%", FormatRate(rates.Resolution))
	assert.Equal(t, "25.00%", FormatRate(rates.Reopen))

	rates = ComputeTicketRates(0, 0, 0)
	assert.Nil(t, rates.Resolution)
	assert.Nil(t, rates.Reopen)
	assert.Equal(t, "N/A", FormatRate(rates.Resolution))
}
