package scoring

// Rating is a criterion score on the 1–5 scale. The zero value means "not rated".
type Rating int

const (
	RatingNone Rating = 0
	RatingMin  Rating = 1
	RatingMax  Rating = 5
)

// Valid reports whether r is a rating in [1,5].
func (r Rating) Valid() bool {
	return r >= RatingMin && r <= RatingMax
}

// ClampRating coerces raw user input into [1,5].
func ClampRating(v int) Rating {
	if v < int(RatingMin) {
		return RatingMin
	}
	if v > int(RatingMax) {
		return RatingMax
	}
	return Rating(v)
}

// Grade is the qualitative label derived from a normalized score.
type Grade string

const (
	GradeDeficient     Grade = "Deficiente"
	GradeFair          Grade = "Regular"
	GradeAcceptable    Grade = "Aceptable"
	GradeGood          Grade = "Bueno"
	GradeExcellent     Grade = "Excelente"
	GradeNotApplicable Grade = "N/A"
)

// GradeFor buckets a normalized value (nominally 0–1) into a Grade.
//
// Maps to: <0.2=deficient, <0.4=fair, <0.6=acceptable, <0.8=good, else excellent.
// Out-of-range input is not clamped: negative values land in Deficient and
// anything >= 0.8 in Excellent.
func GradeFor(normalized float64) Grade {
	switch {
	case normalized < 0.2:
		return GradeDeficient
	case normalized < 0.4:
		return GradeFair
	case normalized < 0.6:
		return GradeAcceptable
	case normalized < 0.8:
		return GradeGood
	default:
		return GradeExcellent
	}
}
