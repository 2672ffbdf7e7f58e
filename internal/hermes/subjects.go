package hermes

import "time"

const (
	SubjectAll = "vendoreval.>"

	StreamName     = "VENDOREVAL_EVENTS"
	StreamSubjects = SubjectAll
	StreamMaxAge   = 30 * 24 * time.Hour
)

func SubjectEvaluationScored(evalID string) string   { return "vendoreval.evaluation." + evalID + ".scored" }
func SubjectEvaluationExported(evalID string) string { return "vendoreval.evaluation." + evalID + ".exported" }

func SubjectRatingSuggested(kind string) string { return "vendoreval.calculator." + kind + ".suggested" }
