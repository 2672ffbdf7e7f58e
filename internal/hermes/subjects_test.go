package hermes

import (
	"strings"
	"testing"
)

func TestSubjects(t *testing.T) {
	tests := map[string]string{
		SubjectEvaluationScored("abc"):   "vendoreval.evaluation.abc.scored",
		SubjectEvaluationExported("abc"): "vendoreval.evaluation.abc.exported",
		SubjectRatingSuggested("uptime"): "vendoreval.calculator.uptime.suggested",
	}
	for got, want := range tests {
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
		if !strings.HasPrefix(got, strings.TrimSuffix(StreamSubjects, ">")) {
			t.Errorf("subject %q not captured by stream %q", got, StreamSubjects)
		}
	}
}
