package hermes

import "time"

type EvaluationScoredEvent struct {
	EvaluationID  string             `json:"evaluation_id"`
	Vendor        string             `json:"vendor,omitempty"`
	Service       string             `json:"service,omitempty"`
	Period        string             `json:"period,omitempty"`
	TotalWeighted float64            `json:"total_weighted"`
	Normalized    float64            `json:"normalized"`
	Grade         string             `json:"grade"`
	Sections      map[string]string  `json:"sections"`
	Subtotals     map[string]float64 `json:"subtotals,omitempty"`
	Timestamp     time.Time          `json:"timestamp"`
}

type EvaluationExportedEvent struct {
	EvaluationID string    `json:"evaluation_id"`
	Vendor       string    `json:"vendor,omitempty"`
	Filename     string    `json:"filename"`
	Bytes        int       `json:"bytes"`
	Timestamp    time.Time `json:"timestamp"`
}

type RatingSuggestedEvent struct {
	Kind          string    `json:"kind"`
	Rating        int       `json:"rating"`
	Value         float64   `json:"value"`
	Unit          string    `json:"unit"`
	Justification string    `json:"justification"`
	Applied       bool      `json:"applied"`
	CriterionID   string    `json:"criterion_id,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}
