package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/MikeSquared-Agency/VendorEval/internal/classifier"
	"github.com/MikeSquared-Agency/VendorEval/internal/evaluation"
	"github.com/MikeSquared-Agency/VendorEval/internal/export"
	"github.com/MikeSquared-Agency/VendorEval/internal/hermes"
	"github.com/MikeSquared-Agency/VendorEval/internal/scoring"
)

type EvaluationsHandler struct {
	forms    *forms
	hermes   hermes.Client
	filename string
	logger   *slog.Logger
}

func NewEvaluationsHandler(f *forms, h hermes.Client, filename string, logger *slog.Logger) *EvaluationsHandler {
	if filename == "" {
		filename = export.DefaultFilename
	}
	return &EvaluationsHandler{forms: f, hermes: h, filename: filename, logger: logger}
}

type EvaluationResponse struct {
	Evaluation  *evaluation.Evaluation `json:"evaluation"`
	Result      scoring.Result         `json:"result"`
	TicketRates TicketRatesResponse    `json:"ticket_rates"`
	Suggested   []classifier.Result    `json:"suggested,omitempty"`
	Suggestion  *classifier.Result     `json:"suggestion,omitempty"`
}

func newEvaluationResponse(c *evaluation.Controller) EvaluationResponse {
	return EvaluationResponse{
		Evaluation:  c.Evaluation(),
		Result:      c.Result(),
		TicketRates: newTicketRatesResponse(c.TicketRates()),
	}
}

func decodeForm(r *http.Request) (evaluation.FormInput, error) {
	var in evaluation.FormInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return in, fmt.Errorf("invalid request body: %w", err)
	}
	return in, nil
}

func (h *EvaluationsHandler) Score(w http.ResponseWriter, r *http.Request) {
	in, err := decodeForm(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	c, err := h.forms.controller(in)
	if err != nil {
		writeError(w, err)
		return
	}

	h.scored(c)
	writeJSON(w, http.StatusOK, newEvaluationResponse(c))
}

func (h *EvaluationsHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	in, err := decodeForm(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	c, err := h.forms.controller(in)
	if err != nil {
		writeError(w, err)
		return
	}

	suggested, _ := c.SuggestRatings()
	for _, s := range suggested {
		classifications.WithLabelValues(string(s.Kind), fmt.Sprint(int(s.Rating))).Inc()
		publish(h.hermes, h.logger, hermes.SubjectRatingSuggested(string(s.Kind)), suggestedEvent(c, s, true))
	}
	h.scored(c)

	resp := newEvaluationResponse(c)
	resp.Suggested = suggested
	if resp.Suggested == nil {
		resp.Suggested = []classifier.Result{}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *EvaluationsHandler) Export(w http.ResponseWriter, r *http.Request) {
	in, err := decodeForm(r)
	if err != nil {
		writeBadRequest(w, err.Error())
		return
	}
	c, err := h.forms.controller(in)
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := export.Bytes(c.Evaluation(), c.Result())
	if err != nil {
		writeError(w, err)
		return
	}
	evaluationsExported.Inc()

	ev := c.Evaluation()
	publish(h.hermes, h.logger, hermes.SubjectEvaluationExported(ev.ID.String()), hermes.EvaluationExportedEvent{
		EvaluationID: ev.ID.String(),
		Vendor:       ev.General.VendorName,
		Filename:     h.filename,
		Bytes:        len(data),
		Timestamp:    time.Now().UTC(),
	})

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *EvaluationsHandler) scored(c *evaluation.Controller) {
	ev := c.Evaluation()
	res := c.Result()
	evaluationsScored.WithLabelValues(string(res.Grade)).Inc()
	publish(h.hermes, h.logger, hermes.SubjectEvaluationScored(ev.ID.String()), scoredEvent(ev, res))
}

func scoredEvent(ev *evaluation.Evaluation, res scoring.Result) hermes.EvaluationScoredEvent {
	e := hermes.EvaluationScoredEvent{
		EvaluationID:  ev.ID.String(),
		Vendor:        ev.General.VendorName,
		Service:       ev.Service,
		Period:        ev.General.Period,
		TotalWeighted: res.TotalWeighted,
		Normalized:    res.Normalized,
		Grade:         string(res.Grade),
		Sections:      make(map[string]string, len(res.Sections)),
		Subtotals:     make(map[string]float64, len(res.Sections)),
		Timestamp:     time.Now().UTC(),
	}
	for _, s := range res.Sections {
		e.Sections[s.ID] = string(s.Grade)
		if !s.NotApplicable {
			e.Subtotals[s.ID] = s.Subtotal
		}
	}
	return e
}

func suggestedEvent(c *evaluation.Controller, r classifier.Result, applied bool) hermes.RatingSuggestedEvent {
	e := hermes.RatingSuggestedEvent{
		Kind:          string(r.Kind),
		Rating:        int(r.Rating),
		Value:         r.Value,
		Unit:          r.Unit,
		Justification: r.Justification,
		Applied:       applied,
		Timestamp:     time.Now().UTC(),
	}
	if c != nil {
		if cs, ok := c.Evaluation().CriterionForKind(r.Kind); ok {
			e.CriterionID = cs.ID
		}
	}
	return e
}
