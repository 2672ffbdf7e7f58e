package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MikeSquared-Agency/VendorEval/internal/classifier"
	"github.com/MikeSquared-Agency/VendorEval/internal/evaluation"
	"github.com/MikeSquared-Agency/VendorEval/internal/hermes"
)

type CalculatorHandler struct {
	forms  *forms
	hermes hermes.Client
	logger *slog.Logger
}

func NewCalculatorHandler(f *forms, h hermes.Client, logger *slog.Logger) *CalculatorHandler {
	return &CalculatorHandler{forms: f, hermes: h, logger: logger}
}

type ApplyRequest struct {
	Form  evaluation.FormInput `json:"form"`
	Input classifier.Input     `json:"input"`
}

func (h *CalculatorHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	kind, err := classifier.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, err)
		return
	}

	var in classifier.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	res, err := classifier.Classify(kind, in)
	if err != nil {
		writeError(w, err)
		return
	}
	h.suggested(nil, res, false)
	writeJSON(w, http.StatusOK, res)
}

func (h *CalculatorHandler) Apply(w http.ResponseWriter, r *http.Request) {
	kind, err := classifier.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, err)
		return
	}

	var req ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	c, err := h.forms.controller(req.Form)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := c.Calculate(kind, req.Input)
	if err != nil {
		writeError(w, err)
		return
	}
	if _, err := c.ApplySuggestion(); err != nil {
		writeError(w, err)
		return
	}
	h.suggested(c, res, true)

	resp := newEvaluationResponse(c)
	resp.Suggestion = &res
	writeJSON(w, http.StatusOK, resp)
}

func (h *CalculatorHandler) TicketRates(w http.ResponseWriter, r *http.Request) {
	var stats evaluation.TicketStats
	if err := json.NewDecoder(r.Body).Decode(&stats); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, newTicketRatesResponse(stats.Rates()))
}

func (h *CalculatorHandler) suggested(c *evaluation.Controller, res classifier.Result, applied bool) {
	classifications.WithLabelValues(string(res.Kind), fmt.Sprint(int(res.Rating))).Inc()
	publish(h.hermes, h.logger, hermes.SubjectRatingSuggested(string(res.Kind)), suggestedEvent(c, res, applied))
}
