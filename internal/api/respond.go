package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/MikeSquared-Agency/VendorEval/internal/catalog"
	"github.com/MikeSquared-Agency/VendorEval/internal/classifier"
	"github.com/MikeSquared-Agency/VendorEval/internal/evaluation"
	"github.com/MikeSquared-Agency/VendorEval/internal/hermes"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, classifier.ErrInvalidInput),
		errors.Is(err, classifier.ErrUnknownKind),
		errors.Is(err, evaluation.ErrNotApplicable):
		return http.StatusBadRequest
	case errors.Is(err, evaluation.ErrFieldNotFound),
		errors.Is(err, catalog.ErrUnknownVendor),
		errors.Is(err, catalog.ErrUnknownService):
		return http.StatusNotFound
	case errors.Is(err, evaluation.ErrNoSuggestion):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	requestErrors.WithLabelValues(strconv.Itoa(status)).Inc()
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	requestErrors.WithLabelValues(strconv.Itoa(http.StatusBadRequest)).Inc()
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func publish(h hermes.Client, logger *slog.Logger, subject string, data interface{}) {
	if h == nil {
		return
	}
	if err := h.Publish(subject, data); err != nil {
		logger.Warn("failed to publish event", "subject", subject, "error", err)
	}
}

// forms builds a fresh Controller per request; the API keeps no form state.
type forms struct {
	catalog  *catalog.Catalog
	template *evaluation.Template
	logger   *slog.Logger
}

func (f *forms) controller(in evaluation.FormInput) (*evaluation.Controller, error) {
	c := evaluation.NewController(f.template, f.catalog, f.logger)
	if err := c.Apply(in); err != nil {
		return nil, err
	}
	return c, nil
}

type TicketRatesResponse struct {
	ResolutionPct *float64 `json:"resolution_pct"`
	ReopenPct     *float64 `json:"reopen_pct"`
	Resolution    string   `json:"resolution"`
	Reopen        string   `json:"reopen"`
}

func newTicketRatesResponse(r classifier.TicketRates) TicketRatesResponse {
	return TicketRatesResponse{
		ResolutionPct: r.Resolution,
		ReopenPct:     r.Reopen,
		Resolution:    classifier.FormatRate(r.Resolution),
		Reopen:        classifier.FormatRate(r.Reopen),
	}
}
