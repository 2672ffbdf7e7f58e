package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/VendorEval/internal/catalog"
	"github.com/MikeSquared-Agency/VendorEval/internal/config"
	"github.com/MikeSquared-Agency/VendorEval/internal/evaluation"
	"github.com/MikeSquared-Agency/VendorEval/internal/hermes"
)

func NewRouter(cat *catalog.Catalog, tmpl *evaluation.Template, h hermes.Client, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(cfg.Server.RateLimit))

	f := &forms{catalog: cat, template: tmpl, logger: logger}
	catalogs := NewCatalogHandler(cat, tmpl)
	evaluations := NewEvaluationsHandler(f, h, cfg.Export.Filename, logger)
	calculator := NewCalculatorHandler(f, h, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/template", catalogs.Template)
		r.Get("/vendors", catalogs.Vendors)
		r.Get("/vendors/{vendor}/services", catalogs.Services)
		r.Get("/vendors/{vendor}/services/{service}/sla", catalogs.SLA)

		r.Post("/evaluations/score", evaluations.Score)
		r.Post("/evaluations/suggest", evaluations.Suggest)
		r.Post("/evaluations/export", evaluations.Export)

		r.Post("/calculator/{kind}", calculator.Calculate)
		r.Post("/calculator/{kind}/apply", calculator.Apply)
		r.Post("/tickets/rates", calculator.TicketRates)
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
