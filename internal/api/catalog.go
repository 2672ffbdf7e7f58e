package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MikeSquared-Agency/VendorEval/internal/catalog"
	"github.com/MikeSquared-Agency/VendorEval/internal/evaluation"
)

type CatalogHandler struct {
	catalog  *catalog.Catalog
	template *evaluation.Template
}

func NewCatalogHandler(c *catalog.Catalog, t *evaluation.Template) *CatalogHandler {
	return &CatalogHandler{catalog: c, template: t}
}

func pathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}

func (h *CatalogHandler) Template(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.template)
}

func (h *CatalogHandler) Vendors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Vendors())
}

func (h *CatalogHandler) Services(w http.ResponseWriter, r *http.Request) {
	v, err := h.catalog.Vendor(pathParam(r, "vendor"))
	if err != nil {
		writeError(w, err)
		return
	}
	services := v.Services
	if services == nil {
		services = []catalog.Service{}
	}
	writeJSON(w, http.StatusOK, services)
}

func (h *CatalogHandler) SLA(w http.ResponseWriter, r *http.Request) {
	sla, err := h.catalog.SLA(pathParam(r, "vendor"), pathParam(r, "service"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sla)
}
