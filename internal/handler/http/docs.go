package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-api-starter/internal/app"
	"github.com/MKhiriev/go-api-starter/internal/docs"
	"github.com/MKhiriev/go-api-starter/internal/logger"
	"github.com/MKhiriev/go-api-starter/internal/utils"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json"
	contentTypeYAML = "application/yaml"
)

func (h *Handler) docsUI(w http.ResponseWriter, r *http.Request) {
	page, err := docs.RenderUI(docs.UIConfig{
		Title:   h.spec.Info.Title,
		SpecURL: strings.TrimSuffix(h.cfg.DocsRoute, "/") + "/openapi.json",
	})
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error rendering docs page")
		utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	writeDocument(w, contentTypeHTML, page)
}

func (h *Handler) docsJSON(w http.ResponseWriter, r *http.Request) {
	data, err := h.spec.JSON()
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error rendering openapi json")
		utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	writeDocument(w, contentTypeJSON, data)
}

func (h *Handler) docsYAML(w http.ResponseWriter, r *http.Request) {
	data, err := h.spec.YAML()
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error rendering openapi yaml")
		utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	writeDocument(w, contentTypeYAML, data)
}

func writeDocument(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
