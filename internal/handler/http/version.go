package http

import (
	"net/http"

	"github.com/MKhiriev/go-api-starter/internal/app"
	"github.com/MKhiriev/go-api-starter/internal/utils"
	"github.com/MKhiriev/go-api-starter/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())
	if buildInfo.Version == "" {
		utils.WriteError(w, app.MsgVersionIsNotSpecified, http.StatusInternalServerError)
		return
	}

	_, _ = utils.WriteJSON(w, buildInfo, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		_, _ = utils.WriteJSON(w, models.HealthResponse{Status: models.HealthStatusUnavailable}, http.StatusServiceUnavailable)
		return
	}

	_, _ = utils.WriteJSON(w, models.HealthResponse{Status: models.HealthStatusOK}, http.StatusOK)
}
