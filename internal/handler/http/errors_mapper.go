package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-api-starter/internal/app"
	"github.com/MKhiriev/go-api-starter/internal/logger"
	"github.com/MKhiriev/go-api-starter/internal/service"
	"github.com/MKhiriev/go-api-starter/internal/store"
	"github.com/MKhiriev/go-api-starter/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrNothingToUpdate:         http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrForbidden:               http.StatusForbidden,
	service.ErrVersionIsNotSpecified:   http.StatusInternalServerError,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrPasswordHashing:         http.StatusInternalServerError,
	service.ErrStorageUnhealthy:        http.StatusServiceUnavailable,

	ErrInvalidUserID: http.StatusBadRequest,
	ErrInvalidPaging: http.StatusBadRequest,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrNothingToUpdate:         app.MsgNothingToUpdate,
	service.ErrWrongPassword:           app.MsgInvalidLoginPassword,
	service.ErrTokenIsExpired:          app.MsgTokenIsExpired,
	service.ErrTokenIsExpiredOrInvalid: app.MsgTokenIsExpiredOrInvalid,
	service.ErrForbidden:               app.MsgAccessDenied,
	service.ErrVersionIsNotSpecified:   app.MsgVersionIsNotSpecified,
	service.ErrStorageUnhealthy:        app.MsgServiceUnavailable,

	ErrInvalidUserID: app.MsgInvalidUserID,
	ErrInvalidPaging: app.MsgInvalidDataProvided,

	store.ErrLoginAlreadyExists: app.MsgLoginAlreadyExists,
	store.ErrNoUserWasFound:     app.MsgUserNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing message for err. Validation
// failures carry their field errors; unknown errors never leak details.
func messageFromError(err error) string {
	if errors.Is(err, service.ErrInvalidDataProvided) {
		return strings.ReplaceAll(err.Error(), "\n", "; ")
	}

	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return app.MsgInternalServerError
}

// writeError logs err and writes the mapped status and message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, messageFromError(err), status)
}
