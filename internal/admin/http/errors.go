package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/lodgekeep/backoffice/internal/admin/service"
	"github.com/lodgekeep/backoffice/pkg/adminapi"
	"github.com/lodgekeep/backoffice/pkg/httpx"
)

// writeServiceError maps service-layer errors onto the uniform error payload.
// Field-attributed duplicates come back as 409 so form UIs can re-present the
// offending field; reference failures are the caller's fault and get 400.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, err error) {
	field := service.FieldOf(err)

	switch {
	case errors.Is(err, service.ErrDuplicateUsername),
		errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrDuplicateRoomName):
		httpx.WriteJSON(w, http.StatusConflict, adminapi.ErrorResponse{
			Error:            adminapi.ErrCodeConflict,
			ErrorDescription: err.Error(),
			Field:            field,
		})

	case errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidRoomType),
		errors.Is(err, service.ErrInvalidBooking):
		httpx.WriteJSON(w, http.StatusBadRequest, adminapi.ErrorResponse{
			Error:            adminapi.ErrCodeInvalidRequest,
			ErrorDescription: err.Error(),
			Field:            field,
		})

	case errors.Is(err, service.ErrAccountNotFound),
		errors.Is(err, service.ErrRoomNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, adminapi.ErrorResponse{
			Error:            adminapi.ErrCodeNotFound,
			ErrorDescription: err.Error(),
		})

	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteJSON(w, http.StatusUnauthorized, adminapi.ErrorResponse{
			Error:            adminapi.ErrCodeInvalidCredentials,
			ErrorDescription: err.Error(),
		})

	default:
		log.Error("request failed", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, adminapi.ErrorResponse{
			Error:            adminapi.ErrCodeServerError,
			ErrorDescription: "internal error",
		})
	}
}

func writeBadRequest(w http.ResponseWriter, description string) {
	httpx.WriteJSON(w, http.StatusBadRequest, adminapi.ErrorResponse{
		Error:            adminapi.ErrCodeInvalidRequest,
		ErrorDescription: description,
	})
}
