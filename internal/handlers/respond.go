package handlers

import (
	"BoltPass/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// Короткие сообщения ошибок API.
const (
	msgCredentialsRequired = "username and password required"
	msgEntryRequired       = "title and password required"
	msgTitleRequired       = "title required"
	msgServerError         = "server error"
	msgInvalidBody         = "invalid request body"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ok: успешный ответ: {"ok": true, ...fields}.
func ok(w http.ResponseWriter, fields map[string]any) {
	body := map[string]any{"ok": true}
	for k, v := range fields {
		body[k] = v
	}
	writeJSON(w, http.StatusOK, body)
}

// writeServiceError сопоставляет ошибки сервиса с HTTP. validationMsg — текст для ErrValidation,
// он зависит от маршрута. Неизвестные ошибки логируются и отдаются как 500 без деталей.
func writeServiceError(w http.ResponseWriter, logger *zap.SugaredLogger, op string, err error, validationMsg string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, validationMsg)
	case errors.Is(err, service.ErrLoginTaken):
		writeError(w, http.StatusBadRequest, service.ErrLoginTaken.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusBadRequest, service.ErrInvalidCredentials.Error())
	case errors.Is(err, service.ErrNothingToUpdate):
		writeError(w, http.StatusBadRequest, service.ErrNothingToUpdate.Error())
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, service.ErrNotFound.Error())
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, service.ErrForbidden.Error())
	case errors.Is(err, service.ErrRetrievalFailed):
		logger.Errorw(op+": retrieval failed", "error", err)
		writeError(w, http.StatusInternalServerError, service.ErrRetrievalFailed.Error())
	default:
		logger.Errorw(op+": service error", "error", err)
		writeError(w, http.StatusInternalServerError, msgServerError)
	}
}
