package handlers

import (
	"BoltPass/internal/metrics"
	"BoltPass/internal/service"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler: регистрация и вход.
type UserHandler struct {
	UserService *service.UserService
	Metrics     *metrics.Metrics
	Logger      *zap.SugaredLogger
}

func NewUserHandler(userService *service.UserService, m *metrics.Metrics, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{UserService: userService, Metrics: m, Logger: logger}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *UserHandler) decode(w http.ResponseWriter, r *http.Request) (credentialsRequest, bool) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("invalid credentials body", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusBadRequest, msgCredentialsRequired)
		return req, false
	}
	return req, true
}

// Register создаёт аккаунт и возвращает токен.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	req, valid := h.decode(w, r)
	if !valid {
		return
	}
	res, err := h.UserService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, h.Logger, "Register", err, msgCredentialsRequired)
		return
	}
	h.Logger.Infow("user registered", "user_id", res.User.ID)
	ok(w, map[string]any{"token": res.Token})
}

// Login проверяет учётные данные и возвращает токен.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, valid := h.decode(w, r)
	if !valid {
		return
	}
	res, err := h.UserService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.Metrics.AuthFailed(metrics.ReasonLogin)
		}
		writeServiceError(w, h.Logger, "Login", err, msgCredentialsRequired)
		return
	}
	ok(w, map[string]any{"token": res.Token})
}

// Ping: проверка доступности.
func Ping(w http.ResponseWriter, _ *http.Request) {
	ok(w, nil)
}
