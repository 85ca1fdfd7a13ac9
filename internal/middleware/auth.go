package middleware

import (
	"BoltPass/internal/auth"
	"BoltPass/internal/metrics"
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// Сообщения 401. Тексты фиксированы, клиенты на них опираются.
const (
	MsgMissingAuthorization = "Missing authorization"
	MsgInvalidAuthFormat    = "Invalid authorization format"
	MsgInvalidOrExpired     = "Invalid or expired token"
)

// TokenVerifier проверяет сессионный токен (auth.TokenService).
type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

type ctxKey int

const identityKey ctxKey = iota

// WithAuth требует заголовок "Authorization: Bearer <token>" и кладёт личность в контекст.
// Без заголовка, с другой схемой или с невалидным токеном — 401 без вызова next.
func WithAuth(v TokenVerifier, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				m.AuthFailed(metrics.ReasonMissing)
				writeError(w, http.StatusUnauthorized, MsgMissingAuthorization)
				return
			}

			scheme, token, ok := strings.Cut(header, " ")
			if !ok || scheme != "Bearer" || token == "" {
				m.AuthFailed(metrics.ReasonFormat)
				writeError(w, http.StatusUnauthorized, MsgInvalidAuthFormat)
				return
			}

			id, err := v.Verify(token)
			if err != nil {
				m.AuthFailed(metrics.ReasonInvalid)
				logger.Debugw("WithAuth: token rejected", "path", r.URL.Path)
				writeError(w, http.StatusUnauthorized, MsgInvalidOrExpired)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// WithIdentity кладёт личность в контекст.
func WithIdentity(ctx context.Context, id auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// GetIdentityFromContext возвращает личность, установленную WithAuth.
func GetIdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(identityKey).(auth.Identity)
	return id, ok
}

// GetUserIDFromContext возвращает user_id из контекста.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := GetIdentityFromContext(ctx)
	if !ok {
		return 0, false
	}
	return id.UserID, true
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
