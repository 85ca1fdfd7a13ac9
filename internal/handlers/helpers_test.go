package handlers_test

import (
	"BoltPass/internal/auth"
	"BoltPass/internal/config"
	"BoltPass/internal/crypto"
	"BoltPass/internal/handlers"
	"BoltPass/internal/metrics"
	"BoltPass/internal/repo"
	"BoltPass/internal/service"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type testEnv struct {
	router  http.Handler
	db      *gorm.DB
	cipher  *crypto.VaultCipher
	metrics *metrics.Metrics
}

// newTestEnv собирает роутер на реальных сервисах поверх in-memory SQLite.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithConfig(t, &config.Config{AuthSecret: testSecret, CORSOrigins: "*", AuthRateLimit: 1000})
}

func newTestEnvWithConfig(t *testing.T, cfg *config.Config) *testEnv {
	t.Helper()
	logger := zap.NewNop().Sugar()

	db, err := repo.InitDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close(db) })

	key, _, err := crypto.LoadMasterKey("")
	require.NoError(t, err)
	cipher, err := crypto.NewVaultCipher(key)
	require.NoError(t, err)

	tokens := auth.NewTokenService([]byte(cfg.AuthSecret), time.Hour)
	m := metrics.New()
	h := handlers.NewHandler(handlers.Services{
		Users:      service.NewUserService(repo.NewUserRepository(db), crypto.NewHasher(), tokens),
		Entries:    service.NewEntryService(repo.NewEntryRepository(db), cipher, logger),
		Categories: service.NewCategoryService(repo.NewCategoryRepository(db)),
		Tokens:     tokens,
	}, m, logger, cfg)

	return &testEnv{router: h.Router, db: db, cipher: cipher, metrics: m}
}

// do выполняет запрос и разбирает JSON-ответ в map.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	rr := e.doRaw(t, method, path, token, body)
	out := map[string]any{}
	if rr.Body.Len() > 0 && rr.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	}
	return rr.Code, out
}

// doRaw выполняет запрос и отдаёт ответ как есть.
func (e *testEnv) doRaw(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// register создаёт пользователя и возвращает его токен.
func (e *testEnv) register(t *testing.T, username, password string) string {
	t.Helper()
	code, body := e.do(t, http.MethodPost, "/api/register", "", map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusOK, code, body)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

// createEntry создаёт запись и возвращает её id.
func (e *testEnv) createEntry(t *testing.T, token string, fields map[string]string) int64 {
	t.Helper()
	code, body := e.do(t, http.MethodPost, "/api/entries", token, fields)
	require.Equal(t, http.StatusOK, code, body)
	id, _ := body["id"].(float64)
	require.NotZero(t, id)
	return int64(id)
}
