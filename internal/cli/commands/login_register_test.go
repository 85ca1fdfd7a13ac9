package commands

import (
	"BoltPass/internal/cli/repo/fs"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// sessionServer имитирует /api/register и /api/login.
func sessionServer(t *testing.T, path, token string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body credentials
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Username == "" || body.Password == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "username and password required"})
			return
		}
		if body.Password == "bad" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "token": token})
	}))
}

func TestLogin_Run_SuccessAndErrors(t *testing.T) {
	ts := sessionServer(t, "/api/login", "tok-123")
	defer ts.Close()
	cfg := withTempConfig(t, ts.URL)
	cmd := loginCmd{}

	out := withStdoutCapture(t, func() {
		if err := cmd.Run(context.Background(), cfg, []string{"alice", "secret"}); err != nil {
			t.Fatalf("login should succeed: %v", err)
		}
	})
	if out != "Logged in successfully\n" {
		t.Fatalf("unexpected output %q", out)
	}
	st := fs.NewAuthFSStore(cfg.TokenFile)
	if tok, err := st.Load(); err != nil || tok != "tok-123" {
		t.Fatalf("auth token not saved: %q %v", tok, err)
	}
	if login, err := st.LoadLogin(); err != nil || login != "alice" {
		t.Fatalf("login not saved: %q %v", login, err)
	}

	// invalid credentials: сообщение сервера доходит до пользователя
	err := cmd.Run(context.Background(), withTempConfig(t, ts.URL), []string{"alice", "bad"})
	if err == nil || err.Error() != "invalid credentials (status 400)" {
		t.Fatalf("expected invalid credentials, got %v", err)
	}

	if err := cmd.Run(context.Background(), cfg, []string{"onlyLogin"}); err != ErrUsage {
		t.Fatalf("expected ErrUsage, got %v", err)
	}

	ts500 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts500.Close()
	if err := cmd.Run(context.Background(), withTempConfig(t, ts500.URL), []string{"a", "b"}); err == nil {
		t.Fatalf("expected error for 500")
	}
}

func TestRegister_Run_SuccessAndErrors(t *testing.T) {
	ts := sessionServer(t, "/api/register", "tok-xyz")
	defer ts.Close()
	cfg := withTempConfig(t, ts.URL)

	out := withStdoutCapture(t, func() {
		if err := (registerCmd{}).Run(context.Background(), cfg, []string{"bob", "pw"}); err != nil {
			t.Fatalf("register should succeed: %v", err)
		}
	})
	if out != "Registered and logged in as bob\n" {
		t.Fatalf("unexpected output %q", out)
	}
	if tok, _ := fs.NewAuthFSStore(cfg.TokenFile).Load(); tok != "tok-xyz" {
		t.Fatalf("token not saved: %q", tok)
	}

	if err := (registerCmd{}).Run(context.Background(), cfg, []string{"a", "b", "c"}); err != ErrUsage {
		t.Fatalf("expected ErrUsage, got %v", err)
	}

	// сервер без токена в ответе
	empty := sessionServer(t, "/api/register", "")
	defer empty.Close()
	if err := (registerCmd{}).Run(context.Background(), withTempConfig(t, empty.URL), []string{"bob", "pw"}); err == nil {
		t.Fatalf("expected error for empty token")
	}
}

func TestLogout_ClearsToken(t *testing.T) {
	cfg := withTempConfig(t, "http://127.0.0.1:1")
	if err := persistSession(cfg, "alice", "tok"); err != nil {
		t.Fatalf("persist: %v", err)
	}
	withStdoutCapture(t, func() {
		if err := (logoutCmd{}).Run(context.Background(), cfg, nil); err != nil {
			t.Fatalf("logout: %v", err)
		}
	})
	if _, err := fs.NewAuthFSStore(cfg.TokenFile).Load(); !errors.Is(err, fs.ErrNoToken) {
		t.Fatalf("expected ErrNoToken after logout, got %v", err)
	}
	// повторный logout без токена не ошибка
	withStdoutCapture(t, func() {
		if err := (logoutCmd{}).Run(context.Background(), cfg, nil); err != nil {
			t.Fatalf("second logout: %v", err)
		}
	})
}
