package commands

import (
	"BoltPass/internal/cli/api"
	"BoltPass/internal/cli/repo"
	"BoltPass/internal/cli/repo/fs"
	"BoltPass/internal/config"
	"errors"
	"fmt"
	"strconv"
)

func newAuthStore(cfg *config.Config) repo.SessionStore {
	return fs.NewAuthFSStore(cfg.TokenFile)
}

func publicClient(cfg *config.Config) *api.Client {
	return api.NewClient(cfg.ServerURL, "")
}

// authedClient возвращает клиента с сохранённым токеном.
func authedClient(cfg *config.Config) (*api.Client, error) {
	tok, err := newAuthStore(cfg).Load()
	if err != nil {
		if errors.Is(err, fs.ErrNoToken) {
			return nil, errors.New("not logged in, run: login <username> <password>")
		}
		return nil, fmt.Errorf("load token: %w", err)
	}
	return api.NewClient(cfg.ServerURL, tok), nil
}

// persistSession сохраняет токен и логин после register/login.
func persistSession(cfg *config.Config, username, token string) error {
	if token == "" {
		return errors.New("server returned no token")
	}
	st := newAuthStore(cfg)
	if err := st.Save(token); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	if err := st.SaveLogin(username); err != nil {
		return fmt.Errorf("saving login: %w", err)
	}
	return nil
}

// parseID разбирает положительный числовой id записи.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrUsage
	}
	return id, nil
}

func entryPath(id int64) string {
	return "/api/entries/" + strconv.FormatInt(id, 10)
}

// sessionResponse: ответ register/login.
type sessionResponse struct {
	OK    bool   `json:"ok"`
	Token string `json:"token"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
