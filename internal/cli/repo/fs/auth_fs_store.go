package fs

import (
	"BoltPass/internal/cli/repo"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoToken: токен ещё не сохранён (пользователь не входил или вышел).
var ErrNoToken = errors.New("not logged in")

// AuthFSStore: файловое хранилище токена и логина пользователя для CLI.
// Токен лежит в Path, логин — рядом, в файле last_login. Права 0600, каталог 0700.
type AuthFSStore struct {
	Path string
}

var _ repo.SessionStore = (*AuthFSStore)(nil)

// NewAuthFSStore создаёт хранилище с файлом токена path (config.TokenFile).
func NewAuthFSStore(path string) *AuthFSStore {
	return &AuthFSStore{Path: path}
}

func (s *AuthFSStore) tokenPath() (string, error) {
	if s.Path == "" {
		return "", errors.New("token file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return "", err
	}
	return s.Path, nil
}

func (s *AuthFSStore) lastLoginPath() (string, error) {
	p, err := s.tokenPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(p), "last_login"), nil
}

func readTrimmed(p string) (string, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	// обрезаем завершающие переводы строки/пробелы
	return strings.TrimRight(string(b), " \t\r\n"), nil
}

// Save сохраняет auth‑токен в файл.
func (s *AuthFSStore) Save(token string) error {
	p, err := s.tokenPath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(token), 0o600)
}

// Load читает auth‑токен из файла. Нет файла или он пуст — ErrNoToken.
func (s *AuthFSStore) Load() (string, error) {
	p, err := s.tokenPath()
	if err != nil {
		return "", err
	}
	tok, err := readTrimmed(p)
	if errors.Is(err, os.ErrNotExist) || (err == nil && tok == "") {
		return "", ErrNoToken
	}
	return tok, err
}

// Clear удаляет токен и логин (logout). Отсутствие файлов не ошибка.
func (s *AuthFSStore) Clear() error {
	p, err := s.tokenPath()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	lp, _ := s.lastLoginPath()
	if err := os.Remove(lp); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// SaveLogin сохраняет логин пользователя в файл.
func (s *AuthFSStore) SaveLogin(login string) error {
	if login == "" {
		return errors.New("empty login")
	}
	p, err := s.lastLoginPath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(login), 0o600)
}

// LoadLogin читает логин пользователя из файла.
func (s *AuthFSStore) LoadLogin() (string, error) {
	p, err := s.lastLoginPath()
	if err != nil {
		return "", err
	}
	login, err := readTrimmed(p)
	if err != nil {
		return "", err
	}
	if login == "" {
		return "", errors.New("no stored login")
	}
	return login, nil
}
