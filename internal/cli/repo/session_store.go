// Package repo описывает локальные хранилища клиента.
package repo

// SessionStore хранит сессию CLI между запусками: bearer-токен и логин, под которым он получен.
// Load возвращает ошибку, если токена нет; Clear без сохранённой сессии не ошибка.
type SessionStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error

	SaveLogin(login string) error
	LoadLogin() (string, error)
}
