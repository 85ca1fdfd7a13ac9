package service

import (
	"BoltPass/internal/model"
	"BoltPass/internal/repo"
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"
)

// PasswordHasher: хеширование паролей аккаунтов (crypto.Hasher).
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// TokenIssuer выпускает сессионные токены (auth.TokenService).
type TokenIssuer interface {
	Issue(userID int64, username string) (string, error)
}

// AuthResult: результат регистрации/входа.
type AuthResult struct {
	User  *model.User
	Token string
}

// UserService: регистрация, вход и сброс пароля.
type UserService struct {
	repo   repo.UserRepository
	hasher PasswordHasher
	tokens TokenIssuer

	dummyOnce sync.Once
	dummyHash string
}

// NewUserService создаёт сервис пользователей.
func NewUserService(r repo.UserRepository, h PasswordHasher, t TokenIssuer) *UserService {
	return &UserService{repo: r, hasher: h, tokens: t}
}

// Register создаёт аккаунт и сразу выдаёт токен.
func (s *UserService) Register(ctx context.Context, login, password string) (*AuthResult, error) {
	if login == "" || password == "" {
		return nil, ErrValidation
	}

	existing, err := s.repo.GetUserByLogin(ctx, login)
	switch {
	case err == nil && existing != nil:
		return nil, ErrLoginTaken
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, &model.User{Login: login, PasswordHash: hash})
	if err != nil {
		// гонка двух регистраций одного логина
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrLoginTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.issue(user)
}

// Login проверяет пароль и выдаёт токен. Неизвестный логин и неверный пароль
// дают одну и ту же ErrInvalidCredentials; bcrypt выполняется в обоих случаях.
func (s *UserService) Login(ctx context.Context, login, password string) (*AuthResult, error) {
	if login == "" || password == "" {
		return nil, ErrValidation
	}

	user, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		s.hasher.Verify(password, s.dummy())
		return nil, ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.issue(user)
}

// ResetPassword перехеширует пароль пользователя (операторская утилита).
func (s *UserService) ResetPassword(ctx context.Context, login, newPassword string) error {
	if login == "" || newPassword == "" {
		return ErrValidation
	}
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.repo.UpdatePassword(ctx, login, hash); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// Logins возвращает список логинов (операторская утилита).
func (s *UserService) Logins(ctx context.Context) ([]string, error) {
	return s.repo.ListLogins(ctx)
}

func (s *UserService) issue(user *model.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(user.ID, user.Login)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthResult{User: user, Token: token}, nil
}

// dummy: хеш для выравнивания времени ответа при неизвестном логине.
func (s *UserService) dummy() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = s.hasher.Hash("boltpass-timing-equalizer")
	})
	return s.dummyHash
}
