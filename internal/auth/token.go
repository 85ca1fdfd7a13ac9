// Package auth выпускает и проверяет сессионные JWT.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL: срок жизни токена.
const DefaultTTL = 7 * 24 * time.Hour

// ErrInvalidOrExpired: токен не прошёл проверку. Причина (подпись, срок, формат) наружу не отдаётся.
var ErrInvalidOrExpired = errors.New("invalid or expired token")

// Claims: стандартные утверждения плюс идентичность пользователя.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// Identity: пользователь, извлечённый из проверенного токена.
type Identity struct {
	UserID   int64
	Username string
}

// TokenService: stateless выпуск/проверка токенов. Отзыва нет: токен живёт до истечения.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService создаёт сервис с HMAC-секретом secret. ttl <= 0 означает DefaultTTL.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TokenService{secret: secret, ttl: ttl, now: time.Now}
}

// WithClock подменяет источник времени (для тестов).
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// Issue подписывает токен для пользователя.
func (s *TokenService) Issue(userID int64, username string) (string, error) {
	issued := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(s.ttl)),
		},
		UserID:   userID,
		Username: username,
	})
	return token.SignedString(s.secret)
}

// Verify проверяет подпись, затем срок действия.
func (s *TokenService) Verify(tokenString string) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidOrExpired
	}
	return Identity{UserID: claims.UserID, Username: claims.Username}, nil
}
