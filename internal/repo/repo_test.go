package repo

import (
	"BoltPass/internal/model"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// newTestDB инициализирует отдельную in-memory SQLite (modernc.org/sqlite) на каждый тест
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := InitDB(dsn)
	if err != nil {
		t.Fatalf("failed to init sqlite (modernc): %v", err)
	}
	t.Cleanup(func() { _ = Close(db) })
	return db
}

// mkUser создаёт пользователя и возвращает его id
func mkUser(t *testing.T, db *gorm.DB, login string) int64 {
	t.Helper()
	u, err := NewUserRepository(db).CreateUser(context.Background(), &model.User{Login: login, PasswordHash: "hash"})
	if err != nil {
		t.Fatalf("create user %s: %v", login, err)
	}
	return u.ID
}
