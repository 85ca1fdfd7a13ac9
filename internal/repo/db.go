package repo

import (
	"BoltPass/internal/model"
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// InitDB открывает БД по DSN, мигрирует схему и заполняет справочник категорий.
// postgres:// и postgresql:// — PostgreSQL, всё остальное — SQLite (modernc, без cgo).
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := Migrate(ctx, db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := NewCategoryRepository(db).Seed(ctx, DefaultCategories); err != nil {
		return nil, fmt.Errorf("seed categories: %w", err)
	}
	return db, nil
}

// Open открывает соединение и настраивает пул.
func Open(dsn string) (*gorm.DB, error) {
	isPostgres := strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")

	var dial gorm.Dialector
	if isPostgres {
		dial = postgres.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if isPostgres {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		// SQLite не любит конкурентную запись из нескольких соединений
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// Migrate создаёт/обновляет таблицы моделей.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(&model.User{}, &model.Entry{}, &model.Category{})
}

// Close освобождает пул соединений.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
