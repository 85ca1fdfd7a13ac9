package model

import "time"

// User: серверная модель аккаунта.
type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Login        string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string `gorm:"not null"` // bcrypt

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
