package model

import "time"

// DefaultCategory: категория записи, если она не указана.
const DefaultCategory = "General"

// Entry: серверная модель записи хранилища пользователя.
// Пароль хранится только в зашифрованном виде (см. crypto.VaultCipher).
type Entry struct {
	ID     int64 `gorm:"primaryKey;autoIncrement"`
	UserID int64 `gorm:"not null;index"` // ссылка на users.id

	// Связи
	User *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Title             string `gorm:"not null"`
	WebsiteURL        string
	Email             string
	Username          string
	PasswordEncrypted string `gorm:"type:text;not null"` // base64(nonce||tag||ciphertext)
	Notes             string `gorm:"type:text"`
	Category          string `gorm:"not null;default:General"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Category: справочник категорий для UI.
type Category struct {
	Name  string `gorm:"primaryKey;size:64" json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}
