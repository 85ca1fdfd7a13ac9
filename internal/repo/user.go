package repo

import (
	"BoltPass/internal/model"
	"context"

	"gorm.io/gorm"
)

// UserRepository: контракт доступа к аккаунтам для слоя сервиса.
// Отсутствие записи — gorm.ErrRecordNotFound.
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	// UpdatePassword заменяет хеш пароля. Возвращает gorm.ErrRecordNotFound, если логина нет.
	UpdatePassword(ctx context.Context, login, passwordHash string) error
	ListLogins(ctx context.Context) ([]string, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория для User.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("login = ?", login).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) UpdatePassword(ctx context.Context, login, passwordHash string) error {
	tx := r.db.WithContext(ctx).Model(&model.User{}).Where("login = ?", login).Update("password_hash", passwordHash)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepo) ListLogins(ctx context.Context) ([]string, error) {
	var logins []string
	err := r.db.WithContext(ctx).Model(&model.User{}).Order("login").Pluck("login", &logins).Error
	return logins, err
}
