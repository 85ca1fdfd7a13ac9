package repo

import (
	"BoltPass/internal/model"
	"context"

	"gorm.io/gorm"
)

// EntryOrder: порядок выдачи записей пользователя.
type EntryOrder int

const (
	// ByUpdatedDesc: сначала недавно изменённые (лёгкий список заголовков).
	ByUpdatedDesc EntryOrder = iota
	// ByCreatedDesc: сначала недавно созданные (полный список).
	ByCreatedDesc
)

func (o EntryOrder) clause() string {
	if o == ByCreatedDesc {
		return "created_at DESC, id DESC"
	}
	return "updated_at DESC, id DESC"
}

// EntryRepository определяет контракт доступа к Entry для слоя сервиса.
// Проверка владельца — забота сервиса: GetByID ищет только по id.
type EntryRepository interface {
	Create(ctx context.Context, e *model.Entry) error
	// GetByID возвращает запись или gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id int64) (*model.Entry, error)
	ListByUser(ctx context.Context, userID int64, order EntryOrder) ([]model.Entry, error)
	// ListSecrets возвращает только зашифрованные пароли пользователя (для статистики).
	ListSecrets(ctx context.Context, userID int64) ([]string, error)
	// Update применяет частичное обновление колонок. Нет записи — gorm.ErrRecordNotFound.
	Update(ctx context.Context, id int64, updates map[string]any) error
	Delete(ctx context.Context, id int64) error
}

type entryRepo struct {
	db *gorm.DB
}

// NewEntryRepository создаёт реализацию репозитория для Entry.
func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepo{db: db}
}

func (r *entryRepo) Create(ctx context.Context, e *model.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *entryRepo) GetByID(ctx context.Context, id int64) (*model.Entry, error) {
	var e model.Entry
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *entryRepo) ListByUser(ctx context.Context, userID int64, order EntryOrder) ([]model.Entry, error) {
	var out []model.Entry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(order.clause()).
		Find(&out).Error
	return out, err
}

func (r *entryRepo) ListSecrets(ctx context.Context, userID int64) ([]string, error) {
	var out []string
	err := r.db.WithContext(ctx).
		Model(&model.Entry{}).
		Where("user_id = ?", userID).
		Pluck("password_encrypted", &out).Error
	return out, err
}

func (r *entryRepo) Update(ctx context.Context, id int64, updates map[string]any) error {
	tx := r.db.WithContext(ctx).Model(&model.Entry{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *entryRepo) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&model.Entry{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
