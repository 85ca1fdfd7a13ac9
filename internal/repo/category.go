package repo

import (
	"BoltPass/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultCategories: базовый справочник, заливается при старте.
var DefaultCategories = []model.Category{
	{Name: "General", Icon: "🔑", Color: "#6366f1"},
	{Name: "Social", Icon: "💬", Color: "#ec4899"},
	{Name: "Work", Icon: "💼", Color: "#0ea5e9"},
	{Name: "Finance", Icon: "💳", Color: "#22c55e"},
	{Name: "Shopping", Icon: "🛒", Color: "#f59e0b"},
	{Name: "Email", Icon: "✉️", Color: "#8b5cf6"},
	{Name: "Entertainment", Icon: "🎬", Color: "#ef4444"},
	{Name: "Other", Icon: "📁", Color: "#64748b"},
}

// CategoryRepository: минимальный контракт доступа к справочнику категорий.
type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	// Seed вставляет категории, которых ещё нет. Существующие не трогает.
	Seed(ctx context.Context, cats []model.Category) error
}

type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository создаёт реализацию репозитория для Category.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) List(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	err := r.db.WithContext(ctx).Order("name").Find(&out).Error
	return out, err
}

func (r *categoryRepo) Seed(ctx context.Context, cats []model.Category) error {
	for i := range cats {
		c := cats[i]
		tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&c)
		if tx.Error != nil {
			return tx.Error
		}
	}
	return nil
}
