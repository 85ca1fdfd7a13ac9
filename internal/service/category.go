package service

import (
	"BoltPass/internal/model"
	"BoltPass/internal/repo"
	"context"
	"fmt"
)

// CategoryService отдаёт справочник категорий.
type CategoryService struct {
	repo repo.CategoryRepository
}

func NewCategoryService(r repo.CategoryRepository) *CategoryService {
	return &CategoryService{repo: r}
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	cats, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}
