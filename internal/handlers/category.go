package handlers

import (
	"BoltPass/internal/service"
	"net/http"

	"go.uber.org/zap"
)

type CategoryHandler struct {
	CategoryService *service.CategoryService
	Logger          *zap.SugaredLogger
}

func NewCategoryHandler(categoryService *service.CategoryService, logger *zap.SugaredLogger) *CategoryHandler {
	return &CategoryHandler{CategoryService: categoryService, Logger: logger}
}

// List: справочник категорий.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	cats, err := h.CategoryService.List(r.Context())
	if err != nil {
		writeServiceError(w, h.Logger, "Categories", err, msgServerError)
		return
	}
	ok(w, map[string]any{"categories": cats})
}
