package handlers

import (
	"BoltPass/internal/middleware"
	"BoltPass/internal/service"
	"BoltPass/internal/strength"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// EntryHandler: CRUD записей текущего пользователя.
type EntryHandler struct {
	EntryService *service.EntryService
	Logger       *zap.SugaredLogger
}

func NewEntryHandler(entryService *service.EntryService, logger *zap.SugaredLogger) *EntryHandler {
	return &EntryHandler{EntryService: entryService, Logger: logger}
}

// EntryDTO: полная запись с паролем.
type EntryDTO struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	WebsiteURL    string    `json:"website_url"`
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	Password      string    `json:"password"`
	Notes         string    `json:"notes"`
	Category      string    `json:"category"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	DecryptFailed bool      `json:"decrypt_failed,omitempty"`
}

// SummaryDTO: запись без пароля, со стойкостью.
type SummaryDTO struct {
	ID         int64         `json:"id"`
	Title      string        `json:"title"`
	WebsiteURL string        `json:"website_url"`
	Email      string        `json:"email"`
	Username   string        `json:"username"`
	Category   string        `json:"category"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
	Strength   strength.Tier `json:"strength"`
}

// entryRequest: тело POST/PUT. Указатели отличают «не передано» от пустой строки.
type entryRequest struct {
	Title      *string `json:"title"`
	WebsiteURL *string `json:"website_url"`
	Email      *string `json:"email"`
	Username   *string `json:"username"`
	Password   *string `json:"password"`
	Notes      *string `json:"notes"`
	Category   *string `json:"category"`
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func toEntryDTO(v service.EntryView) EntryDTO {
	return EntryDTO{
		ID:            v.ID,
		Title:         v.Title,
		WebsiteURL:    v.WebsiteURL,
		Email:         v.Email,
		Username:      v.Username,
		Password:      v.Password,
		Notes:         v.Notes,
		Category:      v.Category,
		CreatedAt:     v.CreatedAt.UTC(),
		UpdatedAt:     v.UpdatedAt.UTC(),
		DecryptFailed: v.DecryptFailed,
	}
}

// owner достаёт user_id, установленный WithAuth.
func (h *EntryHandler) owner(w http.ResponseWriter, r *http.Request) (int64, bool) {
	uid, found := middleware.GetUserIDFromContext(r.Context())
	if !found {
		writeError(w, http.StatusUnauthorized, middleware.MsgMissingAuthorization)
		return 0, false
	}
	return uid, true
}

// entryID разбирает {id}; нечисловой id — та же 404, что и отсутствующая запись.
func (h *EntryHandler) entryID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusNotFound, service.ErrNotFound.Error())
		return 0, false
	}
	return id, true
}

// Titles: список без паролей, по updated_at desc.
func (h *EntryHandler) Titles(w http.ResponseWriter, r *http.Request) {
	uid, found := h.owner(w, r)
	if !found {
		return
	}
	list, err := h.EntryService.List(r.Context(), uid)
	if err != nil {
		writeServiceError(w, h.Logger, "Titles", err, msgEntryRequired)
		return
	}
	items := make([]SummaryDTO, 0, len(list))
	for _, s := range list {
		items = append(items, SummaryDTO{
			ID:         s.ID,
			Title:      s.Title,
			WebsiteURL: s.WebsiteURL,
			Email:      s.Email,
			Username:   s.Username,
			Category:   s.Category,
			CreatedAt:  s.CreatedAt.UTC(),
			UpdatedAt:  s.UpdatedAt.UTC(),
			Strength:   s.Strength,
		})
	}
	ok(w, map[string]any{"items": items})
}

// Stats: количество записей, слабых и сильных паролей.
func (h *EntryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	uid, found := h.owner(w, r)
	if !found {
		return
	}
	st, err := h.EntryService.Stats(r.Context(), uid)
	if err != nil {
		writeServiceError(w, h.Logger, "Stats", err, msgEntryRequired)
		return
	}
	ok(w, map[string]any{"total": st.Total, "weak": st.Weak, "strong": st.Strong})
}

// List: все записи с паролями, по created_at desc.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, found := h.owner(w, r)
	if !found {
		return
	}
	list, err := h.EntryService.ListFull(r.Context(), uid)
	if err != nil {
		writeServiceError(w, h.Logger, "List", err, msgEntryRequired)
		return
	}
	items := make([]EntryDTO, 0, len(list))
	for _, v := range list {
		items = append(items, toEntryDTO(v))
	}
	ok(w, map[string]any{"items": items})
}

// Get: одна запись с паролем.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, found := h.owner(w, r)
	if !found {
		return
	}
	id, valid := h.entryID(w, r)
	if !valid {
		return
	}
	v, err := h.EntryService.Get(r.Context(), uid, id)
	if err != nil {
		writeServiceError(w, h.Logger, "Get", err, msgEntryRequired)
		return
	}
	ok(w, map[string]any{"item": toEntryDTO(*v)})
}

// Create: новая запись.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, found := h.owner(w, r)
	if !found {
		return
	}
	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	id, err := h.EntryService.Create(r.Context(), uid, service.EntryInput{
		Title:      deref(req.Title),
		WebsiteURL: deref(req.WebsiteURL),
		Email:      deref(req.Email),
		Username:   deref(req.Username),
		Password:   deref(req.Password),
		Notes:      deref(req.Notes),
		Category:   deref(req.Category),
	})
	if err != nil {
		writeServiceError(w, h.Logger, "Create", err, msgEntryRequired)
		return
	}
	ok(w, map[string]any{"id": id})
}

// Update: частичное обновление.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, found := h.owner(w, r)
	if !found {
		return
	}
	id, valid := h.entryID(w, r)
	if !valid {
		return
	}
	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Update: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}
	err := h.EntryService.Update(r.Context(), uid, id, service.EntryPatch{
		Title:      req.Title,
		WebsiteURL: req.WebsiteURL,
		Email:      req.Email,
		Username:   req.Username,
		Password:   req.Password,
		Notes:      req.Notes,
		Category:   req.Category,
	})
	if err != nil {
		writeServiceError(w, h.Logger, "Update", err, msgTitleRequired)
		return
	}
	ok(w, nil)
}

// Delete: удаление записи.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, found := h.owner(w, r)
	if !found {
		return
	}
	id, valid := h.entryID(w, r)
	if !valid {
		return
	}
	if err := h.EntryService.Delete(r.Context(), uid, id); err != nil {
		writeServiceError(w, h.Logger, "Delete", err, msgEntryRequired)
		return
	}
	ok(w, nil)
}
