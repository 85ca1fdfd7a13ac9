package service

import (
	"BoltPass/internal/model"
	"BoltPass/internal/repo"
	"BoltPass/internal/strength"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SecretCipher шифрует/расшифровывает секреты записей (crypto.VaultCipher).
// Decrypt при любой ошибке возвращает crypto.ErrDecryptionFailed.
type SecretCipher interface {
	Encrypt(plain string) (string, error)
	Decrypt(blob string) (string, error)
}

// EntryInput: поля новой записи.
type EntryInput struct {
	Title      string
	WebsiteURL string
	Email      string
	Username   string
	Password   string
	Notes      string
	Category   string
}

// EntryPatch: частичное обновление: nil означает «поле не передано».
type EntryPatch struct {
	Title      *string
	WebsiteURL *string
	Email      *string
	Username   *string
	Password   *string
	Notes      *string
	Category   *string
}

// EntryView: запись с расшифрованным паролем.
type EntryView struct {
	ID         int64
	Title      string
	WebsiteURL string
	Email      string
	Username   string
	Password   string
	Notes      string
	Category   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	// DecryptFailed: пароль не расшифровался (только в ListFull), Password пуст.
	DecryptFailed bool
}

// EntrySummary: запись без секрета, но с оценкой стойкости пароля.
type EntrySummary struct {
	ID         int64
	Title      string
	WebsiteURL string
	Email      string
	Username   string
	Category   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Strength   strength.Tier
}

// Stats: агрегаты по стойкости паролей. Medium не попадает ни в Weak, ни в Strong.
type Stats struct {
	Total  int
	Weak   int
	Strong int
}

// EntryService: CRUD записей с проверкой владельца и шифрованием паролей.
type EntryService struct {
	repo   repo.EntryRepository
	cipher SecretCipher
	logger *zap.SugaredLogger
	now    func() time.Time
}

// NewEntryService создаёт сервис записей.
func NewEntryService(r repo.EntryRepository, c SecretCipher, logger *zap.SugaredLogger) *EntryService {
	return &EntryService{repo: r, cipher: c, logger: logger, now: time.Now}
}

// Create шифрует пароль и сохраняет запись владельца owner.
func (s *EntryService) Create(ctx context.Context, owner int64, in EntryInput) (int64, error) {
	if in.Title == "" || in.Password == "" {
		return 0, ErrValidation
	}
	blob, err := s.cipher.Encrypt(in.Password)
	if err != nil {
		return 0, fmt.Errorf("encrypt: %w", err)
	}
	category := in.Category
	if category == "" {
		category = model.DefaultCategory
	}
	e := &model.Entry{
		UserID:            owner,
		Title:             in.Title,
		WebsiteURL:        in.WebsiteURL,
		Email:             in.Email,
		Username:          in.Username,
		PasswordEncrypted: blob,
		Notes:             in.Notes,
		Category:          category,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return 0, fmt.Errorf("create entry: %w", err)
	}
	return e.ID, nil
}

// Get возвращает запись владельца с расшифрованным паролем.
// Нет записи — ErrNotFound, чужая — ErrForbidden.
func (s *EntryService) Get(ctx context.Context, owner, id int64) (*EntryView, error) {
	e, err := s.owned(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	plain, err := s.cipher.Decrypt(e.PasswordEncrypted)
	if err != nil {
		s.logger.Warnw("Get: entry secret not decryptable", "entry_id", e.ID, "user_id", owner)
		return nil, ErrRetrievalFailed
	}
	v := toView(e, plain)
	return &v, nil
}

// List: лёгкий список без паролей. Пароль расшифровывается только чтобы оценить
// стойкость и сразу отбрасывается; нерасшифрованный считается пустым (weak).
func (s *EntryService) List(ctx context.Context, owner int64) ([]EntrySummary, error) {
	entries, err := s.repo.ListByUser(ctx, owner, repo.ByUpdatedDesc)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	out := make([]EntrySummary, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		out = append(out, EntrySummary{
			ID:         e.ID,
			Title:      e.Title,
			WebsiteURL: e.WebsiteURL,
			Email:      e.Email,
			Username:   e.Username,
			Category:   e.Category,
			CreatedAt:  e.CreatedAt,
			UpdatedAt:  e.UpdatedAt,
			Strength:   s.tierOf(e.PasswordEncrypted),
		})
	}
	return out, nil
}

// ListFull: все записи владельца с расшифрованными паролями.
func (s *EntryService) ListFull(ctx context.Context, owner int64) ([]EntryView, error) {
	entries, err := s.repo.ListByUser(ctx, owner, repo.ByCreatedDesc)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	out := make([]EntryView, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		plain, err := s.cipher.Decrypt(e.PasswordEncrypted)
		v := toView(e, plain)
		if err != nil {
			v.DecryptFailed = true
			s.logger.Warnw("ListFull: entry secret not decryptable", "entry_id", e.ID, "user_id", owner)
		}
		out = append(out, v)
	}
	return out, nil
}

// Stats считает записи и слабые/сильные пароли владельца.
func (s *EntryService) Stats(ctx context.Context, owner int64) (Stats, error) {
	blobs, err := s.repo.ListSecrets(ctx, owner)
	if err != nil {
		return Stats{}, fmt.Errorf("list secrets: %w", err)
	}
	var st Stats
	for _, b := range blobs {
		st.Total++
		switch s.tierOf(b) {
		case strength.Weak:
			st.Weak++
		case strength.Strong:
			st.Strong++
		}
	}
	return st, nil
}

// Update применяет переданные поля. Новый пароль шифруется заново со свежим nonce.
// Пустой пароль считается непереданным, пустой заголовок — ошибка валидации.
func (s *EntryService) Update(ctx context.Context, owner, id int64, p EntryPatch) error {
	if _, err := s.owned(ctx, owner, id); err != nil {
		return err
	}

	updates := map[string]any{}
	if p.Title != nil {
		if *p.Title == "" {
			return ErrValidation
		}
		updates["title"] = *p.Title
	}
	setIf(updates, "website_url", p.WebsiteURL)
	setIf(updates, "email", p.Email)
	setIf(updates, "username", p.Username)
	setIf(updates, "notes", p.Notes)
	setIf(updates, "category", p.Category)
	if p.Password != nil && *p.Password != "" {
		blob, err := s.cipher.Encrypt(*p.Password)
		if err != nil {
			return fmt.Errorf("encrypt: %w", err)
		}
		updates["password_encrypted"] = blob
	}
	if len(updates) == 0 {
		return ErrNothingToUpdate
	}
	updates["updated_at"] = s.now().UTC()

	if err := s.repo.Update(ctx, id, updates); err != nil {
		// запись удалили между проверкой и обновлением
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("update entry: %w", err)
	}
	return nil
}

// Delete безвозвратно удаляет запись владельца.
func (s *EntryService) Delete(ctx context.Context, owner, id int64) error {
	if _, err := s.owned(ctx, owner, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// owned загружает запись и проверяет владельца. Сначала существование, затем владелец.
func (s *EntryService) owned(ctx context.Context, owner, id int64) (*model.Entry, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get entry: %w", err)
	}
	if e == nil {
		return nil, ErrNotFound
	}
	if e.UserID != owner {
		return nil, ErrForbidden
	}
	return e, nil
}

// tierOf расшифровывает секрет только для классификации.
func (s *EntryService) tierOf(blob string) strength.Tier {
	plain, err := s.cipher.Decrypt(blob)
	if err != nil {
		plain = ""
	}
	return strength.Classify(plain)
}

func setIf(updates map[string]any, column string, v *string) {
	if v != nil {
		updates[column] = *v
	}
}

func toView(e *model.Entry, plain string) EntryView {
	return EntryView{
		ID:         e.ID,
		Title:      e.Title,
		WebsiteURL: e.WebsiteURL,
		Email:      e.Email,
		Username:   e.Username,
		Password:   plain,
		Notes:      e.Notes,
		Category:   e.Category,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
