// Package crypto содержит серверные криптопримитивы: хеширование паролей аккаунтов
// и шифрование секретов записей.
package crypto

import "golang.org/x/crypto/bcrypt"

// HashCost: фиксированная стоимость bcrypt.
const HashCost = 10

// Hasher хеширует пароли аккаунтов bcrypt'ом.
type Hasher struct {
	cost int
}

// NewHasher создаёт Hasher со стоимостью HashCost.
func NewHasher() *Hasher {
	return &Hasher{cost: HashCost}
}

// Hash возвращает соль+хеш пароля в формате bcrypt.
func (h *Hasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify сравнивает пароль с хешем. Несовпадение и битый хеш одинаково дают false.
func (h *Hasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
