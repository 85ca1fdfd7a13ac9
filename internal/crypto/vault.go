package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

// keyLen: длина ключа для AES‑256 (в байтах).
const keyLen = 32

const (
	nonceLen = 12
	tagLen   = 16
)

// ErrDecryptionFailed: единственная ошибка расшифровки: битый base64, короткий блоб,
// неверный тег или чужой ключ неотличимы для вызывающего кода.
var ErrDecryptionFailed = errors.New("decryption failed")

// ErrInvalidMasterKey: ключ из конфигурации не является base64 от 32 байт.
var ErrInvalidMasterKey = errors.New("master key must be base64 of 32 bytes")

// MasterKey: общий для процесса ключ шифрования записей. Не меняется после старта.
type MasterKey struct {
	b [keyLen]byte
}

// LoadMasterKey разбирает ключ из конфигурации (base64, 32 байта).
// Пустая строка — деградированный режим: генерируется случайный ключ на время жизни
// процесса, degraded=true. Данные, зашифрованные таким ключом, после рестарта не расшифровать.
func LoadMasterKey(encoded string) (key MasterKey, degraded bool, err error) {
	if encoded == "" {
		if _, err := io.ReadFull(rand.Reader, key.b[:]); err != nil {
			return MasterKey{}, false, err
		}
		return key, true, nil
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(raw) != keyLen {
		return MasterKey{}, false, ErrInvalidMasterKey
	}
	copy(key.b[:], raw)
	return key, false, nil
}

// VaultCipher шифрует секреты записей AES‑256‑GCM общим ключом.
// Блоб: base64(nonce(12) || tag(16) || ciphertext). Безопасен для параллельного использования.
type VaultCipher struct {
	aead cipher.AEAD
}

// NewVaultCipher создаёт шифратор для ключа key.
func NewVaultCipher(key MasterKey) (*VaultCipher, error) {
	block, err := aes.NewCipher(key.b[:])
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCMWithTagSize(block, tagLen)
	if err != nil {
		return nil, err
	}
	return &VaultCipher{aead: gcm}, nil
}

// Encrypt шифрует plain со свежим случайным nonce.
func (c *VaultCipher) Encrypt(plain string) (string, error) {
	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	// Seal возвращает ciphertext||tag, в блобе тег идёт перед шифртекстом
	sealed := c.aead.Seal(nil, nonce, []byte(plain), nil)
	ct, tag := sealed[:len(sealed)-tagLen], sealed[len(sealed)-tagLen:]

	out := make([]byte, 0, nonceLen+tagLen+len(ct))
	out = append(out, nonce...)
	out = append(out, tag...)
	out = append(out, ct...)
	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt расшифровывает блоб. Любая ошибка — ErrDecryptionFailed.
func (c *VaultCipher) Decrypt(blob string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil || len(raw) < nonceLen+tagLen {
		return "", ErrDecryptionFailed
	}
	nonce := raw[:nonceLen]
	tag := raw[nonceLen : nonceLen+tagLen]
	ct := raw[nonceLen+tagLen:]

	sealed := make([]byte, 0, len(ct)+tagLen)
	sealed = append(sealed, ct...)
	sealed = append(sealed, tag...)
	plain, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	return string(plain), nil
}
