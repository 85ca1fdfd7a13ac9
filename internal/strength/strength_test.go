package strength

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Tier
	}{
		{"empty", "", Weak},
		{"len10 two classes", "abcdefgh12", Medium},
		{"len12 four classes", "Ab1!Ab1!Ab1!", Strong},
		{"len12 one class", "aaaaaaaaaaaa", Weak},
		{"len8 digits only", "12345678", Weak},
		{"len9 two classes", "password1", Medium},
		{"len14 four classes", "Tr0ub4dor&3xyz", Strong},
		{"len13 four classes", "Correct123!@#", Strong},
		{"len11 four classes is medium", "Ab1!Ab1!Ab1", Medium},
		{"len7 four classes is weak", "Ab1!Ab1", Weak},
		// не-ASCII символы считаются спецсимволами, длина, в рунах
		{"unicode symbols", "пароль12", Medium},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.in))
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	for _, p := range []string{"", "a", "Tr0ub4dor&3xyz", "12345678"} {
		assert.Equal(t, Classify(p), Classify(p))
	}
}
