// Package strength классифицирует пароли по стойкости.
// Одна реализация используется и в списке записей, и в статистике, и в CLI.
package strength

// Tier: уровень стойкости пароля.
type Tier string

const (
	Weak   Tier = "weak"
	Medium Tier = "medium"
	Strong Tier = "strong"
)

// Classify возвращает уровень стойкости строки p.
// Правила проверяются по порядку, срабатывает первое:
//   - длина >= 12 и не меньше трёх классов символов — strong;
//   - длина >= 8 и не меньше двух классов — medium;
//   - иначе weak.
func Classify(p string) Tier {
	var length int
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range p {
		length++
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	diversity := 0
	for _, ok := range []bool{hasLower, hasUpper, hasDigit, hasSymbol} {
		if ok {
			diversity++
		}
	}

	switch {
	case length >= 12 && diversity >= 3:
		return Strong
	case length >= 8 && diversity >= 2:
		return Medium
	default:
		return Weak
	}
}
