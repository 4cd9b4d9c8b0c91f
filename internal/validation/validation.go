// Package validation содержит функции валидации входных данных.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BrettAtwell/Movie-theatre-project/internal/model"
)

// ParsePrice разбирает денежную сумму вида "9.50" в центы.
// Разбор целиком целочисленный, чтобы не накапливать ошибку плавающей точки.
// Допускаются форма без дробной части ("9") и необязательный символ "$".
func ParsePrice(s string) (model.Cents, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "$")
	if raw == "" {
		return 0, fmt.Errorf("invalid price %q", s)
	}

	whole := raw
	frac := ""
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		whole = raw[:i]
		frac = raw[i+1:]
	}

	// Обе части состоят только из цифр: ParseInt пропустил бы знак
	// внутри дробной части ("9.+5" превратился бы в $9.50).
	if whole == "" || !allDigits(whole) || len(frac) > 2 || (frac != "" && !allDigits(frac)) {
		return 0, fmt.Errorf("invalid price %q", s)
	}

	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", s)
	}

	cents := int64(0)
	if frac != "" {
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid price %q", s)
		}
		if len(frac) == 1 {
			cents *= 10
		}
	}

	return model.Cents(dollars*100 + cents), nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseCount разбирает неотрицательное целое: число билетов,
// номер зала, вместимость, пункт меню.
func ParseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	if n < 0 {
		return 0, fmt.Errorf("number must not be negative: %d", n)
	}
	return n, nil
}

// IsYes интерпретирует ответ на вопрос yes/no. Утвердительным
// считается только ответ "yes" без учёта регистра.
func IsYes(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "yes")
}
