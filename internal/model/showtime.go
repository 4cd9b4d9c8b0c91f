package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Showtime представляет время начала сеанса в пределах суток.
type Showtime struct {
	Hour   int
	Minute int
}

// ParseShowtime разбирает время сеанса в формате "HH:MM".
// Допускается час из одной цифры ("9:30").
func ParseShowtime(s string) (Showtime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return Showtime{}, fmt.Errorf("invalid showtime %q: want HH:MM", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return Showtime{}, fmt.Errorf("invalid showtime %q: bad hour", s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 || minute < 0 || minute > 59 {
		return Showtime{}, fmt.Errorf("invalid showtime %q: bad minute", s)
	}

	return Showtime{Hour: hour, Minute: minute}, nil
}

// String форматирует время сеанса как "HH:MM".
func (t Showtime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// MarshalJSON кодирует время сеанса строкой "HH:MM".
func (t Showtime) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

// UnmarshalJSON разбирает время сеанса из строки "HH:MM".
func (t *Showtime) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("showtime must be a string: %w", err)
	}

	parsed, err := ParseShowtime(s)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
