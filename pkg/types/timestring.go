package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// timeLayout формат времени "ЧЧ:ММ"
const timeLayout = "15:04"

// TimeString время суток в формате "ЧЧ:ММ" без привязки к дате.
// Используется для хранения времени начала слота в БД и передачи по API.
type TimeString string

// NewTimeString создает TimeString из time.Time (дата отбрасывается)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит строку "ЧЧ:ММ" с валидацией
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse(timeLayout, s); err != nil {
		return "", fmt.Errorf("invalid time %q: expected HH:MM: %w", s, err)
	}
	return TimeString(s), nil
}

// String возвращает строковое представление "ЧЧ:ММ"
func (t TimeString) String() string {
	return string(t)
}

// Parse возвращает time.Time с нулевой датой
func (t TimeString) Parse() (time.Time, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: expected HH:MM: %w", string(t), err)
	}
	return parsed, nil
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед
// Выход за границы суток считается ошибкой - слоты не переходят через полночь
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := t.Parse()
	if err != nil {
		return "", err
	}

	shifted := parsed.Add(time.Duration(minutes) * time.Minute)
	if shifted.Day() != parsed.Day() {
		return "", fmt.Errorf("time %s + %d minutes crosses midnight", t, minutes)
	}

	return NewTimeString(shifted), nil
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение соответствует формату "ЧЧ:ММ"
func (t TimeString) Validate() error {
	_, err := t.Parse()
	return err
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Scan реализует sql.Scanner
func (t *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeString", value)
	}
}

func (t *TimeString) scanString(s string) error {
	// Postgres колонка TIME приходит как "11:00:00" - отрезаем секунды
	if len(s) > len(timeLayout) {
		s = s[:len(timeLayout)]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	if _, err := t.Parse(); err != nil {
		return nil, err
	}
	return string(t), nil
}
