package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время в формате "HH:MM"
// Используется для представления времени суток без даты (открытие/закрытие, начало слота)
// Поддерживает чтение значений TIME из Postgres ("HH:MM:SS" усекается до "HH:MM")
type TimeString string

// NewTimeString создает TimeString из time.Time (усекает до минут)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки "HH:MM" или "HH:MM:SS"
// Секунды отбрасываются
func NewTimeStringFromString(s string) (TimeString, error) {
	normalized, err := normalize(s)
	if err != nil {
		return "", err
	}
	return TimeString(normalized), nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет корректность формата "HH:MM"
func (t TimeString) Validate() error {
	_, err := normalize(string(t))
	return err
}

// Hour возвращает часовую компоненту (0-23)
// Для некорректного значения возвращает 0
func (t TimeString) Hour() int {
	h, _, err := t.parts()
	if err != nil {
		return 0
	}
	return h
}

// Minute возвращает минутную компоненту (0-59)
func (t TimeString) Minute() int {
	_, m, err := t.parts()
	if err != nil {
		return 0
	}
	return m
}

// TruncateToHour усекает время до начала часа ("09:45" -> "09:00")
func (t TimeString) TruncateToHour() TimeString {
	h, _, err := t.parts()
	if err != nil {
		return t
	}
	return TimeString(fmt.Sprintf("%02d:00", h))
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.totalMinutes() < other.totalMinutes()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.totalMinutes() > other.totalMinutes()
}

// AddMinutes возвращает время через minutes минут
// Возвращает ошибку, если результат выходит за пределы суток
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	h, m, err := t.parts()
	if err != nil {
		return "", err
	}

	total := h*60 + m + minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %s + %d minutes is out of day range", ErrInvalidTimeString, t, minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// Scan реализует sql.Scanner для чтения колонок TIME
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
}

// Value реализует driver.Valuer для записи в колонки TIME
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

func (t TimeString) parts() (int, int, error) {
	normalized, err := normalize(string(t))
	if err != nil {
		return 0, 0, err
	}

	h, _ := strconv.Atoi(normalized[:2])
	m, _ := strconv.Atoi(normalized[3:])
	return h, m, nil
}

func (t TimeString) totalMinutes() int {
	h, m, err := t.parts()
	if err != nil {
		return -1
	}
	return h*60 + m
}

// normalize приводит "HH:MM" или "HH:MM:SS" к каноническому "HH:MM"
func normalize(s string) (string, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 2 && len(fields) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	h, err := strconv.Atoi(fields[0])
	if err != nil || h < 0 || h > 23 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	m, err := strconv.Atoi(fields[1])
	if err != nil || m < 0 || m > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	return fmt.Sprintf("%02d:%02d", h, m), nil
}
