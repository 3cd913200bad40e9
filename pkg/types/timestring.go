package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате строки времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString строковое представление времени дня ("HH:MM" или "HH:MM:SS")
// Хранится в том виде, в котором записано во внешнем хранилище
type TimeString string

// NewTimeString создает TimeString из time.Time в формате HH:MM:SS
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04:05"))
}

// NewTimeStringFromString валидирует строку и возвращает TimeString
// Принимает форматы "15:04" и "15:04:05"
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := parseClock(s); err != nil {
		return "", err
	}
	return TimeString(s), nil
}

func parseClock(s string) (time.Time, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
}

// String возвращает исходное строковое представление
func (t TimeString) String() string {
	return string(t)
}

// Short возвращает время в формате HH:MM
func (t TimeString) Short() string {
	if len(t) >= 5 {
		return string(t)[:5]
	}
	return string(t)
}

// Clock парсит время дня; ошибка при некорректном формате
func (t TimeString) Clock() (hour, minute, second int, err error) {
	parsed, err := parseClock(string(t))
	if err != nil {
		return 0, 0, 0, err
	}
	return parsed.Hour(), parsed.Minute(), parsed.Second(), nil
}

// At совмещает время дня с календарной датой в один момент времени
func (t TimeString) At(date time.Time) (time.Time, error) {
	h, m, s, err := t.Clock()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), h, m, s, 0, date.Location()), nil
}

// IsBefore сравнивает два времени дня
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := parseClock(string(t))
	b, errB := parseClock(string(other))
	if errA != nil || errB != nil {
		return false
	}
	return a.Before(b)
}
