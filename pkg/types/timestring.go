package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeString время в формате "HH:MM" (24-часовой формат)
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки с валидацией.
// Принимает как 24-часовой формат ("14:30"), так и 12-часовой ("2:30 PM") —
// 12-часовой формат предварительно нормализуется.
func NewTimeStringFromString(s string) (TimeString, error) {
	normalized := NormalizeTo24Hour(s)

	if _, _, err := parseHHMM(normalized); err != nil {
		return "", err
	}

	return TimeString(normalized), nil
}

// NormalizeTo24Hour приводит время из 12-часового формата ("hh:mm AM/PM")
// к 24-часовому ("HH:MM"). Правила:
//   - 12 AM -> 00, 12 PM -> 12
//   - PM для часов >= 1 добавляет 12
//
// Строка без маркеров AM/PM возвращается без изменений, поэтому функция
// идемпотентна на уже нормализованном входе.
func NormalizeTo24Hour(s string) string {
	trimmed := strings.TrimSpace(s)
	upper := strings.ToUpper(trimmed)

	var pm bool
	switch {
	case strings.HasSuffix(upper, "PM"):
		pm = true
	case strings.HasSuffix(upper, "AM"):
		pm = false
	default:
		// Нет маркера — строка уже в 24-часовом формате
		return s
	}

	timePart := strings.TrimSpace(upper[:len(upper)-2])
	parts := strings.SplitN(timePart, ":", 2)
	if len(parts) != 2 {
		return s
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return s
	}

	if pm && hour >= 1 && hour < 12 {
		hour += 12
	}
	if !pm && hour == 12 {
		hour = 0
	}

	return fmt.Sprintf("%02d:%s", hour, parts[1])
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() (int, error) {
	hours, minutes, err := parseHHMM(string(t))
	if err != nil {
		return 0, err
	}
	return hours*60 + minutes, nil
}

// AddMinutes возвращает новое время, сдвинутое на указанное число минут.
// Результат берется по модулю суток.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total = (total + minutes) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если t строго раньше other.
// Невалидные значения считаются равными (сравнение не определено).
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// parseHHMM парсит строку "HH:MM" в часы и минуты
func parseHHMM(s string) (int, int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time format %q, expected HH:MM", s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, 0, fmt.Errorf("invalid hours in time %q", s)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, 0, fmt.Errorf("invalid minutes in time %q", s)
	}

	return hours, minutes, nil
}
