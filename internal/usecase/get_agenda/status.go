package get_agenda

import (
	"fmt"
	"time"

	"github.com/m04kA/UA-BookingService/internal/domain"
)

const (
	statusPast        = "pasada"
	statusTimeInvalid = "hora no válida"
)

// deriveStatus строит статус записи повестки из даты активности,
// времени начала и текущего момента
// Некорректное время начала дает нейтральный статус вместо ошибки:
// старые строки хранилища могут содержать рукописные значения
func deriveStatus(r *domain.Reservation, now time.Time) string {
	startAt, err := r.StartAt()
	if err != nil {
		return statusTimeInvalid
	}

	if startAt.Before(now) {
		return statusPast
	}

	days := daysUntil(now, startAt)
	if days == 1 {
		return "próxima, en 1 día"
	}
	return fmt.Sprintf("próxima, en %d días", days)
}

// daysUntil число дней до момента начала, считая неполный день за целый
func daysUntil(now, startAt time.Time) int {
	return int(startAt.Sub(now).Hours()/24) + 1
}
