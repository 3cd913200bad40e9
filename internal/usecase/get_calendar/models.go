package get_calendar

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/UA-BookingService/internal/domain"
)

// Request окно календаря: точное совпадение месяца и года,
// опциональный фильтр по активностям (пустой набор = без фильтра)
type Request struct {
	Month      time.Month
	Year       int
	Activities []domain.Activity
}

// Event событие календаря
// Start и End в формате RFC3339, цвет берется из палитры каталога
type Event struct {
	ID    uuid.UUID
	Title string
	Start string
	End   string
	Color string
}

// Response события календаря выбранного месяца
type Response struct {
	Events []Event
}
