package create_reservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/UA-BookingService/internal/domain"
	"github.com/m04kA/UA-BookingService/pkg/types"
)

// Request подтвержденная форма бронирования
// Клиент присылает те же поля, что и на шаге проверки: подтверждение
// не хранит состояние между шагами и валидирует заново
type Request struct {
	CustomerName    string
	Activity        domain.Activity
	Date            *time.Time
	StartTime       types.TimeString
	Duration        string
	PartySize       int
	Adults          int
	Children        int
	ContactMethod   string
	ContactValue    string
	ManualUnitPrice float64
	FinalPrice      *float64 // переопределение оператором
	Notes           string
}

// toDraft собирает domain-черновик из запроса
func (r *Request) toDraft() *domain.ReservationDraft {
	return &domain.ReservationDraft{
		CustomerName:    r.CustomerName,
		Activity:        r.Activity,
		Date:            r.Date,
		StartTime:       r.StartTime,
		Duration:        r.Duration,
		PartySize:       r.PartySize,
		Adults:          r.Adults,
		Children:        r.Children,
		ContactMethod:   r.ContactMethod,
		ContactValue:    r.ContactValue,
		ManualUnitPrice: r.ManualUnitPrice,
		FinalPrice:      r.FinalPrice,
		Notes:           r.Notes,
	}
}

// Response результат сохранения бронирования
type Response struct {
	ID         uuid.UUID
	FinalPrice float64
	UnitPrice  float64
	BookedAt   time.Time
}
