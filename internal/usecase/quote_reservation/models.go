package quote_reservation

import (
	"time"

	"github.com/m04kA/UA-BookingService/internal/domain"
	"github.com/m04kA/UA-BookingService/pkg/types"
)

// Request рабочая запись формы бронирования
// Шаг проверки: поля формы прогоняются через валидацию и тарификацию,
// ничего не записывается
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

// SummaryLine строка сводки для экрана подтверждения
type SummaryLine struct {
	Label string
	Value string
}

// Response сводка бронирования, готового к подтверждению
type Response struct {
	SuggestedPrice float64       // рекомендованная цена по тарифам; 0 - допустимая деградация
	FinalPrice     float64       // применяемая цена: переопределение оператора или рекомендация
	TotalPartySize int           // общее число людей
	Summary        []SummaryLine // сводка в порядке отображения
}
