package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/UA-BookingService/pkg/types"
)

// ValidationError агрегированная ошибка валидации обязательных полей
// Собирает отображаемые названия всех пропущенных полей, а не первое попавшееся
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// Reservation бронирование - одна строка во внешнем хранилище
// Идентичность строки в хранилище - её порядковый номер; ID - стабильный
// суррогатный ключ, хранится дополнительной колонкой и используется
// всеми внешними интерфейсами вместо порядкового номера
type Reservation struct {
	ID            uuid.UUID
	CustomerName  string
	Activity      Activity
	Date          time.Time // календарная дата активности, без времени
	StartTime     types.TimeString
	Duration      string
	PartySize     int // общее число людей (для Ruta Bisontes - взрослые + дети)
	ContactMethod string
	ContactValue  string
	FinalPrice    float64
	Notes         string
	BookedAt      time.Time
	UnitPrice     float64 // производное поле, пересчитывается при каждом сохранении
}

// StartAt совмещает дату активности и время начала в один момент времени
func (r *Reservation) StartAt() (time.Time, error) {
	return r.StartTime.At(r.Date)
}

// SameMonth проверяет совпадение месяца и года даты активности
func (r *Reservation) SameMonth(month time.Month, year int) bool {
	return r.Date.Month() == month && r.Date.Year() == year
}

// ReservationDraft рабочая запись формы бронирования до подтверждения
// Для Ruta Bisontes состав группы задается раздельно (Adults/Children),
// для остальных активностей - общим числом PartySize
type ReservationDraft struct {
	CustomerName    string
	Activity        Activity
	Date            *time.Time
	StartTime       types.TimeString
	Duration        string
	PartySize       int
	Adults          int
	Children        int
	ContactMethod   string
	ContactValue    string
	ManualUnitPrice float64
	FinalPrice      *float64 // переопределение оператором; nil = взять рекомендованную
	Notes           string
}

// TotalPartySize общее число людей в группе
func (d *ReservationDraft) TotalPartySize() int {
	if d.Activity.IsBisontes() {
		return d.Adults + d.Children
	}
	return d.PartySize
}

// MissingFields возвращает отображаемые названия незаполненных обязательных полей
// Валидация не останавливается на первом пропуске - собираются все
func (d *ReservationDraft) MissingFields() []string {
	missing := make([]string, 0)

	if strings.TrimSpace(d.CustomerName) == "" {
		missing = append(missing, FieldName)
	}
	if d.Activity == "" {
		missing = append(missing, FieldActivity)
	}
	if d.Date == nil || d.Date.IsZero() {
		missing = append(missing, FieldDate)
	}
	if d.StartTime == "" {
		missing = append(missing, FieldStartTime)
	}
	if d.Duration == "" {
		missing = append(missing, FieldDuration)
	}
	if strings.TrimSpace(d.ContactValue) == "" {
		missing = append(missing, FieldContact)
	}
	if d.TotalPartySize() < MinPartySize {
		missing = append(missing, FieldPartySize)
	}

	return missing
}

// Validate проверяет обязательные поля и возвращает одну агрегированную ошибку
// со списком всех пропущенных полей
func (d *ReservationDraft) Validate() error {
	missing := d.MissingFields()
	if len(missing) == 0 {
		return nil
	}
	return &ValidationError{Missing: missing}
}

// SuggestedPrice рекомендованная цена по тарифам каталога
func (d *ReservationDraft) SuggestedPrice() float64 {
	return Quote(QuoteInput{
		Activity:        d.Activity,
		Duration:        d.Duration,
		PartySize:       d.TotalPartySize(),
		ManualUnitPrice: d.ManualUnitPrice,
		Adults:          d.Adults,
		Children:        d.Children,
	})
}
