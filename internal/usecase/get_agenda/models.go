package get_agenda

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/UA-BookingService/internal/domain"
)

// Request окно повестки: диапазон дат включительно и опциональный
// фильтр по активностям (пустой набор = без фильтра)
type Request struct {
	From       time.Time
	To         time.Time
	Activities []domain.Activity
}

// Entry запись повестки с производным статусом
type Entry struct {
	ID            uuid.UUID
	CustomerName  string
	Activity      domain.Activity
	Date          time.Time
	StartTime     string // HH:MM
	Duration      string
	PartySize     int
	ContactMethod string
	ContactValue  string
	FinalPrice    float64
	Notes         string
	Status        string
}

// DayGroup записи повестки одного календарного дня
type DayGroup struct {
	Date    time.Time
	Entries []Entry
}

// Response повестка: дни по возрастанию, записи внутри дня
// по времени начала
type Response struct {
	Days  []DayGroup
	Total int
}
